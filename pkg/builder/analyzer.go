package builder

import (
	"github.com/smartcoach/motionkit/pkg/internal/analyzer"
	"github.com/smartcoach/motionkit/pkg/internal/types"
)

func NewMovementAnalyzer(options ...types.Option[types.MovementAnalyzer]) types.MovementAnalyzer {
	return analyzer.NewMovementAnalyzer(options...)
}

func MovementAnalyzerWithLogger(l ...types.Logger) types.Option[types.MovementAnalyzer] {
	return analyzer.WithLogger(l...)
}

func MovementAnalyzerWithProfileOverride(exercise string, profile types.ExerciseProfile) types.Option[types.MovementAnalyzer] {
	return analyzer.WithProfileOverride(exercise, profile)
}
