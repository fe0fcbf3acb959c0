package analyzer

import "github.com/smartcoach/motionkit/pkg/internal/types"

// WithLogger registers loggers for the movement analyzer.
func WithLogger(l ...types.Logger) types.Option[types.MovementAnalyzer] {
	return func(m types.MovementAnalyzer) {
		m.ConnectLogger(l...)
	}
}

// WithProfileOverride replaces the built-in thresholds for one exercise,
// e.g. to tune minimum rep interval or prominence for a specific sensor.
func WithProfileOverride(exercise string, profile types.ExerciseProfile) types.Option[types.MovementAnalyzer] {
	return func(m types.MovementAnalyzer) {
		if ma, ok := m.(*MovementAnalyzer); ok {
			ma.overrides[exercise] = profile
		}
	}
}
