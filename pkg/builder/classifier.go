package builder

import (
	"github.com/smartcoach/motionkit/pkg/internal/classifier"
	"github.com/smartcoach/motionkit/pkg/internal/types"
)

type ForestConfig = classifier.ForestConfig

func DefaultForestConfig() ForestConfig {
	return classifier.DefaultForestConfig()
}

func NewExerciseClassifier(options ...types.Option[types.ExerciseClassifier]) types.ExerciseClassifier {
	return classifier.NewExerciseClassifier(options...)
}

func ExerciseClassifierWithLogger(l ...types.Logger) types.Option[types.ExerciseClassifier] {
	return classifier.WithLogger(l...)
}

func ExerciseClassifierWithForestConfig(cfg ForestConfig) types.Option[types.ExerciseClassifier] {
	return classifier.WithForestConfig(cfg)
}

func ExerciseClassifierWithSeed(seed uint64) types.Option[types.ExerciseClassifier] {
	return classifier.WithSeed(seed)
}
