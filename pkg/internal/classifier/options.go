package classifier

import "github.com/smartcoach/motionkit/pkg/internal/types"

// WithLogger registers loggers for the classifier.
func WithLogger(l ...types.Logger) types.Option[types.ExerciseClassifier] {
	return func(c types.ExerciseClassifier) {
		c.ConnectLogger(l...)
	}
}

// WithForestConfig overrides the ensemble hyperparameters used by Train and
// CrossValidate.
func WithForestConfig(cfg ForestConfig) types.Option[types.ExerciseClassifier] {
	return func(c types.ExerciseClassifier) {
		if ec, ok := c.(*ExerciseClassifier); ok {
			if cfg.Trees <= 0 {
				cfg.Trees = DefaultForestConfig().Trees
			}
			if cfg.MaxDepth <= 0 {
				cfg.MaxDepth = DefaultForestConfig().MaxDepth
			}
			if cfg.MinSamplesSplit < 2 {
				cfg.MinSamplesSplit = 2
			}
			if cfg.MinSamplesLeaf < 1 {
				cfg.MinSamplesLeaf = 1
			}
			ec.config = cfg
		}
	}
}

// WithSeed fixes the ensemble's random seed for reproducible training runs.
func WithSeed(seed uint64) types.Option[types.ExerciseClassifier] {
	return func(c types.ExerciseClassifier) {
		if ec, ok := c.(*ExerciseClassifier); ok {
			ec.config.Seed = seed
		}
	}
}
