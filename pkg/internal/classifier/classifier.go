package classifier

import (
	"sync"

	"github.com/smartcoach/motionkit/pkg/internal/features"
	"github.com/smartcoach/motionkit/pkg/internal/types"
	"github.com/smartcoach/motionkit/pkg/internal/utils"
)

// ExerciseClassifier maps feature vectors to exercise labels through a
// standard scaler and a random-forest ensemble. Train and Load replace the
// owned model state atomically under the write lock; Predict, Save and
// FeatureImportances only ever read, so a trained instance is safe to share
// across concurrent prediction calls.
type ExerciseClassifier struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex

	extractor types.FeatureExtractor
	config    ForestConfig

	mu      sync.RWMutex
	scaler  *StandardScaler
	forest  *Forest
	labels  []string
	trained bool
}

// NewExerciseClassifier creates an untrained classifier over the closed
// exercise vocabulary.
func NewExerciseClassifier(options ...types.Option[types.ExerciseClassifier]) types.ExerciseClassifier {
	c := &ExerciseClassifier{
		componentMetadata: types.ComponentMetadata{
			Type: "EXERCISE_CLASSIFIER",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers:   make([]types.Logger, 0),
		extractor: features.NewFeatureExtractor(),
		config:    DefaultForestConfig(),
		labels:    types.ExerciseNames(),
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}
