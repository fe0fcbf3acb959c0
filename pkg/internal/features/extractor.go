package features

import (
	"sync"

	"github.com/smartcoach/motionkit/pkg/internal/types"
	"github.com/smartcoach/motionkit/pkg/internal/utils"
)

// FeatureExtractor derives the fixed 30-element feature vector from a raw
// signal window. Extraction is deterministic and identical between training
// and prediction; any divergence there is a correctness bug.
type FeatureExtractor struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewFeatureExtractor creates a FeatureExtractor with the given options.
func NewFeatureExtractor(options ...types.Option[types.FeatureExtractor]) types.FeatureExtractor {
	e := &FeatureExtractor{
		componentMetadata: types.ComponentMetadata{
			Type: "FEATURE_EXTRACTOR",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers: make([]types.Logger, 0),
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

// WithLogger registers loggers for the feature extractor.
func WithLogger(l ...types.Logger) types.Option[types.FeatureExtractor] {
	return func(e types.FeatureExtractor) {
		e.ConnectLogger(l...)
	}
}
