package builder

import (
	"github.com/smartcoach/motionkit/pkg/internal/features"
	"github.com/smartcoach/motionkit/pkg/internal/types"
)

func NewFeatureExtractor(options ...types.Option[types.FeatureExtractor]) types.FeatureExtractor {
	return features.NewFeatureExtractor(options...)
}

func FeatureExtractorWithLogger(l ...types.Logger) types.Option[types.FeatureExtractor] {
	return features.WithLogger(l...)
}
