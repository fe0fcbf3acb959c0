package types

// FeatureExtractor derives the fixed-length FeatureVector from a raw
// signal window's three axes. Extraction is deterministic; the output
// ordering is fixed by FeatureCount's layout.
type FeatureExtractor interface {
	// Extract fails with ErrInsufficientSamples for windows shorter than
	// two samples and ErrInvalidParameter for axes of unequal length.
	// Constant axes produce zero-valued skew/kurtosis/correlation features
	// rather than NaN.
	Extract(x, y, z []float64) (FeatureVector, error)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, format string, args ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
