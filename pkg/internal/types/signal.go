package types

// FeatureCount is the fixed length of a FeatureVector. The layout is
// positional and must be identical between training-time and prediction-time
// extraction:
//
//	[0:18)  per-axis mean, std, min, max, skewness, excess kurtosis (X, Y, Z)
//	[18:21) magnitude mean, std, max
//	[21:24) per-axis dominant FFT frequency (cycles/sample, DC excluded)
//	[24:27) per-axis mean-square energy
//	[27:30) Pearson correlation X-Y, X-Z, Y-Z
const FeatureCount = 30

// Signal is a time-aligned 3-axis acceleration series over a window.
// All four sequences have equal length and the timestamps are strictly
// increasing, spaced by 1/SamplingRate seconds.
type Signal struct {
	Timestamps   []float64 // seconds
	X            []float64 // m/s²
	Y            []float64 // m/s²
	Z            []float64 // m/s²
	SamplingRate float64   // Hz
}

// Len returns the number of samples in the signal.
func (s Signal) Len() int {
	return len(s.Timestamps)
}

// Duration returns the covered window length in seconds.
func (s Signal) Duration() float64 {
	if s.SamplingRate <= 0 {
		return 0
	}
	return float64(len(s.Timestamps)) / s.SamplingRate
}

// FeatureVector is a fixed-length positional numeric summary of a signal
// window, used as classifier input. Length is always FeatureCount.
type FeatureVector []float64

// AnalysisResult is the outcome of analyzing one signal. Immutable after
// creation; degenerate inputs (no detected motion) produce the zero-valued
// result rather than an error.
type AnalysisResult struct {
	Repetitions int     // detected repetition count
	Duration    float64 // seconds, echoes the analyzed window
	Score       float64 // composite performance score, 0-100
	Regularity  float64 // inter-rep timing consistency, 0-100
	Speed       float64 // repetitions per minute
}

// ClassificationResult is a classifier prediction over the exercise vocabulary.
type ClassificationResult struct {
	Exercise      string    // predicted label, one of ExerciseNames()
	Confidence    float64   // maximum class probability, in [0,1]
	Probabilities []float64 // full distribution, ordered as ExerciseNames()
}

// TrainingReport summarizes a completed training run.
type TrainingReport struct {
	TrainAccuracy float64 // accuracy on the training set, in [0,1]
	Samples       int     // number of training samples
	Features      int     // feature dimensionality
	Trees         int     // ensemble size
}

// CrossValidationReport summarizes a k-fold cross-validation run.
type CrossValidationReport struct {
	MeanAccuracy float64   // mean out-of-fold accuracy, in [0,1]
	StdAccuracy  float64   // standard deviation of fold accuracies
	FoldScores   []float64 // per-fold accuracies
}
