package builder

import "github.com/smartcoach/motionkit/pkg/internal/types"

// Component interface aliases exported from the internal types package.
type SignalGenerator = types.SignalGenerator

type MovementAnalyzer = types.MovementAnalyzer

type FeatureExtractor = types.FeatureExtractor

type ExerciseClassifier = types.ExerciseClassifier

type Logger = types.Logger

// Data model aliases exported from the internal types package.
type Signal = types.Signal

type FeatureVector = types.FeatureVector

type AnalysisResult = types.AnalysisResult

type ClassificationResult = types.ClassificationResult

type TrainingReport = types.TrainingReport

type CrossValidationReport = types.CrossValidationReport

type ExerciseProfile = types.ExerciseProfile

type ComponentMetadata = types.ComponentMetadata

// FeatureCount is the fixed feature-vector length.
const FeatureCount = types.FeatureCount

// Exercise vocabulary labels.
const (
	ExerciseSquat       = types.ExerciseSquat
	ExercisePushup      = types.ExercisePushup
	ExerciseCurl        = types.ExerciseCurl
	ExerciseJumpingJack = types.ExerciseJumpingJack
	ExercisePlank       = types.ExercisePlank
)

// ExerciseNames returns the closed exercise vocabulary in label-index order.
func ExerciseNames() []string {
	return types.ExerciseNames()
}

// ProfileFor returns the tunable constants for an exercise label.
func ProfileFor(exercise string) (ExerciseProfile, bool) {
	return types.ProfileFor(exercise)
}

// ExerciseIndex returns the label index of an exercise, or -1 when the label
// is outside the vocabulary.
func ExerciseIndex(exercise string) int {
	return types.ExerciseIndex(exercise)
}

// Sentinel errors surfaced by the pipeline; test with errors.Is.
var (
	ErrInvalidExerciseType = types.ErrInvalidExerciseType
	ErrInvalidParameter    = types.ErrInvalidParameter
	ErrInsufficientSamples = types.ErrInsufficientSamples
	ErrNotTrained          = types.ErrNotTrained
	ErrModelNotFound       = types.ErrModelNotFound
	ErrCorruptModel        = types.ErrCorruptModel
)
