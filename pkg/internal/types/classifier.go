package types

// ExerciseClassifier owns the train/predict/persist lifecycle of the
// feature-vector-to-label model. Train and Load replace the owned model
// state atomically under an exclusive lock; Predict, Save and
// FeatureImportances take a shared lock and never mutate.
type ExerciseClassifier interface {
	// Train fits the scaler and the tree ensemble on integer-encoded labels
	// (indices into Classes()). trees <= 0 selects the default ensemble size.
	Train(features [][]float64, labels []int, trees int) (TrainingReport, error)

	// Predict extracts features from the raw axes, standardizes them with
	// the stored scaler and returns the argmax label with its confidence and
	// the full probability distribution. Fails with ErrNotTrained before
	// Train or Load.
	Predict(x, y, z []float64) (ClassificationResult, error)

	// CrossValidate reports out-of-fold accuracy over k folds using scratch
	// model state; the instance's trained state is never touched.
	CrossValidate(features [][]float64, labels []int, folds int) (CrossValidationReport, error)

	// FeatureImportances returns the normalized impurity-decrease importance
	// of each feature. Fails with ErrNotTrained.
	FeatureImportances() ([]float64, error)

	// Save writes scaler, ensemble, label vocabulary and trained flag to
	// path as one atomic artifact. Fails with ErrNotTrained.
	Save(path string) error

	// Load replaces all owned state from an artifact. Fails with
	// ErrModelNotFound when the artifact is absent and ErrCorruptModel when
	// it does not decode into a consistent model.
	Load(path string) error

	IsTrained() bool
	Classes() []string

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, format string, args ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
