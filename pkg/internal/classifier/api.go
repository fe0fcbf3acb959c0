package classifier

import (
	"fmt"

	"github.com/smartcoach/motionkit/pkg/internal/types"
	"github.com/smartcoach/motionkit/pkg/internal/utils"
	"gonum.org/v1/gonum/stat"
	"golang.org/x/exp/rand"
)

// Train fits the scaler on the raw features, then fits the tree ensemble on
// the standardized features against integer-encoded labels. trees <= 0
// selects the configured default ensemble size. The instance transitions to
// trained atomically under the write lock.
func (c *ExerciseClassifier) Train(featureRows [][]float64, labels []int, trees int) (types.TrainingReport, error) {
	if err := c.validateTrainingSet(featureRows, labels); err != nil {
		return types.TrainingReport{}, err
	}

	cfg := c.config
	if trees > 0 {
		cfg.Trees = trees
	}

	c.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Train => Training started: %d samples, %d features, %d trees", c.componentMetadata, len(featureRows), len(featureRows[0]), cfg.Trees)

	scaler := &StandardScaler{}
	scaler.Fit(featureRows)
	scaled := scaler.Transform(featureRows)

	forest := &Forest{Config: cfg}
	forest.Fit(scaled, labels, len(c.labels))

	accuracy := forest.Accuracy(scaled, labels)

	c.mu.Lock()
	c.scaler = scaler
	c.forest = forest
	c.trained = true
	c.mu.Unlock()

	c.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Train => Training finished: accuracy %.2f%%", c.componentMetadata, accuracy*100)

	return types.TrainingReport{
		TrainAccuracy: accuracy,
		Samples:       len(featureRows),
		Features:      len(featureRows[0]),
		Trees:         cfg.Trees,
	}, nil
}

// Predict extracts features from the raw axes, standardizes them with the
// stored scaler and returns the argmax label, its probability as confidence,
// and the full class distribution.
func (c *ExerciseClassifier) Predict(x, y, z []float64) (types.ClassificationResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.trained {
		return types.ClassificationResult{}, fmt.Errorf("predict: %w", types.ErrNotTrained)
	}

	fv, err := c.extractor.Extract(x, y, z)
	if err != nil {
		return types.ClassificationResult{}, fmt.Errorf("predict: %w", err)
	}
	if len(fv) != c.scaler.Dims() {
		return types.ClassificationResult{}, fmt.Errorf("predict: %d features, model expects %d: %w", len(fv), c.scaler.Dims(), types.ErrInvalidParameter)
	}

	probs := c.forest.PredictProba(c.scaler.TransformRow(fv))
	best := argmax(probs)

	result := types.ClassificationResult{
		Exercise:      c.labels[best],
		Confidence:    probs[best],
		Probabilities: probs,
	}

	c.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Predict => %s (confidence %.2f%%)", c.componentMetadata, result.Exercise, result.Confidence*100)

	return result, nil
}

// CrossValidate reports mean and standard deviation of out-of-fold accuracy
// over k folds. It fits scratch scalers and forests only; the instance's
// trained state is never touched.
func (c *ExerciseClassifier) CrossValidate(featureRows [][]float64, labels []int, folds int) (types.CrossValidationReport, error) {
	if err := c.validateTrainingSet(featureRows, labels); err != nil {
		return types.CrossValidationReport{}, err
	}
	if folds < 2 || folds > len(featureRows) {
		return types.CrossValidationReport{}, fmt.Errorf("%d folds for %d samples: %w", folds, len(featureRows), types.ErrInvalidParameter)
	}

	n := len(featureRows)
	rng := rand.New(rand.NewSource(c.config.Seed))
	order := rng.Perm(n)

	scores := make([]float64, 0, folds)
	for fold := 0; fold < folds; fold++ {
		lo := fold * n / folds
		hi := (fold + 1) * n / folds

		var trainX, testX [][]float64
		var trainY, testY []int
		for i, idx := range order {
			if i >= lo && i < hi {
				testX = append(testX, featureRows[idx])
				testY = append(testY, labels[idx])
			} else {
				trainX = append(trainX, featureRows[idx])
				trainY = append(trainY, labels[idx])
			}
		}

		scaler := &StandardScaler{}
		scaler.Fit(trainX)

		forest := &Forest{Config: c.config}
		forest.Fit(scaler.Transform(trainX), trainY, len(c.labels))

		scores = append(scores, forest.Accuracy(scaler.Transform(testX), testY))
	}

	report := types.CrossValidationReport{
		MeanAccuracy: stat.Mean(scores, nil),
		StdAccuracy:  utils.PopStd(scores),
		FoldScores:   scores,
	}

	c.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: CrossValidate => %d-fold accuracy %.2f%% (+/- %.2f%%)", c.componentMetadata, folds, report.MeanAccuracy*100, report.StdAccuracy*200)

	return report, nil
}

// FeatureImportances returns the normalized impurity-decrease importance of
// each feature in the trained ensemble.
func (c *ExerciseClassifier) FeatureImportances() ([]float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.trained {
		return nil, fmt.Errorf("feature importances: %w", types.ErrNotTrained)
	}

	out := make([]float64, len(c.forest.Importances))
	copy(out, c.forest.Importances)
	return out, nil
}

// IsTrained reports whether the classifier holds a usable model.
func (c *ExerciseClassifier) IsTrained() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trained
}

// Classes returns the label vocabulary in index order.
func (c *ExerciseClassifier) Classes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

func (c *ExerciseClassifier) validateTrainingSet(featureRows [][]float64, labels []int) error {
	if len(featureRows) == 0 || len(featureRows) != len(labels) {
		return fmt.Errorf("%d feature rows for %d labels: %w", len(featureRows), len(labels), types.ErrInvalidParameter)
	}
	dims := len(featureRows[0])
	if dims == 0 {
		return fmt.Errorf("empty feature rows: %w", types.ErrInvalidParameter)
	}
	for i, row := range featureRows {
		if len(row) != dims {
			return fmt.Errorf("feature row %d has %d features, expected %d: %w", i, len(row), dims, types.ErrInvalidParameter)
		}
	}
	for i, label := range labels {
		if label < 0 || label >= len(c.labels) {
			return fmt.Errorf("label %d at row %d outside vocabulary of %d classes: %w", label, i, len(c.labels), types.ErrInvalidParameter)
		}
	}
	return nil
}

// GetComponentMetadata returns the metadata.
func (c *ExerciseClassifier) GetComponentMetadata() types.ComponentMetadata {
	return c.componentMetadata
}

// SetComponentMetadata sets the component metadata.
func (c *ExerciseClassifier) SetComponentMetadata(name string, id string) {
	c.componentMetadata = types.ComponentMetadata{Type: c.componentMetadata.Type, Name: name, ID: id}
}

func (c *ExerciseClassifier) ConnectLogger(l ...types.Logger) {
	c.loggersLock.Lock()
	defer c.loggersLock.Unlock()
	c.loggers = append(c.loggers, l...)
}

func (c *ExerciseClassifier) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	c.loggersLock.Lock()
	defer c.loggersLock.Unlock()
	msg := fmt.Sprintf(format, args...)
	for _, logger := range c.loggers {
		if logger == nil || logger.GetLevel() > level {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg)
		case types.InfoLevel:
			logger.Info(msg)
		case types.WarnLevel:
			logger.Warn(msg)
		case types.ErrorLevel:
			logger.Error(msg)
		case types.DPanicLevel:
			logger.DPanic(msg)
		case types.PanicLevel:
			logger.Panic(msg)
		case types.FatalLevel:
			logger.Fatal(msg)
		}
	}
}
