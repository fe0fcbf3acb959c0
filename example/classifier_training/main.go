package main

import (
	"fmt"
	"path/filepath"

	"github.com/smartcoach/motionkit/pkg/builder"
)

const (
	windowsPerClass = 40
	windowSeconds   = 5
	samplingRateHz  = 50
)

func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	generator := builder.NewSignalGenerator(
		builder.SignalGeneratorWithLogger(logger),
		builder.SignalGeneratorWithSeed(42),
	)
	extractor := builder.NewFeatureExtractor(
		builder.FeatureExtractorWithLogger(logger),
	)

	var rows [][]float64
	var labels []int
	for idx, exercise := range builder.ExerciseNames() {
		for i := 0; i < windowsPerClass; i++ {
			signal, err := generator.Generate(exercise, windowSeconds, samplingRateHz)
			if err != nil {
				fmt.Printf("generate %s: %v\n", exercise, err)
				return
			}
			features, err := extractor.Extract(signal.X, signal.Y, signal.Z)
			if err != nil {
				fmt.Printf("extract %s: %v\n", exercise, err)
				return
			}
			rows = append(rows, features)
			labels = append(labels, idx)
		}
	}

	classifier := builder.NewExerciseClassifier(
		builder.ExerciseClassifierWithLogger(logger),
	)

	report, err := classifier.Train(rows, labels, 100)
	if err != nil {
		fmt.Printf("train: %v\n", err)
		return
	}
	fmt.Printf("trained %d trees on %d samples, accuracy %.1f%%\n",
		report.Trees, report.Samples, report.TrainAccuracy*100)

	cv, err := classifier.CrossValidate(rows, labels, 5)
	if err != nil {
		fmt.Printf("cross-validate: %v\n", err)
		return
	}
	fmt.Printf("5-fold accuracy %.1f%% (+/- %.1f%%)\n", cv.MeanAccuracy*100, cv.StdAccuracy*200)

	importances, err := classifier.FeatureImportances()
	if err != nil {
		fmt.Printf("importances: %v\n", err)
		return
	}
	top, topVal := 0, 0.0
	for i, imp := range importances {
		if imp > topVal {
			top, topVal = i, imp
		}
	}
	fmt.Printf("most informative feature: %d (importance %.3f)\n", top, topVal)

	path := filepath.Join("models", "exercise_classifier.bin")
	if err := classifier.Save(path); err != nil {
		fmt.Printf("save: %v\n", err)
		return
	}

	restored := builder.NewExerciseClassifier()
	if err := restored.Load(path); err != nil {
		fmt.Printf("load: %v\n", err)
		return
	}

	probe, err := generator.Generate(builder.ExerciseSquat, windowSeconds, samplingRateHz)
	if err != nil {
		fmt.Printf("generate probe: %v\n", err)
		return
	}
	prediction, err := restored.Predict(probe.X, probe.Y, probe.Z)
	if err != nil {
		fmt.Printf("predict: %v\n", err)
		return
	}
	fmt.Printf("restored model predicts %s (confidence %.1f%%)\n",
		prediction.Exercise, prediction.Confidence*100)
}
