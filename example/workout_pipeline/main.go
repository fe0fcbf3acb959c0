package main

import (
	"fmt"

	"github.com/smartcoach/motionkit/pkg/builder"
)

func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	generator := builder.NewSignalGenerator(
		builder.SignalGeneratorWithLogger(logger),
		builder.SignalGeneratorWithSeed(42),
	)
	extractor := builder.NewFeatureExtractor()
	classifier := builder.NewExerciseClassifier(
		builder.ExerciseClassifierWithLogger(logger),
	)
	analyzer := builder.NewMovementAnalyzer(
		builder.MovementAnalyzerWithLogger(logger),
	)

	// Fit a small model so sessions can be analyzed under the predicted
	// label rather than a caller-supplied one.
	var rows [][]float64
	var labels []int
	for idx, exercise := range builder.ExerciseNames() {
		for i := 0; i < 15; i++ {
			signal, err := generator.Generate(exercise, 5, 50)
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
	if _, err := classifier.Train(rows, labels, 50); err != nil {
		fmt.Printf("train: %v\n", err)
		return
	}

	for _, exercise := range builder.ExerciseNames() {
		session, err := generator.Generate(exercise, 30, 50)
		if err != nil {
			fmt.Printf("generate %s session: %v\n", exercise, err)
			return
		}

		prediction, err := classifier.Predict(session.X, session.Y, session.Z)
		if err != nil {
			fmt.Printf("predict: %v\n", err)
			return
		}

		result, err := analyzer.Analyze(session, prediction.Exercise)
		if err != nil {
			fmt.Printf("analyze %s: %v\n", prediction.Exercise, err)
			return
		}

		fmt.Printf("%-12s predicted=%-12s (%.0f%%) reps=%-3d speed=%5.1f/min regularity=%5.1f score=%5.1f\n",
			exercise, prediction.Exercise, prediction.Confidence*100,
			result.Repetitions, result.Speed, result.Regularity, result.Score)
	}
}
