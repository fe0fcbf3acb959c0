package classifier

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler standardizes features to zero mean and unit variance.
// Fields are exported for gob serialization of the model artifact.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

// Fit learns per-feature mean and population standard deviation from the
// training matrix. Zero-variance features keep Std 1 so Transform leaves
// them centered instead of dividing by zero.
func (s *StandardScaler) Fit(features [][]float64) {
	if len(features) == 0 {
		return
	}
	dims := len(features[0])
	s.Mean = make([]float64, dims)
	s.Std = make([]float64, dims)

	column := make([]float64, len(features))
	for j := 0; j < dims; j++ {
		for i, row := range features {
			column[i] = row[j]
		}
		mean := stat.Mean(column, nil)
		var sumSq float64
		for _, v := range column {
			d := v - mean
			sumSq += d * d
		}
		std := math.Sqrt(sumSq / float64(len(column)))
		if std == 0 {
			std = 1
		}
		s.Mean[j] = mean
		s.Std[j] = std
	}
}

// TransformRow standardizes one feature vector, returning a new slice.
func (s *StandardScaler) TransformRow(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return out
}

// Transform standardizes a feature matrix using the stored statistics.
func (s *StandardScaler) Transform(features [][]float64) [][]float64 {
	out := make([][]float64, len(features))
	for i, row := range features {
		out[i] = s.TransformRow(row)
	}
	return out
}

// Dims returns the feature dimensionality the scaler was fitted on.
func (s *StandardScaler) Dims() int {
	return len(s.Mean)
}
