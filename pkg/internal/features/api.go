package features

import (
	"fmt"
	"math"

	"github.com/smartcoach/motionkit/pkg/internal/types"
	"github.com/smartcoach/motionkit/pkg/internal/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Extract computes the feature vector laid out by types.FeatureCount:
// per-axis statistics, magnitude statistics, dominant FFT frequency per
// axis, mean-square energy per axis and pairwise axis correlations.
// Constant axes yield zero-valued skew/kurtosis/correlation features rather
// than propagating NaN.
func (e *FeatureExtractor) Extract(x, y, z []float64) (types.FeatureVector, error) {
	n := len(x)
	if len(y) != n || len(z) != n {
		return nil, fmt.Errorf("axis lengths %d/%d/%d differ: %w", len(x), len(y), len(z), types.ErrInvalidParameter)
	}
	if n < 2 {
		e.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: Extract => %d samples is below the minimum of 2", e.componentMetadata, n)
		return nil, fmt.Errorf("%d samples: %w", n, types.ErrInsufficientSamples)
	}

	fv := make(types.FeatureVector, 0, types.FeatureCount)
	axes := [3][]float64{x, y, z}

	// Per-axis statistics: mean, population std, min, max, skew, excess kurtosis.
	for _, axis := range axes {
		fv = append(fv,
			stat.Mean(axis, nil),
			utils.PopStd(axis),
			floats.Min(axis),
			floats.Max(axis),
			utils.SafeFloat(stat.Skew(axis, nil)),
			utils.SafeFloat(stat.ExKurtosis(axis, nil)),
		)
	}

	// Vector magnitude statistics.
	magnitude := make([]float64, n)
	for i := 0; i < n; i++ {
		magnitude[i] = math.Sqrt(x[i]*x[i] + y[i]*y[i] + z[i]*z[i])
	}
	fv = append(fv,
		stat.Mean(magnitude, nil),
		utils.PopStd(magnitude),
		floats.Max(magnitude),
	)

	// Dominant FFT frequency per axis, DC bin excluded.
	for _, axis := range axes {
		fv = append(fv, dominantFrequency(axis))
	}

	// Raw mean-square signal energy per axis.
	for _, axis := range axes {
		fv = append(fv, floats.Dot(axis, axis)/float64(n))
	}

	// Pairwise Pearson correlations; zero for constant axes.
	fv = append(fv,
		utils.SafeFloat(stat.Correlation(x, y, nil)),
		utils.SafeFloat(stat.Correlation(x, z, nil)),
		utils.SafeFloat(stat.Correlation(y, z, nil)),
	)

	e.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: Extract => Extracted %d features from %d samples", e.componentMetadata, len(fv), n)

	return fv, nil
}

// GetComponentMetadata returns the metadata.
func (e *FeatureExtractor) GetComponentMetadata() types.ComponentMetadata {
	return e.componentMetadata
}

// SetComponentMetadata sets the component metadata.
func (e *FeatureExtractor) SetComponentMetadata(name string, id string) {
	e.componentMetadata = types.ComponentMetadata{Type: e.componentMetadata.Type, Name: name, ID: id}
}

func (e *FeatureExtractor) ConnectLogger(l ...types.Logger) {
	e.loggersLock.Lock()
	defer e.loggersLock.Unlock()
	e.loggers = append(e.loggers, l...)
}

func (e *FeatureExtractor) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	e.loggersLock.Lock()
	defer e.loggersLock.Unlock()
	msg := fmt.Sprintf(format, args...)
	for _, logger := range e.loggers {
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
