package analyzer

import (
	"fmt"
	"math"

	"github.com/smartcoach/motionkit/pkg/internal/types"
)

// Analyze computes the AnalysisResult for one signal window. Zero detected
// repetitions is a valid low-performance result, not an error; the all-zero
// result is returned without failure.
func (m *MovementAnalyzer) Analyze(sig types.Signal, exercise string) (types.AnalysisResult, error) {
	profile, ok := m.profileFor(exercise)
	if !ok {
		m.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: Analyze => Unknown exercise %q", m.componentMetadata, exercise)
		return types.AnalysisResult{}, fmt.Errorf("exercise %q: %w", exercise, types.ErrInvalidExerciseType)
	}

	n := sig.Len()
	if len(sig.X) != n || len(sig.Y) != n || len(sig.Z) != n {
		return types.AnalysisResult{}, fmt.Errorf("axis lengths %d/%d/%d do not match %d timestamps: %w", len(sig.X), len(sig.Y), len(sig.Z), n, types.ErrInvalidParameter)
	}

	duration := sig.Duration()

	magnitude := make([]float64, n)
	for i := 0; i < n; i++ {
		magnitude[i] = math.Sqrt(sig.X[i]*sig.X[i] + sig.Y[i]*sig.Y[i] + sig.Z[i]*sig.Z[i])
	}

	minSpacing := int(profile.MinRepInterval * sig.SamplingRate)
	peaks := DetectPeaks(magnitude, profile.MinProminence, minSpacing)
	reps := len(peaks)

	if reps == 0 {
		m.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Analyze => No repetitions detected for %s over %.1f s", m.componentMetadata, exercise, duration)
		return types.AnalysisResult{Duration: duration}, nil
	}

	regularity := regularityScore(peaks, sig.SamplingRate)

	speed := 0.0
	if duration > 0 {
		speed = float64(reps) / (duration / 60.0)
	}

	expected := profile.RepFrequencyHz * duration
	score := compositeScore(float64(reps), expected, regularity, energyConsistency(magnitude, sig.SamplingRate))

	result := types.AnalysisResult{
		Repetitions: reps,
		Duration:    duration,
		Score:       score,
		Regularity:  regularity,
		Speed:       speed,
	}

	m.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Analyze => %s: %d reps, score %.1f, regularity %.1f, %.1f reps/min", m.componentMetadata, exercise, reps, score, regularity, speed)

	return result, nil
}

// GetComponentMetadata returns the metadata.
func (m *MovementAnalyzer) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

// SetComponentMetadata sets the component metadata.
func (m *MovementAnalyzer) SetComponentMetadata(name string, id string) {
	m.componentMetadata = types.ComponentMetadata{Type: m.componentMetadata.Type, Name: name, ID: id}
}

func (m *MovementAnalyzer) ConnectLogger(l ...types.Logger) {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	m.loggers = append(m.loggers, l...)
}

func (m *MovementAnalyzer) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	msg := fmt.Sprintf(format, args...)
	for _, logger := range m.loggers {
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
