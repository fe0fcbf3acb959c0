package signalgen

import (
	"fmt"
	"math"

	"github.com/smartcoach/motionkit/pkg/internal/types"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generate synthesizes a 3-axis acceleration signal for one exercise window.
// The result has exactly round(duration*samplingRate) samples per axis with
// timestamps spaced by 1/samplingRate. The base waveform is periodic at the
// profile's rep cadence so a peak detector recovers cadence*duration reps
// within tolerance.
func (g *SignalGenerator) Generate(exercise string, durationSec, samplingRateHz float64) (types.Signal, error) {
	if durationSec <= 0 || samplingRateHz <= 0 {
		g.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: Generate => Rejected duration=%v samplingRate=%v", g.componentMetadata, durationSec, samplingRateHz)
		return types.Signal{}, fmt.Errorf("duration %v, sampling rate %v: %w", durationSec, samplingRateHz, types.ErrInvalidParameter)
	}

	profile, ok := types.ProfileFor(exercise)
	if !ok {
		g.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: Generate => Unknown exercise %q", g.componentMetadata, exercise)
		return types.Signal{}, fmt.Errorf("exercise %q: %w", exercise, types.ErrInvalidExerciseType)
	}

	n := int(math.Round(durationSec * samplingRateHz))

	g.genLock.Lock()
	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: g.src}
	sig := synthesize(profile, n, samplingRateHz, g.noiseScale, noise)
	g.genLock.Unlock()

	g.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Generate => Generated %s signal: %d samples at %.1f Hz over %.1f s", g.componentMetadata, exercise, n, samplingRateHz, durationSec)

	return sig, nil
}

// GetComponentMetadata returns the metadata.
func (g *SignalGenerator) GetComponentMetadata() types.ComponentMetadata {
	return g.componentMetadata
}

// SetComponentMetadata sets the component metadata.
func (g *SignalGenerator) SetComponentMetadata(name string, id string) {
	g.componentMetadata = types.ComponentMetadata{Type: g.componentMetadata.Type, Name: name, ID: id}
}

func (g *SignalGenerator) ConnectLogger(l ...types.Logger) {
	g.loggersLock.Lock()
	defer g.loggersLock.Unlock()
	g.loggers = append(g.loggers, l...)
}

func (g *SignalGenerator) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	g.loggersLock.Lock()
	defer g.loggersLock.Unlock()
	msg := fmt.Sprintf(format, args...)
	for _, logger := range g.loggers {
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
