package signalgen

import (
	"golang.org/x/exp/rand"

	"github.com/smartcoach/motionkit/pkg/internal/types"
)

// WithLogger registers loggers for the signal generator.
func WithLogger(l ...types.Logger) types.Option[types.SignalGenerator] {
	return func(g types.SignalGenerator) {
		g.ConnectLogger(l...)
	}
}

// WithSeed seeds the noise source for reproducible signals.
func WithSeed(seed uint64) types.Option[types.SignalGenerator] {
	return func(g types.SignalGenerator) {
		if sg, ok := g.(*SignalGenerator); ok {
			sg.src = rand.NewSource(seed)
		}
	}
}

// WithNoiseScale scales the profile noise sigma; 0 disables noise entirely,
// which yields perfectly periodic signals for tests.
func WithNoiseScale(scale float64) types.Option[types.SignalGenerator] {
	return func(g types.SignalGenerator) {
		if sg, ok := g.(*SignalGenerator); ok && scale >= 0 {
			sg.noiseScale = scale
		}
	}
}
