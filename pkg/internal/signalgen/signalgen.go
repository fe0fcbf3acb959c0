package signalgen

import (
	"sync"

	"github.com/smartcoach/motionkit/pkg/internal/types"
	"github.com/smartcoach/motionkit/pkg/internal/utils"
	"golang.org/x/exp/rand"
)

// defaultSeed keeps generated noise reproducible unless the caller overrides
// it with WithSeed.
const defaultSeed uint64 = 42

// SignalGenerator synthesizes exercise-characteristic acceleration signals.
// The waveform shape comes from the per-exercise profile table; noise comes
// from a seedable Gaussian source that advances across Generate calls.
type SignalGenerator struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex

	genLock    sync.Mutex
	src        rand.Source
	noiseScale float64
}

// NewSignalGenerator creates a SignalGenerator with the given options.
func NewSignalGenerator(options ...types.Option[types.SignalGenerator]) types.SignalGenerator {
	g := &SignalGenerator{
		componentMetadata: types.ComponentMetadata{
			Type: "SIGNAL_GENERATOR",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers:    make([]types.Logger, 0),
		src:        rand.NewSource(defaultSeed),
		noiseScale: 1.0,
	}

	for _, opt := range options {
		opt(g)
	}

	return g
}
