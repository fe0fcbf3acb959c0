package builder

import (
	"github.com/smartcoach/motionkit/pkg/internal/signalgen"
	"github.com/smartcoach/motionkit/pkg/internal/types"
)

func NewSignalGenerator(options ...types.Option[types.SignalGenerator]) types.SignalGenerator {
	return signalgen.NewSignalGenerator(options...)
}

func SignalGeneratorWithLogger(l ...types.Logger) types.Option[types.SignalGenerator] {
	return signalgen.WithLogger(l...)
}

func SignalGeneratorWithSeed(seed uint64) types.Option[types.SignalGenerator] {
	return signalgen.WithSeed(seed)
}

func SignalGeneratorWithNoiseScale(scale float64) types.Option[types.SignalGenerator] {
	return signalgen.WithNoiseScale(scale)
}
