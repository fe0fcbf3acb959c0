package signalgen

import (
	"math"

	"github.com/smartcoach/motionkit/pkg/internal/types"
	"gonum.org/v1/gonum/stat/distuv"
)

// axisPhases offsets the three axes so they do not move in lockstep; the
// resulting inter-axis correlations are part of what makes each exercise
// separable for the classifier.
var axisPhases = [3]float64{0, math.Pi / 4, math.Pi / 2}

// synthesize builds the waveform described by a profile: per axis, a base
// sinusoid at the rep cadence, a second harmonic, the gravity/posture
// baseline, and Gaussian sensor jitter.
func synthesize(p types.ExerciseProfile, n int, samplingRateHz, noiseScale float64, noise distuv.Normal) types.Signal {
	sig := types.Signal{
		Timestamps:   make([]float64, n),
		X:            make([]float64, n),
		Y:            make([]float64, n),
		Z:            make([]float64, n),
		SamplingRate: samplingRateHz,
	}

	axes := [3][]float64{sig.X, sig.Y, sig.Z}
	omega := 2 * math.Pi * p.RepFrequencyHz
	sigma := p.NoiseSigma * noiseScale

	for i := 0; i < n; i++ {
		t := float64(i) / samplingRateHz
		sig.Timestamps[i] = t
		for a := 0; a < 3; a++ {
			v := p.Baseline[a] +
				p.Amplitude[a]*math.Sin(omega*t+axisPhases[a]) +
				p.HarmonicFraction*p.Amplitude[a]*math.Sin(2*omega*t+axisPhases[a])
			if sigma > 0 {
				v += sigma * noise.Rand()
			}
			axes[a][i] = v
		}
	}

	return sig
}
