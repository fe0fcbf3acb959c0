package features

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// dominantFrequency returns the frequency of the largest-magnitude spectral
// bin in normalized cycles/sample, scanning bins [1, n/2) so the DC
// component never wins. Windows too short to carry a non-DC bin yield 0.
func dominantFrequency(axis []float64) float64 {
	n := len(axis)
	if n < 4 {
		return 0
	}

	spectrum := fft.FFTReal(axis)

	maxBin := 0
	maxMag := 0.0
	for k := 1; k < n/2; k++ {
		if mag := cmplx.Abs(spectrum[k]); mag > maxMag {
			maxMag = mag
			maxBin = k
		}
	}
	if maxBin == 0 {
		return 0
	}

	return float64(maxBin) / float64(n)
}
