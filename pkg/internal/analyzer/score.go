package analyzer

import (
	"math"

	"github.com/smartcoach/motionkit/pkg/internal/utils"
	"gonum.org/v1/gonum/stat"
)

// Composite score weights. Each term is in [0,100] and monotonic: more even
// timing, a rep count closer to the cadence-expected one, and steadier
// energy can only raise the score.
const (
	weightRepAccuracy       = 0.5
	weightRegularity        = 0.3
	weightEnergyConsistency = 0.2
)

// regularityScore maps the coefficient of variation of inter-peak intervals
// to [0,100]. Perfectly even spacing scores 100; fewer than two peaks leave
// the variance undefined and score 0.
func regularityScore(peaks []int, samplingRateHz float64) float64 {
	if len(peaks) < 2 || samplingRateHz <= 0 {
		return 0
	}

	intervals := make([]float64, len(peaks)-1)
	for i := 1; i < len(peaks); i++ {
		intervals[i-1] = float64(peaks[i]-peaks[i-1]) / samplingRateHz
	}

	mean := stat.Mean(intervals, nil)
	if mean <= 0 {
		return 0
	}
	cv := utils.PopStd(intervals) / mean

	return utils.Clamp(100*(1-cv), 0, 100)
}

// energyConsistency scores how evenly movement energy is spread across the
// window: 100 when every one-second slice carries the same dynamic RMS,
// approaching 0 for bursty signals. Windows shorter than two seconds carry
// no evidence of inconsistency and score 100.
func energyConsistency(magnitude []float64, samplingRateHz float64) float64 {
	window := int(samplingRateHz)
	if window < 1 || len(magnitude) < 2*window {
		return 100
	}

	mean := stat.Mean(magnitude, nil)

	var rms []float64
	for start := 0; start+window <= len(magnitude); start += window {
		var sumSq float64
		for _, v := range magnitude[start : start+window] {
			d := v - mean
			sumSq += d * d
		}
		rms = append(rms, math.Sqrt(sumSq/float64(window)))
	}

	rmsMean := stat.Mean(rms, nil)
	if rmsMean <= 0 {
		return 0
	}
	cv := utils.PopStd(rms) / rmsMean

	return utils.Clamp(100*(1-cv), 0, 100)
}

// compositeScore blends rep-count accuracy against the cadence-expected
// count with timing regularity and energy consistency.
func compositeScore(reps, expected, regularity, consistency float64) float64 {
	repAccuracy := 100.0
	if expected > 0 || reps > 0 {
		lo, hi := math.Min(reps, expected), math.Max(reps, expected)
		if hi > 0 {
			repAccuracy = 100 * lo / hi
		}
	}

	score := weightRepAccuracy*repAccuracy +
		weightRegularity*regularity +
		weightEnergyConsistency*consistency

	return utils.Clamp(score, 0, 100)
}
