package analyzer

import "math"

// DetectPeaks finds repetition peaks in a magnitude signal: local maxima
// whose prominence reaches minProminence, at least minSpacing samples apart.
// When two candidates fall inside the spacing window the larger one wins,
// which keeps noise bumps riding on a rep from double-counting it.
func DetectPeaks(samples []float64, minProminence float64, minSpacing int) []int {
	if len(samples) < 3 {
		return nil
	}
	if minSpacing < 1 {
		minSpacing = 1
	}

	var peaks []int
	for i := 1; i < len(samples)-1; i++ {
		if !(samples[i] > samples[i-1] && samples[i] >= samples[i+1]) {
			continue
		}
		if prominence(samples, i) < minProminence {
			continue
		}
		if len(peaks) > 0 && i-peaks[len(peaks)-1] < minSpacing {
			if samples[i] > samples[peaks[len(peaks)-1]] {
				peaks[len(peaks)-1] = i
			}
			continue
		}
		peaks = append(peaks, i)
	}
	return peaks
}

// prominence measures how far a peak rises above its surroundings: the drop
// from the peak to the higher of the two bases, where each base is the
// lowest sample between the peak and the nearest higher ground on that side.
func prominence(samples []float64, peak int) float64 {
	left := samples[peak]
	for j := peak - 1; j >= 0 && samples[j] <= samples[peak]; j-- {
		if samples[j] < left {
			left = samples[j]
		}
	}

	right := samples[peak]
	for j := peak + 1; j < len(samples) && samples[j] <= samples[peak]; j++ {
		if samples[j] < right {
			right = samples[j]
		}
	}

	return samples[peak] - math.Max(left, right)
}
