package analyzer_test

import (
	"math"
	"testing"

	"github.com/smartcoach/motionkit/pkg/internal/analyzer"
)

func TestDetectPeaks_SineWave(t *testing.T) {
	// 5 cycles over 500 samples: maxima at samples 25, 125, 225, 325, 425.
	n := 500
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 5 * float64(i) / float64(n))
	}

	peaks := analyzer.DetectPeaks(samples, 0.5, 50)
	if len(peaks) != 5 {
		t.Fatalf("DetectPeaks() found %d peaks, want 5 (at %v)", len(peaks), peaks)
	}
	for k, p := range peaks {
		want := 25 + 100*k
		if p < want-1 || p > want+1 {
			t.Errorf("peak %d at sample %d, want near %d", k, p, want)
		}
	}
}

func TestDetectPeaks_ProminenceRejectsRipples(t *testing.T) {
	// A large swell carrying a small ripple: only the swell's crest counts.
	n := 200
	samples := make([]float64, n)
	for i := range samples {
		x := float64(i) / float64(n)
		samples[i] = 5*math.Sin(2*math.Pi*x) + 0.2*math.Sin(2*math.Pi*20*x)
	}

	peaks := analyzer.DetectPeaks(samples, 1.0, 10)
	if len(peaks) != 1 {
		t.Fatalf("DetectPeaks() found %d peaks, want 1 (at %v)", len(peaks), peaks)
	}
}

func TestDetectPeaks_SpacingKeepsLargerPeak(t *testing.T) {
	samples := make([]float64, 40)
	samples[10] = 3
	samples[14] = 5
	samples[30] = 4

	peaks := analyzer.DetectPeaks(samples, 1, 10)
	if len(peaks) != 2 {
		t.Fatalf("DetectPeaks() found %d peaks, want 2 (at %v)", len(peaks), peaks)
	}
	if peaks[0] != 14 {
		t.Errorf("first peak at %d, want the larger candidate at 14", peaks[0])
	}
	if peaks[1] != 30 {
		t.Errorf("second peak at %d, want 30", peaks[1])
	}
}

func TestDetectPeaks_Degenerate(t *testing.T) {
	if peaks := analyzer.DetectPeaks(nil, 1, 1); peaks != nil {
		t.Errorf("nil input: got %v, want no peaks", peaks)
	}
	if peaks := analyzer.DetectPeaks([]float64{1, 2}, 1, 1); peaks != nil {
		t.Errorf("two samples: got %v, want no peaks", peaks)
	}
	flat := make([]float64, 100)
	if peaks := analyzer.DetectPeaks(flat, 0.1, 1); len(peaks) != 0 {
		t.Errorf("flat input: got %v, want no peaks", peaks)
	}
}
