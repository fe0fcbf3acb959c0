package utils_test

import (
	"math"
	"testing"

	"github.com/smartcoach/motionkit/pkg/internal/utils"
)

func TestGenerateUniqueHash(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		h := utils.GenerateUniqueHash()
		if len(h) != 16 {
			t.Fatalf("expected 16-char hash, got %q", h)
		}
		if seen[h] {
			t.Fatalf("duplicate hash generated: %q", h)
		}
		seen[h] = true
	}
}

func TestClamp(t *testing.T) {
	if got := utils.Clamp(120, 0, 100); got != 100 {
		t.Errorf("Clamp(120, 0, 100) = %v, want 100", got)
	}
	if got := utils.Clamp(-3, 0, 100); got != 0 {
		t.Errorf("Clamp(-3, 0, 100) = %v, want 0", got)
	}
	if got := utils.Clamp(42, 0, 100); got != 42 {
		t.Errorf("Clamp(42, 0, 100) = %v, want 42", got)
	}
}

func TestPopStd(t *testing.T) {
	if got := utils.PopStd([]float64{2, 4, 4, 4, 5, 5, 7, 9}); math.Abs(got-2) > 1e-12 {
		t.Errorf("PopStd = %v, want 2", got)
	}
	if got := utils.PopStd([]float64{3, 3, 3}); got != 0 {
		t.Errorf("PopStd of constant input = %v, want 0", got)
	}
	if got := utils.PopStd(nil); got != 0 {
		t.Errorf("PopStd(nil) = %v, want 0", got)
	}
}

func TestSafeFloat(t *testing.T) {
	if got := utils.SafeFloat(math.NaN()); got != 0 {
		t.Errorf("SafeFloat(NaN) = %v, want 0", got)
	}
	if got := utils.SafeFloat(math.Inf(1)); got != 0 {
		t.Errorf("SafeFloat(+Inf) = %v, want 0", got)
	}
	if got := utils.SafeFloat(1.5); got != 1.5 {
		t.Errorf("SafeFloat(1.5) = %v, want 1.5", got)
	}
}
