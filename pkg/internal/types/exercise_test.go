package types_test

import (
	"testing"

	"github.com/smartcoach/motionkit/pkg/internal/types"
)

func TestExerciseNames_StableOrder(t *testing.T) {
	want := []string{
		types.ExerciseSquat,
		types.ExercisePushup,
		types.ExerciseCurl,
		types.ExerciseJumpingJack,
		types.ExercisePlank,
	}

	names := types.ExerciseNames()
	if len(names) != len(want) {
		t.Fatalf("%d exercises, want %d", len(names), len(want))
	}
	for i, name := range names {
		if name != want[i] {
			t.Errorf("exercise %d is %q, want %q", i, name, want[i])
		}
		if types.ExerciseIndex(name) != i {
			t.Errorf("ExerciseIndex(%q) = %d, want %d", name, types.ExerciseIndex(name), i)
		}
	}

	if types.ExerciseIndex("handstand") != -1 {
		t.Errorf("ExerciseIndex of unknown label = %d, want -1", types.ExerciseIndex("handstand"))
	}
}

func TestProfileFor(t *testing.T) {
	for _, name := range types.ExerciseNames() {
		profile, ok := types.ProfileFor(name)
		if !ok {
			t.Fatalf("ProfileFor(%q) not found", name)
		}
		if profile.RepFrequencyHz <= 0 {
			t.Errorf("%s: rep frequency %v, want > 0", name, profile.RepFrequencyHz)
		}
		if profile.MinRepInterval <= 0 {
			t.Errorf("%s: min rep interval %v, want > 0", name, profile.MinRepInterval)
		}
		if profile.MinProminence <= 0 {
			t.Errorf("%s: min prominence %v, want > 0", name, profile.MinProminence)
		}
		for axis, amp := range profile.Amplitude {
			if amp < 0 {
				t.Errorf("%s: amplitude[%d] = %v, want >= 0", name, axis, amp)
			}
		}
	}

	if _, ok := types.ProfileFor("handstand"); ok {
		t.Error("ProfileFor accepted a label outside the vocabulary")
	}
}

func TestSignal_Duration(t *testing.T) {
	sig := types.Signal{
		Timestamps:   []float64{0, 0.02, 0.04, 0.06},
		X:            make([]float64, 4),
		Y:            make([]float64, 4),
		Z:            make([]float64, 4),
		SamplingRate: 50,
	}
	if sig.Len() != 4 {
		t.Errorf("Len() = %d, want 4", sig.Len())
	}
	if got := sig.Duration(); got != 0.08 {
		t.Errorf("Duration() = %v, want 0.08", got)
	}

	var empty types.Signal
	if empty.Duration() != 0 {
		t.Errorf("empty signal Duration() = %v, want 0", empty.Duration())
	}
}
