package signalgen_test

import (
	"errors"
	"math"
	"testing"

	"github.com/smartcoach/motionkit/pkg/internal/signalgen"
	"github.com/smartcoach/motionkit/pkg/internal/types"
)

func TestGenerate_SampleCounts(t *testing.T) {
	g := signalgen.NewSignalGenerator()

	for _, exercise := range types.ExerciseNames() {
		sig, err := g.Generate(exercise, 10, 50)
		if err != nil {
			t.Fatalf("Generate(%q) error: %v", exercise, err)
		}
		if sig.Len() != 500 {
			t.Errorf("Generate(%q): %d samples, want 500", exercise, sig.Len())
		}
		if len(sig.X) != 500 || len(sig.Y) != 500 || len(sig.Z) != 500 {
			t.Errorf("Generate(%q): axis lengths %d/%d/%d, want 500", exercise, len(sig.X), len(sig.Y), len(sig.Z))
		}
	}
}

func TestGenerate_TimestampsStrictlyIncreasing(t *testing.T) {
	g := signalgen.NewSignalGenerator()

	sig, err := g.Generate(types.ExerciseSquat, 5, 50)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	step := 1.0 / 50.0
	for i := 1; i < sig.Len(); i++ {
		dt := sig.Timestamps[i] - sig.Timestamps[i-1]
		if dt <= 0 {
			t.Fatalf("timestamps not strictly increasing at %d: dt=%v", i, dt)
		}
		if math.Abs(dt-step) > 1e-9 {
			t.Fatalf("timestamp spacing at %d is %v, want %v", i, dt, step)
		}
	}
}

func TestGenerate_ReproducibleWithSeed(t *testing.T) {
	a := signalgen.NewSignalGenerator(signalgen.WithSeed(7))
	b := signalgen.NewSignalGenerator(signalgen.WithSeed(7))

	sigA, err := a.Generate(types.ExercisePushup, 4, 40)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	sigB, err := b.Generate(types.ExercisePushup, 4, 40)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for i := range sigA.X {
		if sigA.X[i] != sigB.X[i] || sigA.Y[i] != sigB.Y[i] || sigA.Z[i] != sigB.Z[i] {
			t.Fatalf("seeded generators diverged at sample %d", i)
		}
	}
}

func TestGenerate_InvalidExerciseType(t *testing.T) {
	g := signalgen.NewSignalGenerator()

	_, err := g.Generate("handstand", 10, 50)
	if !errors.Is(err, types.ErrInvalidExerciseType) {
		t.Fatalf("expected ErrInvalidExerciseType, got %v", err)
	}
}

func TestGenerate_InvalidParameters(t *testing.T) {
	g := signalgen.NewSignalGenerator()

	if _, err := g.Generate(types.ExerciseSquat, 0, 50); !errors.Is(err, types.ErrInvalidParameter) {
		t.Errorf("zero duration: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := g.Generate(types.ExerciseSquat, 10, -1); !errors.Is(err, types.ErrInvalidParameter) {
		t.Errorf("negative sampling rate: expected ErrInvalidParameter, got %v", err)
	}
}

func TestGenerate_NoiselessIsDeterministic(t *testing.T) {
	g := signalgen.NewSignalGenerator(signalgen.WithNoiseScale(0))

	sigA, err := g.Generate(types.ExerciseCurl, 3, 50)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	sigB, err := g.Generate(types.ExerciseCurl, 3, 50)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for i := range sigA.Z {
		if sigA.Z[i] != sigB.Z[i] {
			t.Fatalf("noiseless generation not deterministic at sample %d", i)
		}
	}
}
