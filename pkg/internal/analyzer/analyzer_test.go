package analyzer_test

import (
	"errors"
	"math"
	"testing"

	"github.com/smartcoach/motionkit/pkg/internal/analyzer"
	"github.com/smartcoach/motionkit/pkg/internal/signalgen"
	"github.com/smartcoach/motionkit/pkg/internal/types"
)

func TestAnalyze_SquatRepetitionsInExpectedRange(t *testing.T) {
	g := signalgen.NewSignalGenerator()
	m := analyzer.NewMovementAnalyzer()

	sig, err := g.Generate(types.ExerciseSquat, 10, 50)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	result, err := m.Analyze(sig, types.ExerciseSquat)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if result.Repetitions < 8 || result.Repetitions > 12 {
		t.Errorf("squat over 10s: %d reps, want 8-12", result.Repetitions)
	}
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("score %v outside [0,100]", result.Score)
	}
	if result.Regularity < 0 || result.Regularity > 100 {
		t.Errorf("regularity %v outside [0,100]", result.Regularity)
	}
	if result.Duration != 10 {
		t.Errorf("duration %v, want 10", result.Duration)
	}

	wantSpeed := float64(result.Repetitions) * 6
	if math.Abs(result.Speed-wantSpeed) > 1e-9 {
		t.Errorf("speed %v, want %v reps/min", result.Speed, wantSpeed)
	}
}

func TestAnalyze_RepetitionCountTracksCadence(t *testing.T) {
	g := signalgen.NewSignalGenerator()
	m := analyzer.NewMovementAnalyzer()

	// Plank is isometric and excluded: its near-zero rep count is covered
	// by its own expectation below.
	dynamic := []string{
		types.ExerciseSquat,
		types.ExercisePushup,
		types.ExerciseCurl,
		types.ExerciseJumpingJack,
	}

	const duration = 10.0
	for _, exercise := range dynamic {
		profile, _ := types.ProfileFor(exercise)
		expected := profile.RepFrequencyHz * duration

		sig, err := g.Generate(exercise, duration, 50)
		if err != nil {
			t.Fatalf("Generate(%q) error: %v", exercise, err)
		}
		result, err := m.Analyze(sig, exercise)
		if err != nil {
			t.Fatalf("Analyze(%q) error: %v", exercise, err)
		}

		lo := int(math.Floor(expected * 0.7))
		hi := int(math.Ceil(expected * 1.3))
		if result.Repetitions < lo || result.Repetitions > hi {
			t.Errorf("%s: %d reps, want within [%d,%d] of expected %.1f", exercise, result.Repetitions, lo, hi, expected)
		}
	}

	sig, err := g.Generate(types.ExercisePlank, duration, 50)
	if err != nil {
		t.Fatalf("Generate(plank) error: %v", err)
	}
	result, err := m.Analyze(sig, types.ExercisePlank)
	if err != nil {
		t.Fatalf("Analyze(plank) error: %v", err)
	}
	if result.Repetitions > 5 {
		t.Errorf("plank: %d reps, want a near-static count", result.Repetitions)
	}
}

func TestAnalyze_ZeroSignal(t *testing.T) {
	m := analyzer.NewMovementAnalyzer()

	n := 500
	sig := types.Signal{
		Timestamps:   make([]float64, n),
		X:            make([]float64, n),
		Y:            make([]float64, n),
		Z:            make([]float64, n),
		SamplingRate: 50,
	}
	for i := 0; i < n; i++ {
		sig.Timestamps[i] = float64(i) / 50
	}

	result, err := m.Analyze(sig, types.ExerciseSquat)
	if err != nil {
		t.Fatalf("Analyze() on zero signal should not fail, got %v", err)
	}
	if result.Repetitions != 0 || result.Score != 0 || result.Regularity != 0 || result.Speed != 0 {
		t.Errorf("zero signal: got %+v, want all-zero result", result)
	}
	if result.Duration != 10 {
		t.Errorf("zero signal duration %v, want 10", result.Duration)
	}
}

func TestAnalyze_PerfectlyPeriodicRegularity(t *testing.T) {
	g := signalgen.NewSignalGenerator(signalgen.WithNoiseScale(0))
	m := analyzer.NewMovementAnalyzer()

	// Squat at 1 Hz sampled at 50 Hz puts every rep exactly 50 samples
	// apart, so inter-peak spacing is constant.
	sig, err := g.Generate(types.ExerciseSquat, 10, 50)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	result, err := m.Analyze(sig, types.ExerciseSquat)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if result.Regularity < 99.9 {
		t.Errorf("noiseless periodic signal regularity %v, want 100", result.Regularity)
	}
}

func TestAnalyze_UnknownExercise(t *testing.T) {
	m := analyzer.NewMovementAnalyzer()

	_, err := m.Analyze(types.Signal{SamplingRate: 50}, "handstand")
	if !errors.Is(err, types.ErrInvalidExerciseType) {
		t.Fatalf("expected ErrInvalidExerciseType, got %v", err)
	}
}

func TestAnalyze_MismatchedAxes(t *testing.T) {
	m := analyzer.NewMovementAnalyzer()

	sig := types.Signal{
		Timestamps:   []float64{0, 0.02, 0.04},
		X:            []float64{1, 2, 3},
		Y:            []float64{1, 2},
		Z:            []float64{1, 2, 3},
		SamplingRate: 50,
	}
	_, err := m.Analyze(sig, types.ExerciseSquat)
	if !errors.Is(err, types.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestAnalyze_ProfileOverride(t *testing.T) {
	// An override with an impossibly high prominence should suppress all
	// detections for that exercise.
	profile, _ := types.ProfileFor(types.ExerciseSquat)
	profile.MinProminence = 1e6

	g := signalgen.NewSignalGenerator()
	m := analyzer.NewMovementAnalyzer(
		analyzer.WithProfileOverride(types.ExerciseSquat, profile),
	)

	sig, err := g.Generate(types.ExerciseSquat, 10, 50)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	result, err := m.Analyze(sig, types.ExerciseSquat)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if result.Repetitions != 0 {
		t.Errorf("override prominence 1e6: %d reps, want 0", result.Repetitions)
	}
}
