package types

// Exercise labels form the closed vocabulary shared by the generator, the
// analyzer and the classifier. Label order is load-bearing: classifiers
// encode labels by index into ExerciseNames().
const (
	ExerciseSquat       = "squat"
	ExercisePushup      = "pushup"
	ExerciseCurl        = "curl"
	ExerciseJumpingJack = "jumping_jack"
	ExercisePlank       = "plank"
)

// ExerciseProfile holds the per-exercise tunable constants used by signal
// synthesis and repetition scoring. Adding an exercise type means adding one
// entry to the profile table.
type ExerciseProfile struct {
	Name string // display name

	// Waveform shape for synthesis.
	RepFrequencyHz   float64    // expected repetition cadence
	Amplitude        [3]float64 // per-axis oscillation amplitude, m/s²
	Baseline         [3]float64 // per-axis gravity/posture offset, m/s²
	HarmonicFraction float64    // second-harmonic amplitude as a fraction of the base
	NoiseSigma       float64    // sensor jitter standard deviation, m/s²

	// Repetition detection thresholds.
	MinRepInterval float64 // minimum plausible time between reps, seconds
	MinProminence  float64 // minimum magnitude prominence of a rep peak, m/s²
}

// profiles is keyed by exercise label. Baselines keep the dominant axis
// offset from zero so the magnitude signal oscillates at the rep frequency
// rather than its double.
var profiles = map[string]ExerciseProfile{
	ExerciseSquat: {
		Name:             "Squat",
		RepFrequencyHz:   1.0,
		Amplitude:        [3]float64{0.8, 0.5, 3.5},
		Baseline:         [3]float64{0, 0, 9.81},
		HarmonicFraction: 0.25,
		NoiseSigma:       0.30,
		MinRepInterval:   0.5,
		MinProminence:    2.0,
	},
	ExercisePushup: {
		Name:             "Push-up",
		RepFrequencyHz:   0.75,
		Amplitude:        [3]float64{1.4, 0.6, 2.6},
		Baseline:         [3]float64{2.0, 0, 9.6},
		HarmonicFraction: 0.20,
		NoiseSigma:       0.25,
		MinRepInterval:   0.6,
		MinProminence:    1.5,
	},
	ExerciseCurl: {
		Name:             "Bicep Curl",
		RepFrequencyHz:   0.65,
		Amplitude:        [3]float64{0.5, 2.2, 0.6},
		Baseline:         [3]float64{0, 6.9, 6.9},
		HarmonicFraction: 0.15,
		NoiseSigma:       0.22,
		MinRepInterval:   0.7,
		MinProminence:    1.2,
	},
	ExerciseJumpingJack: {
		Name:             "Jumping Jack",
		RepFrequencyHz:   2.2,
		Amplitude:        [3]float64{2.5, 1.5, 4.0},
		Baseline:         [3]float64{0, 0, 9.81},
		HarmonicFraction: 0.30,
		NoiseSigma:       0.50,
		MinRepInterval:   0.3,
		MinProminence:    2.4,
	},
	// Plank is an isometric hold: a slow low-amplitude sway rather than a
	// rep waveform, so detected repetitions stay near zero.
	ExercisePlank: {
		Name:             "Plank",
		RepFrequencyHz:   0.25,
		Amplitude:        [3]float64{0.15, 0.15, 0.5},
		Baseline:         [3]float64{0, 0, 9.81},
		HarmonicFraction: 0.10,
		NoiseSigma:       0.10,
		MinRepInterval:   2.0,
		MinProminence:    0.3,
	},
}

var exerciseOrder = []string{
	ExerciseSquat,
	ExercisePushup,
	ExerciseCurl,
	ExerciseJumpingJack,
	ExercisePlank,
}

// ExerciseNames returns the closed exercise vocabulary in label-index order.
func ExerciseNames() []string {
	out := make([]string, len(exerciseOrder))
	copy(out, exerciseOrder)
	return out
}

// ProfileFor returns the profile for an exercise label, reporting whether the
// label belongs to the vocabulary.
func ProfileFor(exercise string) (ExerciseProfile, bool) {
	p, ok := profiles[exercise]
	return p, ok
}

// ExerciseIndex returns the label index of an exercise, or -1 when the label
// is outside the vocabulary.
func ExerciseIndex(exercise string) int {
	for i, name := range exerciseOrder {
		if name == exercise {
			return i
		}
	}
	return -1
}
