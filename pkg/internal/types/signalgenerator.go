package types

// SignalGenerator synthesizes exercise-characteristic 3-axis acceleration
// signals for simulation and testing in the absence of sensor hardware.
type SignalGenerator interface {
	// Generate returns a signal of duration*samplingRate samples for the
	// given exercise. It fails with ErrInvalidExerciseType for labels
	// outside the vocabulary and ErrInvalidParameter for non-positive
	// duration or sampling rate.
	Generate(exercise string, durationSec, samplingRateHz float64) (Signal, error)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, format string, args ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
