package types

import "errors"

// Sentinel errors returned by the pipeline components. Call sites wrap these
// with fmt.Errorf("...: %w", err) so callers can discriminate with errors.Is.
var (
	// ErrInvalidExerciseType indicates an exercise name outside the closed vocabulary.
	ErrInvalidExerciseType = errors.New("invalid exercise type")

	// ErrInvalidParameter indicates a non-positive duration or sampling rate,
	// or otherwise malformed caller input.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientSamples indicates a signal too short for feature extraction.
	ErrInsufficientSamples = errors.New("insufficient samples")

	// ErrNotTrained indicates predict/save was called on an untrained classifier.
	ErrNotTrained = errors.New("classifier is not trained")

	// ErrModelNotFound indicates the model artifact is absent at the given path.
	ErrModelNotFound = errors.New("model artifact not found")

	// ErrCorruptModel indicates the model artifact could not be decoded into
	// a consistent scaler/ensemble/vocabulary tuple.
	ErrCorruptModel = errors.New("corrupt model artifact")
)
