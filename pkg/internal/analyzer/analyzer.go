package analyzer

import (
	"sync"

	"github.com/smartcoach/motionkit/pkg/internal/types"
	"github.com/smartcoach/motionkit/pkg/internal/utils"
)

// MovementAnalyzer turns raw 3-axis signals into repetition counts, timing
// regularity and a composite performance score. Peak thresholds come from
// the per-exercise profile table unless overridden.
type MovementAnalyzer struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex

	overrides map[string]types.ExerciseProfile
}

// NewMovementAnalyzer creates a MovementAnalyzer with the given options.
func NewMovementAnalyzer(options ...types.Option[types.MovementAnalyzer]) types.MovementAnalyzer {
	m := &MovementAnalyzer{
		componentMetadata: types.ComponentMetadata{
			Type: "MOVEMENT_ANALYZER",
			ID:   utils.GenerateUniqueHash(),
		},
		loggers:   make([]types.Logger, 0),
		overrides: make(map[string]types.ExerciseProfile),
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

// profileFor resolves the thresholds for an exercise, preferring a
// caller-supplied override.
func (m *MovementAnalyzer) profileFor(exercise string) (types.ExerciseProfile, bool) {
	if p, ok := m.overrides[exercise]; ok {
		return p, true
	}
	return types.ProfileFor(exercise)
}
