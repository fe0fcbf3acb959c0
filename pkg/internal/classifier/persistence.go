package classifier

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/smartcoach/motionkit/pkg/internal/types"
)

// artifactVersion guards the gob schema of the persisted model.
const artifactVersion = 1

// modelArtifact is the atomic persistence unit: scaler, ensemble, label
// vocabulary and trained flag serialize and load together or not at all.
type modelArtifact struct {
	Version int
	Scaler  *StandardScaler
	Forest  *Forest
	Labels  []string
	Trained bool
}

// Save serializes the trained model to path as one gob+snappy artifact,
// written to a temp file and renamed so a crash never leaves a partial
// artifact behind.
func (c *ExerciseClassifier) Save(path string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.trained {
		return fmt.Errorf("save %s: %w", path, types.ErrNotTrained)
	}

	artifact := modelArtifact{
		Version: artifactVersion,
		Scaler:  c.scaler,
		Forest:  c.forest,
		Labels:  c.labels,
		Trained: c.trained,
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(artifact); err != nil {
		return fmt.Errorf("save %s: encode: %w", path, err)
	}
	compressed := snappy.Encode(nil, buf.Bytes())

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, compressed, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save %s: %w", path, err)
	}

	c.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Save => Model saved to %s (%d bytes)", c.componentMetadata, path, len(compressed))

	return nil
}

// Load replaces all owned model state from an artifact at path. The swap is
// atomic under the write lock; an invalid artifact leaves the current state
// untouched.
func (c *ExerciseClassifier) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", path, types.ErrModelNotFound)
		}
		return fmt.Errorf("load %s: %w", path, err)
	}

	decompressed, err := snappy.Decode(nil, raw)
	if err != nil {
		return fmt.Errorf("load %s: %v: %w", path, err, types.ErrCorruptModel)
	}

	var artifact modelArtifact
	if err := gob.NewDecoder(bytes.NewReader(decompressed)).Decode(&artifact); err != nil {
		return fmt.Errorf("load %s: %v: %w", path, err, types.ErrCorruptModel)
	}

	if err := validateArtifact(&artifact); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	c.mu.Lock()
	c.scaler = artifact.Scaler
	c.forest = artifact.Forest
	c.labels = artifact.Labels
	c.trained = artifact.Trained
	c.mu.Unlock()

	c.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Load => Model loaded from %s: %d trees, %d classes", c.componentMetadata, path, len(artifact.Forest.Trees), len(artifact.Labels))

	return nil
}

func validateArtifact(a *modelArtifact) error {
	switch {
	case a.Version != artifactVersion:
		return fmt.Errorf("artifact version %d, expected %d: %w", a.Version, artifactVersion, types.ErrCorruptModel)
	case !a.Trained:
		return fmt.Errorf("artifact is flagged untrained: %w", types.ErrCorruptModel)
	case a.Scaler == nil || a.Scaler.Dims() == 0 || len(a.Scaler.Mean) != len(a.Scaler.Std):
		return fmt.Errorf("artifact scaler is inconsistent: %w", types.ErrCorruptModel)
	case a.Forest == nil || len(a.Forest.Trees) == 0:
		return fmt.Errorf("artifact ensemble is empty: %w", types.ErrCorruptModel)
	case len(a.Labels) == 0 || a.Forest.NumClasses != len(a.Labels):
		return fmt.Errorf("artifact vocabulary of %d labels does not match ensemble: %w", len(a.Labels), types.ErrCorruptModel)
	}
	return nil
}
