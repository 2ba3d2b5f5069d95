package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Manifest records the identity of a run: written to data_out/run.yaml at
// init time so downstream stages can tie their artifacts back to a run.
type Manifest struct {
	RunID     string    `yaml:"run_id"`
	CreatedAt time.Time `yaml:"created_at"`
	Seeds     []int     `yaml:"seeds"`
}

// NewManifest creates a Manifest with a fresh run ID.
func NewManifest(seeds []int) *Manifest {
	return &Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Seeds:     seeds,
	}
}

// WriteManifest writes the manifest into the run's output directory.
func WriteManifest(workDir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(OutputDir(workDir), ManifestFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// LoadManifest reads the manifest from the run's output directory.
func LoadManifest(workDir string) (*Manifest, error) {
	path := filepath.Join(OutputDir(workDir), ManifestFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
