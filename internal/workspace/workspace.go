// Package workspace resolves and lays out the on-disk directory tree a
// prepflow run stages its inputs and outputs in.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prepflow-io/prepflow/internal/config"
	"github.com/prepflow-io/prepflow/internal/logging"
)

// Directory and file names of the fixed run layout.
const (
	StagingDirName   = "data_in_tmp"
	OutputDirName    = "data_out"
	SplitsDirName    = "splits"
	XDataDirName     = "x_data"
	YDataDirName     = "y_data"
	ManifestFileName = "run.yaml"
)

// ErrNotADirectory is returned by ResolveDir when the path exists but is not
// a directory.
var ErrNotADirectory = errors.New("not a directory")

// ErrWorkspaceExists is returned by Init when the layout already exists and
// the config does not allow overwriting.
var ErrWorkspaceExists = errors.New("workspace already exists")

// StagingDir returns the input-staging directory under workDir.
func StagingDir(workDir string) string {
	return filepath.Join(workDir, StagingDirName)
}

// OutputDir returns the output directory under workDir.
func OutputDir(workDir string) string {
	return filepath.Join(workDir, OutputDirName)
}

// SplitsDir returns the splits output directory under workDir.
func SplitsDir(workDir string) string {
	return filepath.Join(OutputDir(workDir), SplitsDirName)
}

// XDataDir returns the feature-table output directory under workDir.
func XDataDir(workDir string) string {
	return filepath.Join(OutputDir(workDir), XDataDirName)
}

// YDataDir returns the response-table output directory under workDir.
func YDataDir(workDir string) string {
	return filepath.Join(OutputDir(workDir), YDataDirName)
}

// ResolveDir resolves path to its absolute form. The path must already exist
// and be a directory; ResolveDir never creates anything. A missing path
// surfaces the underlying OS error; an existing non-directory fails with
// ErrNotADirectory.
func ResolveDir(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("failed to resolve directory %s: %w", path, ErrNotADirectory)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory: %w", err)
	}
	return abs, nil
}

// Init creates the fixed run layout under the configured work directory:
//
//	<workdir>/data_in_tmp/
//	<workdir>/data_out/{splits,x_data,y_data}/
//
// With Overwrite set the call is idempotent. Without it, a pre-existing
// layout fails fast with an error wrapping ErrWorkspaceExists, so that two
// runs never mix artifacts in the same tree. Init also writes a run manifest
// to data_out/run.yaml.
func Init(cfg *config.Config) error {
	seeds, err := cfg.SeedList()
	if err != nil {
		return err
	}

	workDir, err := filepath.Abs(cfg.WorkDir)
	if err != nil {
		return fmt.Errorf("failed to resolve work directory: %w", err)
	}

	if !cfg.Overwrite {
		for _, dir := range []string{StagingDir(workDir), OutputDir(workDir)} {
			if _, err := os.Stat(dir); err == nil {
				return fmt.Errorf("%s: %w (set overwrite to reuse)", dir, ErrWorkspaceExists)
			}
		}
	}

	dirs := []string{
		StagingDir(workDir),
		SplitsDir(workDir),
		XDataDir(workDir),
		YDataDir(workDir),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	manifest := NewManifest(seeds)
	if err := WriteManifest(workDir, manifest); err != nil {
		return err
	}

	logging.Info("initialized workspace", "workdir", workDir, "run_id", manifest.RunID)
	return nil
}
