package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the run configuration file looked up under the base path.
const ConfigFileName = "prepflow.yaml"

// Default values for Config.
const (
	DefaultWorkDir = "."
	DefaultSeeds   = "42"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		WorkDir:   DefaultWorkDir,
		Overwrite: false,
		Seeds:     DefaultSeeds,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// LoadConfig reads and parses prepflow.yaml from the given base path.
// If the file doesn't exist, returns default config.
// Applies defaults for any missing fields.
func LoadConfig(basePath string) (*Config, error) {
	configPath := filepath.Join(basePath, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.WorkDir == "" {
		return ValidationError{Field: "workdir", Message: "required field is empty"}
	}
	if _, err := ParseSeeds(cfg.Seeds); err != nil {
		return ValidationError{Field: "seeds", Message: err.Error()}
	}
	for i, tag := range cfg.DataTypes {
		if tag == "" {
			return ValidationError{Field: fmt.Sprintf("data_types[%d]", i), Message: "empty data-type tag"}
		}
	}
	for name, spec := range cfg.Datasets {
		if len(spec.Files) == 0 {
			return ValidationError{Field: "datasets." + name, Message: "no files configured"}
		}
		for tag, path := range spec.Files {
			if tag == "" {
				return ValidationError{Field: "datasets." + name + ".files", Message: "empty data-type tag"}
			}
			if path == "" {
				return ValidationError{Field: "datasets." + name + ".files." + tag, Message: "empty file path"}
			}
		}
	}
	return nil
}

// SeedList parses the configured seeds into an ordered list.
func (c *Config) SeedList() ([]int, error) {
	return ParseSeeds(c.Seeds)
}
