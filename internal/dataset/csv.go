package dataset

import (
	"fmt"

	"github.com/prepflow-io/prepflow/internal/tabular"
)

// CSV is a Dataset backed by one CSV file per data-type tag. Each file is laid
// out with the feature identifier in the first column and one column per
// sample, matching the orientation Format must return. Files are read lazily
// on Format.
type CSV struct {
	name  string
	files map[string]string
}

// NewCSV creates a CSV-backed dataset from a map of data-type tag to file
// path. The map is copied.
func NewCSV(name string, files map[string]string) *CSV {
	copied := make(map[string]string, len(files))
	for tag, path := range files {
		copied[tag] = path
	}
	return &CSV{name: name, files: copied}
}

// Name implements Dataset.
func (c *CSV) Name() string { return c.name }

// HasExperiments implements Dataset.
func (c *CSV) HasExperiments() bool { return len(c.files) > 0 }

// HasDataType implements Dataset.
func (c *CSV) HasDataType(tag string) bool {
	_, ok := c.files[tag]
	return ok
}

// Format implements Dataset. It reads the tag's CSV file from disk.
func (c *CSV) Format(tag string) (*tabular.Table, error) {
	path, ok := c.files[tag]
	if !ok {
		return nil, fmt.Errorf("dataset %s has no %s data", c.name, tag)
	}
	t, err := tabular.ReadCSVFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: failed to load %s data: %w", c.name, tag, err)
	}
	return t, nil
}
