package dataset

import (
	"fmt"

	"github.com/prepflow-io/prepflow/internal/tabular"
)

// Memory is an in-memory Dataset. It backs tests and embedding callers that
// already hold their tables.
type Memory struct {
	name   string
	tables map[string]*tabular.Table
}

// NewMemory creates an empty in-memory dataset. It has no experiments until a
// table is added.
func NewMemory(name string) *Memory {
	return &Memory{name: name, tables: make(map[string]*tabular.Table)}
}

// Add registers a master table under a data-type tag and returns the dataset
// for chaining.
func (m *Memory) Add(tag string, t *tabular.Table) *Memory {
	m.tables[tag] = t
	return m
}

// Name implements Dataset.
func (m *Memory) Name() string { return m.name }

// HasExperiments implements Dataset.
func (m *Memory) HasExperiments() bool { return len(m.tables) > 0 }

// HasDataType implements Dataset.
func (m *Memory) HasDataType(tag string) bool {
	_, ok := m.tables[tag]
	return ok
}

// Format implements Dataset.
func (m *Memory) Format(tag string) (*tabular.Table, error) {
	t, ok := m.tables[tag]
	if !ok {
		return nil, fmt.Errorf("dataset %s has no %s data", m.name, tag)
	}
	return t, nil
}
