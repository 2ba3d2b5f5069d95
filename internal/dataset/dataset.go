// Package dataset defines the capability contract a data source must satisfy
// to take part in master-table merging, plus the CSV-backed and in-memory
// implementations the pipeline ships with.
package dataset

import "github.com/prepflow-io/prepflow/internal/tabular"

// Dataset is a source of per-sample omics measurements. A dataset qualifies
// for a given data-type tag only when HasExperiments and HasDataType both
// report true.
type Dataset interface {
	// Name identifies the dataset (e.g. "ccle", "gdsc").
	Name() string

	// HasExperiments reports whether the dataset holds any usable data.
	HasExperiments() bool

	// HasDataType reports whether the dataset carries the given modality.
	HasDataType(tag string) bool

	// Format returns the dataset's master table for the given data-type tag,
	// oriented with features as rows and samples as columns.
	Format(tag string) (*tabular.Table, error)
}
