// Package merge combines per-dataset master tables into a single wide table
// keyed by sample identifier, ready for the x_data stage of the pipeline.
package merge

import (
	"fmt"
	"sort"

	"github.com/prepflow-io/prepflow/internal/dataset"
	"github.com/prepflow-io/prepflow/internal/logging"
	"github.com/prepflow-io/prepflow/internal/tabular"
)

// SampleIDPrefix is prepended to every column of a transposed master table.
const SampleIDPrefix = "SAMPLE_ID_"

// Options configures a master-table merge.
type Options struct {
	// Logger receives per-dataset progress. Nil means the package default.
	Logger *logging.Logger
}

func (o Options) logger() *logging.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Default()
}

// MasterTables merges the master tables of every qualifying dataset for the
// given data-type tag into one sample-indexed table.
//
// A dataset qualifies when it has experiments and carries the tag. Qualifying
// datasets are visited in sorted name order. Each master table (features as
// rows, samples as columns) is transposed to sample-indexed orientation and
// its columns are prefixed with SampleIDPrefix. Multiple tables are combined
// with an outer join on the sample identifier, leaving absent cells empty.
//
// Returns (nil, nil) when no dataset qualifies. Input datasets are not
// mutated beyond invoking Format.
func MasterTables(opts Options, datasets map[string]dataset.Dataset, tag string) (*tabular.Table, error) {
	log := opts.logger().With("tag", tag)

	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)

	var merged []*tabular.Table
	for _, name := range names {
		ds := datasets[name]
		if !ds.HasExperiments() {
			log.Debug("skipping dataset without experiments", "dataset", name)
			continue
		}
		if !ds.HasDataType(tag) {
			log.Debug("skipping dataset without data type", "dataset", name)
			continue
		}

		master, err := ds.Format(tag)
		if err != nil {
			return nil, fmt.Errorf("failed to format dataset %s: %w", name, err)
		}

		t := master.Transpose()
		t.PrefixColumns(SampleIDPrefix)
		merged = append(merged, t)
		log.Debug("merged dataset", "dataset", name, "samples", t.NumRows(), "features", t.NumColumns())
	}

	switch len(merged) {
	case 0:
		log.Info("no datasets qualify for merge")
		return nil, nil
	case 1:
		return merged[0], nil
	default:
		out := tabular.Outer(merged...)
		log.Info("merged master tables", "datasets", len(merged), "samples", out.NumRows(), "columns", out.NumColumns())
		return out, nil
	}
}
