package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prepflow-io/prepflow/internal/dataset"
	"github.com/prepflow-io/prepflow/internal/tabular"
)

// SampleConfigYAML is a complete prepflow.yaml document for testing loaders
// and CLI commands.
const SampleConfigYAML = `workdir: .
overwrite: true
seeds: "42,17,256"
data_types:
  - transcriptomics
  - copy_number
required_columns:
  - improve_sample_id
  - auc
datasets:
  ccle:
    files:
      transcriptomics: data/ccle_expression.csv
`

// SampleExpressionCSV is a minimal expression file: features as rows, samples
// as columns.
const SampleExpressionCSV = "entrez_id,s1,s2\n7157,1.5,2.5\n672,0.1,0.2\n"

// SampleExpressionTable returns a tiny transcriptomics master table with two
// features (rows) and two samples (columns). Returns a new table each time to
// prevent test interference.
func SampleExpressionTable(t *testing.T) *tabular.Table {
	t.Helper()
	tbl := tabular.New([]string{"s1", "s2"})
	require.NoError(t, tbl.AppendRow("7157", []string{"1.5", "2.5"}))
	require.NoError(t, tbl.AppendRow("672", []string{"0.1", "0.2"}))
	return tbl
}

// SampleCopyNumberTable returns a tiny copy-number master table sharing one
// sample with SampleExpressionTable.
func SampleCopyNumberTable(t *testing.T) *tabular.Table {
	t.Helper()
	tbl := tabular.New([]string{"s2", "s3"})
	require.NoError(t, tbl.AppendRow("7157", []string{"0", "-1"}))
	return tbl
}

// SampleDatasets returns a ready-to-merge mapping: one dataset per modality
// plus one without experiments.
func SampleDatasets(t *testing.T) map[string]dataset.Dataset {
	t.Helper()
	return map[string]dataset.Dataset{
		"ccle":  dataset.NewMemory("ccle").Add("transcriptomics", SampleExpressionTable(t)),
		"gdsc":  dataset.NewMemory("gdsc").Add("copy_number", SampleCopyNumberTable(t)),
		"empty": dataset.NewMemory("empty"),
	}
}

// WriteExpressionCSV writes SampleExpressionCSV into dir and returns its path.
func WriteExpressionCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "expression.csv")
	require.NoError(t, os.WriteFile(path, []byte(SampleExpressionCSV), 0o644))
	return path
}
