package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepflow-io/prepflow/internal/tabular"
)

func TestMemory_Capabilities(t *testing.T) {
	t.Parallel()

	m := NewMemory("ccle")
	assert.Equal(t, "ccle", m.Name())
	assert.False(t, m.HasExperiments())
	assert.False(t, m.HasDataType("transcriptomics"))

	tbl := tabular.New([]string{"s1"})
	require.NoError(t, tbl.AppendRow("gene_a", []string{"1.0"}))
	m.Add("transcriptomics", tbl)

	assert.True(t, m.HasExperiments())
	assert.True(t, m.HasDataType("transcriptomics"))
	assert.False(t, m.HasDataType("copy_number"))

	got, err := m.Format("transcriptomics")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, got.Columns())
}

func TestMemory_FormatUnknownTag(t *testing.T) {
	t.Parallel()

	m := NewMemory("ccle")
	_, err := m.Format("proteomics")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no proteomics data")
}

func TestCSV_Capabilities(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "expression.csv")
	require.NoError(t, os.WriteFile(path, []byte("entrez_id,s1,s2\n7157,1.5,2.5\n"), 0o644))

	ds := NewCSV("gdsc", map[string]string{"transcriptomics": path})

	assert.Equal(t, "gdsc", ds.Name())
	assert.True(t, ds.HasExperiments())
	assert.True(t, ds.HasDataType("transcriptomics"))
	assert.False(t, ds.HasDataType("copy_number"))
}

func TestCSV_NoFiles(t *testing.T) {
	t.Parallel()

	ds := NewCSV("empty", nil)
	assert.False(t, ds.HasExperiments())

	_, err := ds.Format("transcriptomics")
	assert.Error(t, err)
}

func TestCSV_Format(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "expression.csv")
	require.NoError(t, os.WriteFile(path, []byte("entrez_id,s1,s2\n7157,1.5,2.5\n672,0.1,0.2\n"), 0o644))

	ds := NewCSV("gdsc", map[string]string{"transcriptomics": path})

	tbl, err := ds.Format("transcriptomics")
	require.NoError(t, err)

	// Features as rows, samples as columns.
	assert.Equal(t, []string{"s1", "s2"}, tbl.Columns())
	assert.Equal(t, []string{"7157", "672"}, tbl.Index())
}

func TestCSV_FormatMissingFile(t *testing.T) {
	t.Parallel()

	ds := NewCSV("gdsc", map[string]string{"transcriptomics": filepath.Join(t.TempDir(), "nope.csv")})

	_, err := ds.Format("transcriptomics")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset gdsc")
}

func TestNewCSV_CopiesMap(t *testing.T) {
	t.Parallel()

	files := map[string]string{"transcriptomics": "a.csv"}
	ds := NewCSV("gdsc", files)
	delete(files, "transcriptomics")
	assert.True(t, ds.HasDataType("transcriptomics"))
}
