// Package tabular provides the small labeled-table type the pipeline moves
// data around in: ordered named columns, labeled rows, string cells. It is
// deliberately not a dataframe library; the pipeline only needs column
// validation, transposition and an outer join on row labels.
package tabular

import "fmt"

// Table is a two-dimensional labeled data structure. Columns are ordered and
// named; rows are ordered and labeled by Index. Index labels are not required
// to be unique.
type Table struct {
	cols  []string
	index []string
	cells [][]string
}

// New creates an empty Table with the given column names.
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{cols: cols}
}

// AppendRow adds a labeled row. The number of cells must match the number of
// columns.
func (t *Table) AppendRow(label string, cells []string) error {
	if len(cells) != len(t.cols) {
		return fmt.Errorf("row %q has %d cells, table has %d columns", label, len(cells), len(t.cols))
	}
	row := make([]string, len(cells))
	copy(row, cells)
	t.index = append(t.index, label)
	t.cells = append(t.cells, row)
	return nil
}

// Columns returns the column names in order. The returned slice is a copy.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.cols))
	copy(cols, t.cols)
	return cols
}

// Index returns the row labels in order. The returned slice is a copy.
func (t *Table) Index() []string {
	index := make([]string, len(t.index))
	copy(index, t.index)
	return index
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.index)
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.cols)
}

// HasColumn reports whether a column with the given name exists. Matching is
// exact: no case folding, no trimming.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.cols {
		if c == name {
			return true
		}
	}
	return false
}

// Cell returns the cell at the given row and column position.
func (t *Table) Cell(row, col int) (string, error) {
	if row < 0 || row >= len(t.index) {
		return "", fmt.Errorf("row %d out of range (%d rows)", row, len(t.index))
	}
	if col < 0 || col >= len(t.cols) {
		return "", fmt.Errorf("column %d out of range (%d columns)", col, len(t.cols))
	}
	return t.cells[row][col], nil
}

// Lookup returns the cell at the given row label and column name. With
// duplicate row labels the first matching row wins.
func (t *Table) Lookup(label, column string) (string, bool) {
	ci := -1
	for i, c := range t.cols {
		if c == column {
			ci = i
			break
		}
	}
	if ci == -1 {
		return "", false
	}
	for ri, l := range t.index {
		if l == label {
			return t.cells[ri][ci], true
		}
	}
	return "", false
}

// Transpose returns a new Table with rows and columns swapped: the receiver's
// column names become the row labels and its row labels become the column
// names. The receiver is not modified.
func (t *Table) Transpose() *Table {
	out := New(t.index)
	for ci, col := range t.cols {
		row := make([]string, len(t.index))
		for ri := range t.index {
			row[ri] = t.cells[ri][ci]
		}
		// Arity always matches: the new row has one cell per original row.
		_ = out.AppendRow(col, row)
	}
	return out
}

// PrefixColumns renames every column to prefix+name.
func (t *Table) PrefixColumns(prefix string) {
	for i, c := range t.cols {
		t.cols[i] = prefix + c
	}
}
