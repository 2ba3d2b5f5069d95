package tabular

// Outer joins tables on their row labels. The result contains the union of
// all row labels, ordered by first appearance across the inputs, and the
// concatenation of all column sets in input order. Cells absent from a table
// are left empty. With duplicate row labels within a table, the first
// occurrence wins.
func Outer(tables ...*Table) *Table {
	var cols []string
	for _, t := range tables {
		cols = append(cols, t.cols...)
	}
	out := New(cols)

	var labels []string
	seen := make(map[string]bool)
	for _, t := range tables {
		for _, l := range t.index {
			if !seen[l] {
				seen[l] = true
				labels = append(labels, l)
			}
		}
	}

	for _, label := range labels {
		row := make([]string, 0, len(cols))
		for _, t := range tables {
			ri := -1
			for i, l := range t.index {
				if l == label {
					ri = i
					break
				}
			}
			for ci := range t.cols {
				if ri == -1 {
					row = append(row, "")
				} else {
					row = append(row, t.cells[ri][ci])
				}
			}
		}
		// Arity matches by construction.
		_ = out.AppendRow(label, row)
	}
	return out
}
