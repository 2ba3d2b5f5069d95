package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSV parses CSV data into a Table. The first header cell names the index
// column and is discarded; the remaining header cells become the column names.
// The first field of each record becomes that row's label.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty csv input")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) < 1 {
		return nil, fmt.Errorf("csv header has no fields")
	}

	t := New(header[1:])
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}
		if err := t.AppendRow(record[0], record[1:]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ReadCSVFile reads a Table from a CSV file on disk.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// WriteCSV writes a Table as CSV. indexHeader names the leading index column
// in the header row; row labels fill that column.
func WriteCSV(w io.Writer, t *Table, indexHeader string) error {
	writer := csv.NewWriter(w)

	header := append([]string{indexHeader}, t.cols...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for ri, label := range t.index {
		record := append([]string{label}, t.cells[ri]...)
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes a Table to a CSV file on disk.
func WriteCSVFile(path string, t *Table, indexHeader string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, t, indexHeader); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
