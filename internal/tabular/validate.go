package tabular

import (
	"errors"
	"fmt"
	"strings"
)

// MissingColumnsError reports required columns absent from a table. Context is
// a free-text label identifying which input was being checked.
type MissingColumnsError struct {
	Context string
	Missing []string
}

func (e MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Context, strings.Join(e.Missing, ", "))
}

// IsMissingColumnsError checks if an error is a MissingColumnsError.
func IsMissingColumnsError(err error) bool {
	var mce MissingColumnsError
	return errors.As(err, &mce)
}

// RequireColumns verifies that every name in required is a column of t.
// Returns nil when all are present; otherwise a MissingColumnsError naming
// the context label and every missing column. Matching is exact.
func RequireColumns(t *Table, required []string, context string) error {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return MissingColumnsError{Context: context, Missing: missing}
	}
	return nil
}
