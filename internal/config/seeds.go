package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SeedTypeError reports a seeds value that is not a string. It fires before
// any token parsing is attempted.
type SeedTypeError struct {
	Value any
}

func (e SeedTypeError) Error() string {
	return fmt.Sprintf("seeds must be a comma-separated string, got %T (%v)", e.Value, e.Value)
}

// IsSeedTypeError checks if an error is a SeedTypeError.
func IsSeedTypeError(err error) bool {
	var ste SeedTypeError
	return errors.As(err, &ste)
}

// ParseSeeds converts a comma-separated string of integer literals into an
// ordered seed list. Tokens are trimmed of surrounding whitespace before
// conversion; order is preserved and duplicates are allowed. Non-string input
// fails with SeedTypeError before parsing.
func ParseSeeds(raw any) ([]int, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, SeedTypeError{Value: raw}
	}

	tokens := strings.Split(s, ",")
	seeds := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", tok, err)
		}
		seeds = append(seeds, n)
	}
	return seeds, nil
}
