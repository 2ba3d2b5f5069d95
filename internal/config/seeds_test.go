package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeeds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"plain", "42,17,256", []int{42, 17, 256}},
		{"whitespace trimmed", " 42 , 17 ,256", []int{42, 17, 256}},
		{"single", "7", []int{7}},
		{"duplicates preserved", "1,1,2", []int{1, 1, 2}},
		{"negative", "-1,0", []int{-1, 0}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSeeds(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSeeds_NonString(t *testing.T) {
	t.Parallel()

	for _, raw := range []any{42, 4.2, []string{"42"}, nil, true} {
		_, err := ParseSeeds(raw)
		require.Error(t, err, "raw=%v", raw)
		assert.True(t, IsSeedTypeError(err), "raw=%v", raw)
	}
}

func TestParseSeeds_MalformedToken(t *testing.T) {
	t.Parallel()

	_, err := ParseSeeds("42,abc,7")
	require.Error(t, err)
	assert.False(t, IsSeedTypeError(err))
	assert.Contains(t, err.Error(), `invalid seed "abc"`)

	_, err = ParseSeeds("")
	assert.Error(t, err)
}

func TestIsSeedTypeError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSeedTypeError(SeedTypeError{Value: 1}))
	assert.False(t, IsSeedTypeError(errors.New("other")))
}
