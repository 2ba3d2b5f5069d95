package logging

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaptureLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(log.New(&buf, "", 0))
	return l, &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	l, buf := newCaptureLogger()

	l.Debug("dropped")
	l.Info("dropped too")
	l.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "WARN: kept")

	buf.Reset()
	l.SetLevel(LevelDebug)
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "DEBUG: now visible")
}

func TestLogger_SortedFields(t *testing.T) {
	t.Parallel()

	l, buf := newCaptureLogger()
	l.SetLevel(LevelInfo)

	l.Info("merged", "tag", "transcriptomics", "datasets", 2, "rows", 10)

	require.Equal(t, "INFO: merged | datasets=2 rows=10 tag=transcriptomics\n", buf.String())
}

func TestLogger_With(t *testing.T) {
	t.Parallel()

	l, buf := newCaptureLogger()
	l.SetLevel(LevelInfo)

	child := l.With("dataset", "ccle")
	child.Info("formatting")
	assert.Contains(t, buf.String(), "dataset=ccle")

	// Parent is unaffected.
	buf.Reset()
	l.Info("plain")
	assert.NotContains(t, buf.String(), "dataset=ccle")
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"plain string", "abc", "abc"},
		{"string with space", "a b", `"a b"`},
		{"int", 42, "42"},
		{"error", assert.AnError, `"assert.AnError general error for testing"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatValue(tt.in))
		})
	}
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "LEVEL(9)", Level(9).String())
}
