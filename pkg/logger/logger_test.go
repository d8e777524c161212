package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedJSONWriterPutsLeadingFieldsFirst(t *testing.T) {
	var out bytes.Buffer
	w := &orderedJSONWriter{output: &out}

	line := []byte(`{"rows":3,"message":"done","level":"info","scope":"q1","time":"2026-01-02T03:04:05Z"}` + "\n")
	n, err := w.Write(line)
	require.NoError(t, err)
	assert.Equal(t, len(line), n)

	got := out.String()
	assert.True(t, strings.HasPrefix(got, `{"time":"2026-01-02T03:04:05Z","level":"info","scope":"q1","message":"done"`), got)
	assert.Contains(t, got, `"rows":3`)
	assert.True(t, strings.HasSuffix(got, "}\n"))
}

func TestOrderedJSONWriterPassesThroughInvalidJSON(t *testing.T) {
	var out bytes.Buffer
	w := &orderedJSONWriter{output: &out}

	_, err := w.Write([]byte("plain text"))
	require.NoError(t, err)
	assert.Equal(t, "plain text", out.String())
}

func TestScopedLoggerAddsScope(t *testing.T) {
	var out bytes.Buffer
	log = newLogger(&orderedJSONWriter{output: &out})

	s := WithScope("dashboard")
	s.Info().Str("step", "Q1").Msg("Executing")

	assert.Contains(t, out.String(), `"scope":"dashboard"`)
	assert.Contains(t, out.String(), `"message":"Executing"`)
}
