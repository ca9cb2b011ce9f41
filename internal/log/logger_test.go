package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Reset()
	Configure(Config{Level: "debug", Output: &buf, Service: "test"})
	t.Cleanup(Reset)

	l := WithComponent("params")
	l.Warn().Str("parameter", "foo").Msg("unknown parameter")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "params", entry["component"])
	assert.Equal(t, "test", entry["service"])
	assert.Equal(t, "foo", entry["parameter"])
	assert.Equal(t, "unknown parameter", entry["message"])
}

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Reset()
	Configure(Config{Level: "error", Output: &buf})
	t.Cleanup(Reset)

	l := Base()
	l.Warn().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Error().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestConfigure_FirstCallWins(t *testing.T) {
	var first, second bytes.Buffer
	Reset()
	Configure(Config{Output: &first})
	Configure(Config{Output: &second})
	t.Cleanup(Reset)

	l := Base()
	l.Info().Msg("hello")
	assert.Contains(t, first.String(), "hello")
	assert.Zero(t, second.Len())
}
