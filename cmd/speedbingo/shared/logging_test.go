package shared

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupStructuredLogger(&buf, false)

	logger.Debug().Msg("hidden")
	logger.Info().Int("boards", 3).Msg("Batch complete")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Batch complete", entry["message"])
	assert.Equal(t, float64(3), entry["boards"])
	assert.Contains(t, entry, "time")
}

func TestConsoleLoggerDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := SetupLogger(&buf, true)
	logger.Debug().Str("seed", "42").Msg("Generating")

	assert.Contains(t, buf.String(), "Generating")
	assert.Contains(t, buf.String(), "seed=")
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := NewLogger(&buf, FormatJSON, false)
	assert.NoError(t, err)
	_, err = NewLogger(&buf, "", false)
	assert.NoError(t, err)
	_, err = NewLogger(&buf, "xml", false)
	assert.Error(t, err)
}
