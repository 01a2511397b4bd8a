package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/numkit/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestNew_JSON verifies production records are JSON and honour the level.
func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "info"}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("integrated", zap.Float64("value", 0.5))
	require.NoError(t, log.Sync())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "integrated", rec["msg"])
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, 0.5, rec["value"])
	assert.NotContains(t, buf.String(), "hidden")
}

// TestNew_Development verifies console encoding at debug level.
func TestNew_Development(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "debug", Development: true}, &buf)
	require.NoError(t, err)

	log.Debug("rotating", zap.Int("iterations", 42))
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "rotating")
	assert.Contains(t, buf.String(), "42")
}

// TestNew_BadLevel rejects unknown level names.
func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "chatty"}, &bytes.Buffer{})
	assert.Error(t, err)

	log, err := logging.New(logging.Config{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.NotNil(t, log)
}
