package cli

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("INVTRACK_DATA_DIR", "")
	t.Setenv("INVTRACK_LOG_LEVEL", "")
	t.Setenv("INVTRACK_TRACE_FILE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.TraceFile)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("INVTRACK_DATA_DIR", "/tmp/inventory-data")
	t.Setenv("INVTRACK_LOG_LEVEL", "Warn")
	t.Setenv("INVTRACK_TRACE_FILE", "/tmp/trace.json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/inventory-data", cfg.DataDir)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "/tmp/trace.json", cfg.TraceFile)
}

func TestLoadConfig_RejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("INVTRACK_LOG_LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVTRACK_LOG_LEVEL")
}
