package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestReadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "CONVERTER_LOG_LEVEL", "CONVERTER_LOG_FILE", "CONVERTER_METRICS_SUMMARY")

	cfg, err := ReadConfig()
	require.NoError(t, err)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
	assert.Empty(t, cfg.Log.File)
	assert.False(t, cfg.Metrics.Summary)
}

func TestReadConfig_FromEnv(t *testing.T) {
	t.Setenv("CONVERTER_LOG_LEVEL", "debug")
	t.Setenv("CONVERTER_LOG_FILE", "converter.log")
	t.Setenv("CONVERTER_METRICS_SUMMARY", "true")

	cfg, err := ReadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "converter.log", cfg.Log.File)
	assert.True(t, cfg.Metrics.Summary)
}

func TestReadConfig_BadLevel(t *testing.T) {
	unsetEnv(t, "CONVERTER_LOG_FILE", "CONVERTER_METRICS_SUMMARY")
	t.Setenv("CONVERTER_LOG_LEVEL", "loud")

	_, err := ReadConfig()
	assert.Error(t, err)
}

func TestLog_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := Log{Level: tt.level}.SlogLevel()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
