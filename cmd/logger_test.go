package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_Levels(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		logger, closer, err := setupLogger("", tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, logger.GetLevel(), tt.input)
		assert.NoError(t, closer.Close())
	}
}

func TestSetupLogger_RejectsUnknownLevel(t *testing.T) {
	for _, input := range []string{"verbose", ""} {
		_, _, err := setupLogger("", input)
		assert.Error(t, err, "level %q", input)
	}
}

func TestSetupLogger_WritesAndClosesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunecheck.log")

	logger, closer, err := setupLogger(path, "info")
	require.NoError(t, err)

	logger.Info().Str("scenario", "album/valid").Msg("Scenario finished")
	logger.Debug().Msg("filtered")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scenario":"album/valid"`)
	assert.NotContains(t, string(data), "filtered")

	// A closed file rejects further closes
	assert.Error(t, closer.Close())
}

func TestSetupLogger_BadFilePath(t *testing.T) {
	_, _, err := setupLogger(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), "info")
	assert.Error(t, err)
}
