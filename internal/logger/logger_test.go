package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verscheures/fatturapa/internal/logger"
)

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	closer, err := logger.Setup(logger.LogConfig{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = logger.Setup(logger.DefaultConfig()) })

	log := logger.WithComponent("test")
	log.Info().Str("invoice", "00001A").Msg("generated")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"invoice":"00001A"`)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetupBadLevel(t *testing.T) {
	_, err := logger.Setup(logger.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
