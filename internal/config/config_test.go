package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verscheures/fatturapa"
	"github.com/verscheures/fatturapa/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"FATTURAPA_TRANSMITTER_PREFIX", "FATTURAPA_SUMMARY_STYLE", "FATTURAPA_SCHEMA",
		"FATTURAPA_OUTPUT_DIR", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, fatturapa.DefaultOptions(), cfg.Options())
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Empty(t, cfg.SchemaPath)
	assert.Equal(t, "info", cfg.GetLoggerConfig().Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FATTURAPA_TRANSMITTER_PREFIX", "CF")
	t.Setenv("FATTURAPA_SUMMARY_STYLE", "legacy")
	t.Setenv("FATTURAPA_SCHEMA", filepath.Join("..", "..", "validate", "schema", "fatturapa_v1.2.xsd"))
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, fatturapa.Options{TransmitterPrefix: "CF", SummaryStyle: fatturapa.SummaryLegacy}, cfg.Options())
	assert.Equal(t, "json", cfg.GetLoggerConfig().Format)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bad style":   {"FATTURAPA_SUMMARY_STYLE": "round"},
		"long prefix": {"FATTURAPA_TRANSMITTER_PREFIX": "ABC"},
		"missing xsd": {"FATTURAPA_SCHEMA": filepath.Join("testdata", "nope.xsd")},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
