package config

import (
	"fmt"
	"os"

	"github.com/verscheures/fatturapa"
	"github.com/verscheures/fatturapa/internal/logger"
)

type Config struct {
	// TransmitterPrefix is prepended to the sender tax code in IdTrasmittente.
	TransmitterPrefix string
	SummaryStyle      fatturapa.SummaryStyle

	// SchemaPath points at an XSD to validate against instead of the
	// bundled one.
	SchemaPath string
	OutputDir  string

	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads the configuration from the environment. Call godotenv.Load
// first to pick up a .env file.
func Load() (*Config, error) {
	style, err := fatturapa.ParseSummaryStyle(os.Getenv("FATTURAPA_SUMMARY_STYLE"))
	if err != nil {
		return nil, fmt.Errorf("FATTURAPA_SUMMARY_STYLE: %w", err)
	}

	defaults := fatturapa.DefaultOptions()
	config := &Config{
		TransmitterPrefix: getEnv("FATTURAPA_TRANSMITTER_PREFIX", defaults.TransmitterPrefix),
		SummaryStyle:      style,
		SchemaPath:        getEnv("FATTURAPA_SCHEMA", ""),
		OutputDir:         getEnv("FATTURAPA_OUTPUT_DIR", "."),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:     getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:         getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

func (c *Config) validate() error {
	if len(c.TransmitterPrefix) > 2 {
		return fmt.Errorf("FATTURAPA_TRANSMITTER_PREFIX must be at most 2 characters, got %q", c.TransmitterPrefix)
	}
	if c.SchemaPath != "" {
		if _, err := os.Stat(c.SchemaPath); err != nil {
			return fmt.Errorf("FATTURAPA_SCHEMA: %w", err)
		}
	}
	return nil
}

// Options returns the document options for this configuration.
func (c *Config) Options() fatturapa.Options {
	return fatturapa.Options{
		TransmitterPrefix: c.TransmitterPrefix,
		SummaryStyle:      c.SummaryStyle,
	}
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
