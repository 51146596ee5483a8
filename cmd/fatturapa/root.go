package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/verscheures/fatturapa/internal/config"
	"github.com/verscheures/fatturapa/internal/logger"
	"github.com/verscheures/fatturapa/validate"
)

var version = "0.1.0"

var (
	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "fatturapa",
	Short: "Generate and validate Italian electronic invoices (FatturaPA v1.2)",
	Long: `fatturapa turns invoice files (YAML or JSON) into FatturaPA v1.2 XML
documents named after the transmission convention, and validates XML
documents against the FatturaPA schema.

Environment variables (a .env file in the working directory is loaded):
  FATTURAPA_TRANSMITTER_PREFIX - prefix of IdTrasmittente/IdCodice (default PI)
  FATTURAPA_SUMMARY_STYLE      - fixed or legacy DatiRiepilogo amounts (default fixed)
  FATTURAPA_SCHEMA             - XSD to validate against instead of the bundled one
  FATTURAPA_OUTPUT_DIR         - directory for generated documents (default .)
  LOG_LEVEL, LOG_FORMAT, LOG_TIME_FORMAT, LOG_OUTPUT`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		closer, err := logger.Setup(loaded.GetLoggerConfig())
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, logCloser = loaded, closer
		return nil
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// execute runs the root command and closes the log output on every path.
// Cobra skips post-run hooks when a command fails.
func execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log := logger.WithComponent("cmd")
		log.Error().Err(err).Msg("Command execution failed")
	}
	if logCloser != nil {
		if cerr := logCloser.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close log output: %w", cerr)
		}
		logCloser = nil
	}
	return err
}

func newValidator() (*validate.Validator, error) {
	if cfg != nil && cfg.SchemaPath != "" {
		return validate.NewFromFile(cfg.SchemaPath)
	}
	return validate.New()
}
