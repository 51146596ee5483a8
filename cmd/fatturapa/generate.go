package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/verscheures/fatturapa/internal/logger"
	"github.com/verscheures/fatturapa/internal/source"
)

var generateCmd = &cobra.Command{
	Use:   "generate [invoice-file]",
	Short: "Generate the FatturaPA XML document of an invoice",
	Long: `Read an invoice from a YAML or JSON file and write its FatturaPA XML
document as <output-dir>/<country><transmitter-code>_<number>.xml.`,
	Example: `  # Write ITABCDEFG_00001A.xml into ./out and validate it
  fatturapa generate invoice.yaml -o out --validate

  # Print the document
  fatturapa generate invoice.yaml --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("output", "o", "", "Output directory (default: FATTURAPA_OUTPUT_DIR)")
	generateCmd.Flags().Bool("validate", false, "Validate the document against the schema before writing it")
	generateCmd.Flags().Bool("stdout", false, "Write the document to stdout instead of a file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("generate")

	outputDir, _ := cmd.Flags().GetString("output")
	validateDoc, _ := cmd.Flags().GetBool("validate")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	inv, err := source.Load(args[0])
	if err != nil {
		return err
	}
	data, err := inv.GenerateWithOptions(cfg.Options())
	if err != nil {
		return fmt.Errorf("generate %s: %w", args[0], err)
	}

	if validateDoc {
		v, err := newValidator()
		if err != nil {
			return err
		}
		defer v.Free()
		if err := v.ValidateBytes(data); err != nil {
			return fmt.Errorf("validate %s: %w", inv.Filename(), err)
		}
		log.Debug().Str("file", inv.Filename()).Msg("Document is valid")
	}

	if toStdout {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(outputDir, inv.Filename())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	log.Info().
		Str("invoice", inv.String()).
		Str("file", path).
		Int("lines", len(inv.Lines)).
		Str("summary_style", cfg.SummaryStyle.String()).
		Msg("Invoice document written")
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
