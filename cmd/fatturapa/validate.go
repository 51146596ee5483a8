package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verscheures/fatturapa/internal/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate [xml-file]...",
	Short: "Validate FatturaPA XML documents against the schema",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("validate")

	v, err := newValidator()
	if err != nil {
		return err
	}
	defer v.Free()

	failed := 0
	for _, file := range args {
		if err := v.Validate(file); err != nil {
			failed++
			log.Warn().Str("file", file).Err(err).Msg("Invalid document")
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", file, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", file)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents are invalid", failed, len(args))
	}
	return nil
}
