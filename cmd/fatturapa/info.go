package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verscheures/fatturapa"
	"github.com/verscheures/fatturapa/internal/source"
)

var paymentMethodsCmd = &cobra.Command{
	Use:   "payment-methods",
	Short: "List the ModalitaPagamento codes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, m := range fatturapa.PaymentMethods() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m, m.Label())
		}
	},
}

var filenameCmd = &cobra.Command{
	Use:   "filename [invoice-file]",
	Short: "Print the transmission filename of an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := source.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), inv.Filename())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paymentMethodsCmd, filenameCmd)
}
