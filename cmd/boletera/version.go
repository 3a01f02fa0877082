package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/pkg/boletera"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the boletera version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "boletera %s\n", boletera.Version)
		return nil
	},
}
