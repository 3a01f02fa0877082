package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/pkg/lifecycle"
)

var flagExportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump all collections as a JSON snapshot",
	Long: `Export writes every collection, including inactive and deleted records,
as a JSON object keyed by collection name. The output round-trips through
the import command. Without --output the snapshot goes to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, release, err := attachStore()
		if err != nil {
			return err
		}
		defer release()

		manager := lifecycle.NewManager(store)
		data, err := manager.Export()
		if err != nil {
			return err
		}

		if flagExportOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(flagExportOutput, data, 0o644); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", flagExportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "write the snapshot to a file instead of stdout")
}
