package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/pkg/lifecycle"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Bulk-load records from a JSON snapshot",
	Long: `Import reads a JSON object whose keys are collection names and whose
values are record arrays, loads each well-formed record into the store, and
prints how many records each collection received. Malformed elements are
skipped. Records that already exist are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		store, release, err := attachStore()
		if err != nil {
			return err
		}
		defer release()

		manager := lifecycle.NewManager(store)
		report, err := manager.Import(data)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(report))
		for name := range report {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", name, report[name])
		}
		return nil
	},
}
