package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/pkg/lifecycle"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <collection> <code>",
	Short: "Mark a record as deleted",
	Long: `Delete marks a record with the deleted status. The record stays in the
store and remains visible under the "*" status filter, but it can no longer
be toggled back and never appears in reference pickers. Deleting an already
deleted record is a no-op.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := collectionArg(args[0])
		if err != nil {
			return err
		}
		code, err := codeArg(args[1])
		if err != nil {
			return err
		}
		if err := requireSession(); err != nil {
			return err
		}

		ok, err := confirm(cmd, fmt.Sprintf("Mark %s %d as deleted?", schema.Collection, code))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}

		store, release, err := attachStore()
		if err != nil {
			return err
		}
		defer release()

		manager := lifecycle.NewManager(store)
		if err := manager.SoftDelete(schema.Collection, code); err != nil {
			if isNotFound(err) {
				return fmt.Errorf("no %s record with code %d", schema.Collection, code)
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %d\n", schema.Collection, code)
		return nil
	},
}
