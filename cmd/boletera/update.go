package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/pkg/lifecycle"
)

var updateCmd = &cobra.Command{
	Use:   "update <collection> <code>",
	Short: "Update a record's fields",
	Long: `Update loads a record by code, applies the field flags that were set,
re-validates the required fields, and saves the full record back. Fields
without a flag keep their stored value.`,
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

		store, release, err := attachStore()
		if err != nil {
			return err
		}
		defer release()

		coll, err := store.GetCollection(schema.Collection)
		if err != nil {
			return err
		}
		record, err := coll.Get(code)
		if err != nil {
			if isNotFound(err) {
				return fmt.Errorf("no %s record with code %d", schema.Collection, code)
			}
			return err
		}

		manager := lifecycle.NewManager(store)
		if err := applyFieldFlags(cmd, manager, record); err != nil {
			return err
		}
		if err := manager.Save(schema.Collection, record); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %d\n", schema.Collection, code)
		return nil
	},
}

func init() {
	registerFieldFlags(updateCmd)
}
