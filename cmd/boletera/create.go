package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/pkg/lifecycle"
)

var createCmd = &cobra.Command{
	Use:   "create <collection>",
	Short: "Create a record",
	Long: `Create proposes a new record with the next free code (highest existing
code plus one) and status Active, applies the field flags, validates the
required fields, and saves it. The assigned code is printed on success.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := collectionArg(args[0])
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

		manager := lifecycle.NewManager(store)
		draft, err := manager.Create(schema.Collection)
		if err != nil {
			return fmt.Errorf("create draft: %w", err)
		}
		if err := applyFieldFlags(cmd, manager, draft); err != nil {
			return err
		}
		if err := manager.Save(schema.Collection, draft); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s %d\n", schema.Collection, draft.Key())
		return nil
	},
}

func init() {
	registerFieldFlags(createCmd)
}
