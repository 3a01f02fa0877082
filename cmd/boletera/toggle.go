package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/pkg/lifecycle"
	"github.com/boletostravel/boletera/pkg/types"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <collection> <code>",
	Short: "Toggle a record between active and inactive",
	Long: `Toggle flips a record between the active and inactive statuses. A record
already marked deleted cannot be toggled.`,
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

		manager := lifecycle.NewManager(store)
		if err := manager.Toggle(schema.Collection, code); err != nil {
			if isNotFound(err) {
				return fmt.Errorf("no %s record with code %d", schema.Collection, code)
			}
			if errors.Is(err, types.ErrRecordDeleted) {
				return fmt.Errorf("%s %d is deleted and cannot be reactivated", schema.Collection, code)
			}
			return err
		}

		coll, err := store.GetCollection(schema.Collection)
		if err != nil {
			return err
		}
		record, err := coll.Get(code)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d is now %s\n", schema.Collection, code, statusLabel(record.Status()))
		return nil
	},
}
