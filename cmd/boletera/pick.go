package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/pkg/lifecycle"
	"github.com/boletostravel/boletera/pkg/types"
)

var pickCmd = &cobra.Command{
	Use:   "pick <collection> [term]",
	Short: "Show the active-record picker view of a collection",
	Long: `Pick prints the records a ticket form would offer when selecting a
reference: active records only, sorted by name. An optional term narrows
the view by case-insensitive name match.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := collectionArg(args[0])
		if err != nil {
			return err
		}
		// Tickets are never reference targets; only the name-bearing
		// collections have a picker.
		if schema.Collection == types.TicketsCollection {
			return fmt.Errorf("%s has no reference picker (valid: %s, %s, %s)",
				types.TicketsCollection, types.PassengersCollection,
				types.DestinationsCollection, types.TellersCollection)
		}

		store, release, err := attachStore()
		if err != nil {
			return err
		}
		defer release()

		manager := lifecycle.NewManager(store)
		options, err := manager.Options(schema.Collection)
		if err != nil {
			return fmt.Errorf("load picker options: %w", err)
		}

		if len(args) == 2 {
			term := strings.ToLower(args[1])
			filtered := options[:0:0]
			for _, r := range options {
				name, _ := r.Field("nombre")
				if strings.Contains(strings.ToLower(name), term) {
					filtered = append(filtered, r)
				}
			}
			options = filtered
		}
		return renderRecords(cmd, schema, options)
	},
}
