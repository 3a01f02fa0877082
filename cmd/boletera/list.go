package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/pkg/query"
)

var (
	flagListStatus string
	flagListSort   string
	flagListSearch string
)

var listCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "List records of a collection",
	Long: `List prints the records of a collection as an ordered view. The view is
derived by applying the status filter first, then the search term over the
collection's searchable fields, then the sort order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := collectionArg(args[0])
		if err != nil {
			return err
		}
		filter, err := query.ParseStatusFilter(flagListStatus)
		if err != nil {
			return err
		}
		sortField, direction, err := query.ParseSort(flagListSort)
		if err != nil {
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
		records, err := coll.GetAll()
		if err != nil {
			return fmt.Errorf("load %s: %w", schema.Collection, err)
		}

		view := query.DeriveView(schema, records, filter, sortField, direction, flagListSearch)
		return renderRecords(cmd, schema, view)
	},
}

func init() {
	listCmd.Flags().StringVar(&flagListStatus, "status", "all", `status filter: "all", "A", "I" or "*"`)
	listCmd.Flags().StringVar(&flagListSort, "sort", "", `sort order as <field>-asc or <field>-desc (e.g. "nombre-asc")`)
	listCmd.Flags().StringVar(&flagListSearch, "search", "", "case-insensitive search term")
}
