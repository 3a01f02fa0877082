// Field flags shared by the create and update commands.
package main

import (
	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/pkg/lifecycle"
	"github.com/boletostravel/boletera/pkg/types"
)

// registerFieldFlags declares the record field flags. Name applies to the
// three basic collections; the rest apply to boletos.
func registerFieldFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("nombre", "", "record name (pasajeros, cajeros, destinos)")
	f.String("fecha", "", "travel date as YYYY-MM-DD (boletos)")
	f.String("asiento", "", "seat (boletos)")
	f.String("monto", "", "amount (boletos)")
	f.Int("pasajero", 0, "passenger code (boletos)")
	f.Int("destino", 0, "destination code (boletos)")
	f.Int("cajero", 0, "teller code (boletos)")
}

// applyFieldFlags copies the field flags the user actually set onto the
// record. Reference flags are resolved through the active-record picker, so
// an inactive or deleted code is rejected here rather than stored.
func applyFieldFlags(cmd *cobra.Command, manager *lifecycle.Manager, record types.Record) error {
	flags := cmd.Flags()

	switch r := record.(type) {
	case *types.BasicRecord:
		if flags.Changed("nombre") {
			r.Name, _ = flags.GetString("nombre")
		}
	case *types.Ticket:
		if flags.Changed("fecha") {
			r.TravelDate, _ = flags.GetString("fecha")
		}
		if flags.Changed("asiento") {
			r.Seat, _ = flags.GetString("asiento")
		}
		if flags.Changed("monto") {
			r.Amount, _ = flags.GetString("monto")
		}
		if flags.Changed("pasajero") {
			code, _ := flags.GetInt("pasajero")
			ref, err := manager.Select(types.PassengersCollection, code)
			if err != nil {
				return err
			}
			r.SetPassenger(ref)
		}
		if flags.Changed("destino") {
			code, _ := flags.GetInt("destino")
			ref, err := manager.Select(types.DestinationsCollection, code)
			if err != nil {
				return err
			}
			r.SetDestination(ref)
		}
		if flags.Changed("cajero") {
			code, _ := flags.GetInt("cajero")
			ref, err := manager.Select(types.TellersCollection, code)
			if err != nil {
				return err
			}
			r.SetTeller(ref)
		}
	}
	return nil
}
