package types

// Standard collection names. The names are the original application's store
// names and double as the keys of import/export payloads.
const (
	PassengersCollection   = "pasajeros"
	TellersCollection      = "cajeros"
	DestinationsCollection = "destinos"
	TicketsCollection      = "boletos"
)

// StandardCollections lists all collection names for enumeration.
var StandardCollections = []string{
	PassengersCollection,
	TellersCollection,
	DestinationsCollection,
	TicketsCollection,
}

// Record is one entity instance in a collection. Every record kind exposes
// its integer primary key, its registration status, and a string rendering
// of each named field for the query layer (sorting, searching) and for
// required-field validation.
type Record interface {
	// Key returns the primary identifier (codigo or numeroBoleto).
	Key() int

	// Status returns the registration status.
	Status() Status

	// SetStatus replaces the registration status. Transition rules are
	// enforced by the lifecycle manager, not here.
	SetStatus(Status)

	// Field returns the string form of the named field and whether the
	// field exists on this record kind. Unset integer fields (a reference
	// not yet selected) render as the empty string.
	Field(name string) (string, bool)
}
