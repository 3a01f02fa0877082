package types

import (
	"fmt"
	"strings"
)

// FieldKind classifies a record field for sorting, searching, and form
// population. The kind decides which comparator the query layer uses.
type FieldKind int

const (
	// FieldCode is the integer primary identifier. Compared as a number.
	FieldCode FieldKind = iota
	// FieldText is free text, compared with Spanish collation.
	FieldText
	// FieldDate is an ISO date (YYYY-MM-DD), compared chronologically.
	FieldDate
	// FieldAmount is a decimal amount kept as text. Compared numerically;
	// a non-numeric or missing amount counts as zero.
	FieldAmount
	// FieldRef is a foreign key (integer code) into another collection.
	FieldRef
	// FieldStatus is the registration status tag.
	FieldStatus
)

// FieldDef describes one field of a record kind.
type FieldDef struct {
	Name     string    // field name as used in payloads and sort specs
	Kind     FieldKind
	Required bool      // must be non-blank on save
	Ref      string    // target collection, set only for FieldRef
}

// Schema declares a collection's record shape: the ordered field list, the
// key field, the fields searched by free text, and a draft factory. The
// lifecycle manager validates against it and the query layer sorts and
// searches through it, so the entity structs stay free of per-screen logic.
type Schema struct {
	Collection string
	Key        string
	Fields     []FieldDef
	Search     []string
	New        func() Record
}

// FieldDef returns the descriptor for the named field.
func (s Schema) FieldDef(name string) (FieldDef, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// Validate checks that every required field is present and non-blank after
// trimming. On failure it returns a *ValidationError naming the missing
// fields; nothing about the record is mutated.
func (s Schema) Validate(r Record) error {
	var missing []string
	for _, f := range s.Fields {
		if !f.Required {
			continue
		}
		value, ok := r.Field(f.Name)
		if !ok || strings.TrimSpace(value) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Collection: s.Collection, Missing: missing}
	}
	return nil
}

// ValidationError reports required fields that were missing or blank on
// save. It is terminal at the lifecycle layer: a failed validation never
// reaches storage.
type ValidationError struct {
	Collection string
	Missing    []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing required fields: %s",
		e.Collection, strings.Join(e.Missing, ", "))
}

// basicSchema builds the shared schema for passengers, tellers, and
// destinations.
func basicSchema(collection string) Schema {
	return Schema{
		Collection: collection,
		Key:        "codigo",
		Fields: []FieldDef{
			{Name: "codigo", Kind: FieldCode},
			{Name: "nombre", Kind: FieldText, Required: true},
			{Name: "estadoRegistro", Kind: FieldStatus},
		},
		Search: []string{"codigo", "nombre"},
		New:    func() Record { return &BasicRecord{} },
	}
}

// ticketSchema is the boletos schema. The three references plus seat and
// amount are required; the travel date defaults at draft time and is not.
func ticketSchema() Schema {
	return Schema{
		Collection: TicketsCollection,
		Key:        "numeroBoleto",
		Fields: []FieldDef{
			{Name: "numeroBoleto", Kind: FieldCode},
			{Name: "fechaViaje", Kind: FieldDate},
			{Name: "pasajero", Kind: FieldRef, Required: true, Ref: PassengersCollection},
			{Name: "pasajeroNombre", Kind: FieldText},
			{Name: "destino", Kind: FieldRef, Required: true, Ref: DestinationsCollection},
			{Name: "destinoNombre", Kind: FieldText},
			{Name: "cajero", Kind: FieldRef, Required: true, Ref: TellersCollection},
			{Name: "cajeroNombre", Kind: FieldText},
			{Name: "asiento", Kind: FieldText, Required: true},
			{Name: "monto", Kind: FieldAmount, Required: true},
			{Name: "estadoRegistro", Kind: FieldStatus},
		},
		Search: []string{"numeroBoleto", "pasajeroNombre", "destinoNombre"},
		New:    func() Record { return &Ticket{} },
	}
}

// Schemas maps collection name to schema for the four standard collections.
var Schemas = map[string]Schema{
	PassengersCollection:   basicSchema(PassengersCollection),
	TellersCollection:      basicSchema(TellersCollection),
	DestinationsCollection: basicSchema(DestinationsCollection),
	TicketsCollection:      ticketSchema(),
}

// SchemaFor returns the schema for the named collection.
// Returns ErrCollectionNotFound for anything else.
func SchemaFor(collection string) (Schema, error) {
	s, ok := Schemas[collection]
	if !ok {
		return Schema{}, ErrCollectionNotFound
	}
	return s, nil
}
