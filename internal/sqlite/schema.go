// Package sqlite implements the SQLite storage backend for boletera.
package sqlite

import (
	"fmt"

	"github.com/boletostravel/boletera/pkg/types"
)

// schemaVersion is stamped into PRAGMA user_version on first attach. A data
// directory carrying a higher version was written by a newer build and is
// refused rather than migrated.
const schemaVersion = 1

// basicTableDDL builds the DDL for a code/name/status collection.
// Passengers, tellers, and destinations share this shape.
func basicTableDDL(table string) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    codigo INTEGER PRIMARY KEY,
    nombre TEXT NOT NULL,
    estado_registro TEXT NOT NULL
);`, table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_nombre ON %s(nombre);`, table, table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_estado ON %s(estado_registro);`, table, table),
	}
}

// Ticket table DDL. Reference names are denormalized copies taken at
// selection time.
const (
	createBoletos = `CREATE TABLE IF NOT EXISTS boletos (
    numero_boleto INTEGER PRIMARY KEY,
    fecha_viaje TEXT NOT NULL,
    pasajero INTEGER NOT NULL,
    pasajero_nombre TEXT NOT NULL,
    destino INTEGER NOT NULL,
    destino_nombre TEXT NOT NULL,
    cajero INTEGER NOT NULL,
    cajero_nombre TEXT NOT NULL,
    asiento TEXT NOT NULL,
    monto TEXT NOT NULL,
    estado_registro TEXT NOT NULL
);`

	idxBoletosFecha  = `CREATE INDEX IF NOT EXISTS idx_boletos_fecha ON boletos(fecha_viaje);`
	idxBoletosEstado = `CREATE INDEX IF NOT EXISTS idx_boletos_estado ON boletos(estado_registro);`
)

// schemaDDL lists every statement needed to establish the schema. All
// statements are idempotent so a repeated attach against an existing data
// directory leaves the data alone.
func schemaDDL() []string {
	var ddl []string
	ddl = append(ddl, basicTableDDL(types.PassengersCollection)...)
	ddl = append(ddl, basicTableDDL(types.TellersCollection)...)
	ddl = append(ddl, basicTableDDL(types.DestinationsCollection)...)
	ddl = append(ddl, createBoletos, idxBoletosFecha, idxBoletosEstado)
	return ddl
}
