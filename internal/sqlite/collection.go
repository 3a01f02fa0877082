package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/boletostravel/boletera/pkg/types"
)

// collection implements types.Collection for a single record collection.
// Each operation is its own transaction; there is no cross-collection
// atomicity.
type collection struct {
	name    string   // collection and table name (e.g. "pasajeros")
	backend *Backend // parent backend for DB access
}

// Get retrieves a record by key. Returns ErrNotFound if absent.
func (c *collection) Get(code int) (types.Record, error) {
	c.backend.mu.RLock()
	defer c.backend.mu.RUnlock()

	if !c.backend.attached {
		return nil, types.ErrStoreClosed
	}
	if c.name == types.TicketsCollection {
		return c.getTicket(code)
	}
	return c.getBasic(code)
}

// Put inserts or fully replaces the record with the same key. The stored
// row becomes exactly the record passed in.
func (c *collection) Put(record types.Record) (int, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()

	if !c.backend.attached {
		return 0, types.ErrStoreClosed
	}
	if record == nil || record.Key() <= 0 {
		return 0, types.ErrInvalidData
	}
	if c.name == types.TicketsCollection {
		return c.putTicket(record)
	}
	return c.putBasic(record)
}

// GetAll returns a snapshot of the collection in storage order.
func (c *collection) GetAll() ([]types.Record, error) {
	c.backend.mu.RLock()
	defer c.backend.mu.RUnlock()

	if !c.backend.attached {
		return nil, types.ErrStoreClosed
	}
	if c.name == types.TicketsCollection {
		return c.getAllTickets()
	}
	return c.getAllBasic()
}

// Delete physically removes a record. Returns ErrNotFound if absent.
// The lifecycle manager prefers soft deletion; this exists for parity with
// the storage contract.
func (c *collection) Delete(code int) error {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()

	if !c.backend.attached {
		return types.ErrStoreClosed
	}

	result, err := c.backend.db.Exec(
		fmt.Sprintf("DELETE FROM %s WHERE %s = ?", c.name, c.keyColumn()), code)
	if err != nil {
		return storageErr("delete "+c.name, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return storageErr("delete "+c.name, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (c *collection) keyColumn() string {
	if c.name == types.TicketsCollection {
		return "numero_boleto"
	}
	return "codigo"
}

// Basic record operations (pasajeros, cajeros, destinos).

func (c *collection) getBasic(code int) (types.Record, error) {
	row := c.backend.db.QueryRow(
		fmt.Sprintf("SELECT codigo, nombre, estado_registro FROM %s WHERE codigo = ?", c.name),
		code)
	return scanBasic(row)
}

func scanBasic(row *sql.Row) (*types.BasicRecord, error) {
	var r types.BasicRecord
	var status string
	err := row.Scan(&r.Code, &r.Name, &status)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, storageErr("scan record", err)
	}
	r.RegStatus, err = types.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}
	return &r, nil
}

func (c *collection) putBasic(record types.Record) (int, error) {
	r, ok := record.(*types.BasicRecord)
	if !ok {
		return 0, types.ErrInvalidData
	}

	_, err := c.backend.db.Exec(fmt.Sprintf(`
		INSERT INTO %s (codigo, nombre, estado_registro)
		VALUES (?, ?, ?)
		ON CONFLICT(codigo) DO UPDATE SET
			nombre = excluded.nombre,
			estado_registro = excluded.estado_registro`, c.name),
		r.Code, r.Name, r.RegStatus.Symbol())
	if err != nil {
		return 0, storageErr("put "+c.name, err)
	}
	return r.Code, nil
}

func (c *collection) getAllBasic() ([]types.Record, error) {
	rows, err := c.backend.db.Query(
		fmt.Sprintf("SELECT codigo, nombre, estado_registro FROM %s", c.name))
	if err != nil {
		return nil, storageErr("get all "+c.name, err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var r types.BasicRecord
		var status string
		if err := rows.Scan(&r.Code, &r.Name, &status); err != nil {
			return nil, storageErr("scan "+c.name, err)
		}
		if r.RegStatus, err = types.ParseStatus(status); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrInvalidData, err)
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate "+c.name, err)
	}
	return records, nil
}

// Ticket operations (boletos).

const ticketColumns = `numero_boleto, fecha_viaje, pasajero, pasajero_nombre,
	destino, destino_nombre, cajero, cajero_nombre, asiento, monto, estado_registro`

func (c *collection) getTicket(number int) (types.Record, error) {
	row := c.backend.db.QueryRow(
		"SELECT "+ticketColumns+" FROM boletos WHERE numero_boleto = ?", number)

	var t types.Ticket
	var status string
	err := row.Scan(&t.Number, &t.TravelDate,
		&t.PassengerCode, &t.PassengerName,
		&t.DestinationCode, &t.DestinationName,
		&t.TellerCode, &t.TellerName,
		&t.Seat, &t.Amount, &status)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, storageErr("scan boleto", err)
	}
	if t.RegStatus, err = types.ParseStatus(status); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}
	return &t, nil
}

func (c *collection) putTicket(record types.Record) (int, error) {
	t, ok := record.(*types.Ticket)
	if !ok {
		return 0, types.ErrInvalidData
	}

	_, err := c.backend.db.Exec(`
		INSERT INTO boletos (`+ticketColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(numero_boleto) DO UPDATE SET
			fecha_viaje = excluded.fecha_viaje,
			pasajero = excluded.pasajero,
			pasajero_nombre = excluded.pasajero_nombre,
			destino = excluded.destino,
			destino_nombre = excluded.destino_nombre,
			cajero = excluded.cajero,
			cajero_nombre = excluded.cajero_nombre,
			asiento = excluded.asiento,
			monto = excluded.monto,
			estado_registro = excluded.estado_registro`,
		t.Number, t.TravelDate,
		t.PassengerCode, t.PassengerName,
		t.DestinationCode, t.DestinationName,
		t.TellerCode, t.TellerName,
		t.Seat, t.Amount, t.RegStatus.Symbol())
	if err != nil {
		return 0, storageErr("put boletos", err)
	}
	return t.Number, nil
}

func (c *collection) getAllTickets() ([]types.Record, error) {
	rows, err := c.backend.db.Query("SELECT " + ticketColumns + " FROM boletos")
	if err != nil {
		return nil, storageErr("get all boletos", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var t types.Ticket
		var status string
		if err := rows.Scan(&t.Number, &t.TravelDate,
			&t.PassengerCode, &t.PassengerName,
			&t.DestinationCode, &t.DestinationName,
			&t.TellerCode, &t.TellerName,
			&t.Seat, &t.Amount, &status); err != nil {
			return nil, storageErr("scan boletos", err)
		}
		if t.RegStatus, err = types.ParseStatus(status); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrInvalidData, err)
		}
		records = append(records, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate boletos", err)
	}
	return records, nil
}
