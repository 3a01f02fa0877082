package lifecycle

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/boletostravel/boletera/internal/logging"
	"github.com/boletostravel/boletera/pkg/types"
)

// Report maps collection name to the number of records actually imported
// from that collection's array.
type Report map[string]int

// Import upserts records from a bulk JSON payload: an object with optional
// arrays keyed by collection name (pasajeros, cajeros, destinos, boletos).
//
// Each element must carry its identifier (codigo, or numeroBoleto for
// tickets) and, for the basic collections, a non-blank name. Identifiers
// are coerced to integers and text fields to text; a missing
// estadoRegistro defaults to Active. Malformed elements are skipped
// silently and not counted. Storage failures abort the import.
func (m *Manager) Import(data []byte) (Report, error) {
	var payload map[string][]map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}

	report := make(Report)
	for _, name := range types.StandardCollections {
		elements, ok := payload[name]
		if !ok {
			continue
		}
		count, err := m.importCollection(name, elements)
		if err != nil {
			return nil, err
		}
		report[name] = count
	}
	logging.L().Infow("import finished", "report", report)
	return report, nil
}

func (m *Manager) importCollection(name string, elements []map[string]any) (int, error) {
	col, err := m.store.GetCollection(name)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, elem := range elements {
		record, ok := decodeElement(name, elem)
		if !ok {
			continue
		}
		if _, err := col.Put(record); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// decodeElement builds a record from one payload element, reporting false
// for anything malformed.
func decodeElement(collection string, elem map[string]any) (types.Record, bool) {
	status, ok := statusField(elem["estadoRegistro"])
	if !ok {
		return nil, false
	}

	if collection == types.TicketsCollection {
		number, ok := intField(elem["numeroBoleto"])
		if !ok || number <= 0 {
			return nil, false
		}
		t := &types.Ticket{Number: number, RegStatus: status}
		fields := []struct {
			key  string
			text *string
			code *int
		}{
			{key: "fechaViaje", text: &t.TravelDate},
			{key: "pasajero", code: &t.PassengerCode},
			{key: "pasajeroNombre", text: &t.PassengerName},
			{key: "destino", code: &t.DestinationCode},
			{key: "destinoNombre", text: &t.DestinationName},
			{key: "cajero", code: &t.TellerCode},
			{key: "cajeroNombre", text: &t.TellerName},
			{key: "asiento", text: &t.Seat},
			{key: "monto", text: &t.Amount},
		}
		for _, f := range fields {
			v, present := elem[f.key]
			if !present || v == nil {
				continue
			}
			if f.code != nil {
				n, ok := intField(v)
				if !ok {
					return nil, false
				}
				*f.code = n
			} else {
				s, ok := textField(v)
				if !ok {
					return nil, false
				}
				*f.text = s
			}
		}
		return t, true
	}

	code, ok := intField(elem["codigo"])
	if !ok || code <= 0 {
		return nil, false
	}
	name, ok := textField(elem["nombre"])
	if !ok || strings.TrimSpace(name) == "" {
		return nil, false
	}
	return &types.BasicRecord{Code: code, Name: name, RegStatus: status}, true
}

// intField coerces a decoded JSON value to an integer identifier.
func intField(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// textField coerces a decoded JSON value to text. Numbers become their
// decimal rendering so numeric amounts survive import.
func textField(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return "", false
	}
}

// statusField reads an optional status symbol. Absent means Active;
// anything present but unrecognized marks the element malformed.
func statusField(v any) (types.Status, bool) {
	if v == nil {
		return types.StatusActive, true
	}
	s, ok := v.(string)
	if !ok {
		return types.StatusActive, false
	}
	status, err := types.ParseStatus(s)
	if err != nil {
		return types.StatusActive, false
	}
	return status, true
}

// Export marshals every collection in full as the same payload shape
// Import accepts, so an export can be re-imported elsewhere.
func (m *Manager) Export() ([]byte, error) {
	payload := make(map[string][]types.Record, len(types.StandardCollections))
	for _, name := range types.StandardCollections {
		col, err := m.store.GetCollection(name)
		if err != nil {
			return nil, err
		}
		records, err := col.GetAll()
		if err != nil {
			return nil, err
		}
		if records == nil {
			records = []types.Record{}
		}
		payload[name] = records
	}
	return json.MarshalIndent(payload, "", "  ")
}
