package lifecycle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boletostravel/boletera/pkg/types"
)

func TestImport(t *testing.T) {
	m := newTestManager(t)

	payload := []byte(`{
		"pasajeros": [
			{"codigo": 1, "nombre": "Elena Rojas", "estadoRegistro": "A"},
			{"codigo": 2, "nombre": "Marco Paz", "estadoRegistro": "I"},
			{"codigo": "3", "nombre": "Carla Luna"}
		],
		"destinos": [
			{"codigo": 1, "nombre": "Cusco"}
		],
		"boletos": [
			{
				"numeroBoleto": 1,
				"fechaViaje": "2026-09-15",
				"pasajero": 1, "pasajeroNombre": "Elena Rojas",
				"destino": 1, "destinoNombre": "Cusco",
				"cajero": 2, "cajeroNombre": "Sofia",
				"asiento": "12A",
				"monto": 150.5,
				"estadoRegistro": "A"
			}
		]
	}`)

	report, err := m.Import(payload)
	require.NoError(t, err)
	assert.Equal(t, Report{"pasajeros": 3, "destinos": 1, "boletos": 1}, report)

	t.Run("status symbols are honored", func(t *testing.T) {
		assert.Equal(t, types.StatusInactive, getPassenger(t, m, 2).Status())
	})

	t.Run("missing status defaults to active", func(t *testing.T) {
		assert.Equal(t, types.StatusActive, getPassenger(t, m, 3).Status())
	})

	t.Run("numeric amounts become text", func(t *testing.T) {
		coll, err := m.store.GetCollection(types.TicketsCollection)
		require.NoError(t, err)
		got, err := coll.Get(1)
		require.NoError(t, err)
		amount, _ := got.Field("monto")
		assert.Equal(t, "150.5", amount)
	})
}

func TestImportSkipsMalformedElements(t *testing.T) {
	m := newTestManager(t)

	payload := []byte(`{
		"pasajeros": [
			{"codigo": 1, "nombre": "Elena"},
			{"nombre": "sin codigo"},
			{"codigo": 2, "nombre": "   "},
			{"codigo": 3, "nombre": "Ana", "estadoRegistro": "Z"},
			{"codigo": 2.5, "nombre": "medio"},
			{"codigo": 4, "nombre": "Beto"}
		]
	}`)

	report, err := m.Import(payload)
	require.NoError(t, err)
	assert.Equal(t, Report{"pasajeros": 2}, report)
}

func TestImportRejectsNonObjectPayload(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Import([]byte(`[1, 2, 3]`))
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestImportReplacesExistingRecords(t *testing.T) {
	m := newTestManager(t)
	putPassenger(t, m, 1, "Elena", types.StatusInactive)

	_, err := m.Import([]byte(`{"pasajeros": [{"codigo": 1, "nombre": "Elena Rojas", "estadoRegistro": "A"}]}`))
	require.NoError(t, err)

	record := getPassenger(t, m, 1)
	name, _ := record.Field("nombre")
	assert.Equal(t, "Elena Rojas", name)
	assert.Equal(t, types.StatusActive, record.Status())
}

func TestImportIgnoresUnknownCollections(t *testing.T) {
	m := newTestManager(t)

	report, err := m.Import([]byte(`{"clientes": [{"codigo": 1, "nombre": "x"}]}`))
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestExportRoundTrip(t *testing.T) {
	source := newTestManager(t)
	putPassenger(t, source, 1, "Elena", types.StatusActive)
	putPassenger(t, source, 2, "Marco", types.StatusDeleted)

	ticket := &types.Ticket{Number: 1, TravelDate: "2026-09-15", Seat: "12A", Amount: "150.50"}
	ticket.SetPassenger(types.Ref{Code: 1, Name: "Elena"})
	ticket.SetDestination(types.Ref{Code: 1, Name: "Cusco"})
	ticket.SetTeller(types.Ref{Code: 1, Name: "Sofia"})
	require.NoError(t, source.Save(types.TicketsCollection, ticket))

	data, err := source.Export()
	require.NoError(t, err)

	t.Run("every collection is present", func(t *testing.T) {
		var payload map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &payload))
		for _, name := range types.StandardCollections {
			assert.Contains(t, payload, name)
		}
	})

	target := newTestManager(t)
	report, err := target.Import(data)
	require.NoError(t, err)
	// Deleted records travel too.
	assert.Equal(t, 2, report["pasajeros"])
	assert.Equal(t, 1, report["boletos"])

	assert.Equal(t, types.StatusDeleted, getPassenger(t, target, 2).Status())

	coll, err := target.store.GetCollection(types.TicketsCollection)
	require.NoError(t, err)
	got, err := coll.Get(1)
	require.NoError(t, err)
	assert.Equal(t, ticket, got)
}
