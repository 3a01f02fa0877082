package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boletostravel/boletera/pkg/types"
)

func attachedBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	require.NoError(t, b.Attach(testConfig(t)))
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

func TestBasicRoundTrip(t *testing.T) {
	b := attachedBackend(t)
	coll, err := b.GetCollection(types.DestinationsCollection)
	require.NoError(t, err)

	stored := &types.BasicRecord{Code: 3, Name: "Cusco", RegStatus: types.StatusInactive}
	code, err := coll.Put(stored)
	require.NoError(t, err)
	assert.Equal(t, 3, code)

	got, err := coll.Get(3)
	require.NoError(t, err)
	record, ok := got.(*types.BasicRecord)
	require.True(t, ok)
	assert.Equal(t, *stored, *record)
}

func TestPutReplacesWholeRecord(t *testing.T) {
	b := attachedBackend(t)
	coll, err := b.GetCollection(types.PassengersCollection)
	require.NoError(t, err)

	_, err = coll.Put(&types.BasicRecord{Code: 1, Name: "Elena", RegStatus: types.StatusActive})
	require.NoError(t, err)
	_, err = coll.Put(&types.BasicRecord{Code: 1, Name: "Elena Rojas", RegStatus: types.StatusInactive})
	require.NoError(t, err)

	got, err := coll.Get(1)
	require.NoError(t, err)
	name, _ := got.Field("nombre")
	assert.Equal(t, "Elena Rojas", name)
	assert.Equal(t, types.StatusInactive, got.Status())

	all, err := coll.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPutRejectsInvalidRecords(t *testing.T) {
	b := attachedBackend(t)
	coll, err := b.GetCollection(types.PassengersCollection)
	require.NoError(t, err)

	_, err = coll.Put(nil)
	assert.ErrorIs(t, err, types.ErrInvalidData)
	_, err = coll.Put(&types.BasicRecord{Code: 0, Name: "sin codigo"})
	assert.ErrorIs(t, err, types.ErrInvalidData)
	// A ticket does not belong in a basic collection.
	_, err = coll.Put(&types.Ticket{Number: 1})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestGetMissingRecord(t *testing.T) {
	b := attachedBackend(t)
	coll, err := b.GetCollection(types.TellersCollection)
	require.NoError(t, err)

	_, err = coll.Get(42)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDelete(t *testing.T) {
	b := attachedBackend(t)
	coll, err := b.GetCollection(types.TellersCollection)
	require.NoError(t, err)

	_, err = coll.Put(&types.BasicRecord{Code: 5, Name: "Marco"})
	require.NoError(t, err)
	require.NoError(t, coll.Delete(5))

	_, err = coll.Get(5)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, coll.Delete(5), types.ErrNotFound)
}

func TestTicketRoundTrip(t *testing.T) {
	b := attachedBackend(t)
	coll, err := b.GetCollection(types.TicketsCollection)
	require.NoError(t, err)

	stored := &types.Ticket{
		Number:     7,
		TravelDate: "2026-09-15",
		Seat:       "12A",
		Amount:     "150.50",
		RegStatus:  types.StatusActive,
	}
	stored.SetPassenger(types.Ref{Code: 1, Name: "Elena Rojas"})
	stored.SetDestination(types.Ref{Code: 2, Name: "Cusco"})
	stored.SetTeller(types.Ref{Code: 3, Name: "Marco Paz"})

	number, err := coll.Put(stored)
	require.NoError(t, err)
	assert.Equal(t, 7, number)

	got, err := coll.Get(7)
	require.NoError(t, err)
	ticket, ok := got.(*types.Ticket)
	require.True(t, ok)
	assert.Equal(t, *stored, *ticket)
}

func TestGetAllSnapshot(t *testing.T) {
	b := attachedBackend(t)
	coll, err := b.GetCollection(types.PassengersCollection)
	require.NoError(t, err)

	all, err := coll.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	for code := 1; code <= 3; code++ {
		_, err := coll.Put(&types.BasicRecord{Code: code, Name: "p"})
		require.NoError(t, err)
	}
	all, err = coll.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
