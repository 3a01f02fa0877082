package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boletostravel/boletera/pkg/types"
)

func TestOptions(t *testing.T) {
	m := newTestManager(t)
	putPassenger(t, m, 1, "zulema", types.StatusActive)
	putPassenger(t, m, 2, "Ana", types.StatusInactive)
	putPassenger(t, m, 3, "Beto", types.StatusActive)
	putPassenger(t, m, 4, "Carla", types.StatusDeleted)

	options, err := m.Options(types.PassengersCollection)
	require.NoError(t, err)

	codes := make([]int, len(options))
	for i, r := range options {
		codes[i] = r.Key()
	}
	// Active only, sorted by name: Beto then zulema.
	assert.Equal(t, []int{3, 1}, codes)
}

func TestSelect(t *testing.T) {
	m := newTestManager(t)
	putPassenger(t, m, 1, "Elena Rojas", types.StatusActive)
	putPassenger(t, m, 2, "Marco Paz", types.StatusInactive)
	putPassenger(t, m, 3, "Carla Luna", types.StatusDeleted)

	t.Run("active record resolves with its name", func(t *testing.T) {
		ref, err := m.Select(types.PassengersCollection, 1)
		require.NoError(t, err)
		assert.Equal(t, types.Ref{Code: 1, Name: "Elena Rojas"}, ref)
	})

	t.Run("inactive record is not selectable", func(t *testing.T) {
		_, err := m.Select(types.PassengersCollection, 2)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("deleted record is not selectable", func(t *testing.T) {
		_, err := m.Select(types.PassengersCollection, 3)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("absent code is not selectable", func(t *testing.T) {
		_, err := m.Select(types.PassengersCollection, 42)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestSelectedNameIsDenormalizedCopy(t *testing.T) {
	m := newTestManager(t)
	putPassenger(t, m, 1, "Elena", types.StatusActive)

	ref, err := m.Select(types.PassengersCollection, 1)
	require.NoError(t, err)

	ticket := &types.Ticket{Number: 1, TravelDate: "2026-09-01", Seat: "1A", Amount: "50"}
	ticket.SetPassenger(ref)
	ticket.SetDestination(types.Ref{Code: 1, Name: "Cusco"})
	ticket.SetTeller(types.Ref{Code: 1, Name: "Marco"})
	require.NoError(t, m.Save(types.TicketsCollection, ticket))

	// Renaming the passenger afterwards does not touch the saved ticket.
	putPassenger(t, m, 1, "Elena Rojas", types.StatusActive)

	coll, err := m.store.GetCollection(types.TicketsCollection)
	require.NoError(t, err)
	got, err := coll.Get(1)
	require.NoError(t, err)
	name, _ := got.Field("pasajeroNombre")
	assert.Equal(t, "Elena", name)
}
