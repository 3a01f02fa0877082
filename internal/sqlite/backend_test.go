package sqlite

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boletostravel/boletera/pkg/types"
)

func testConfig(t *testing.T) types.Config {
	t.Helper()
	return types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
}

func TestAttachDetach(t *testing.T) {
	b := NewBackend()
	cfg := testConfig(t)

	require.NoError(t, b.Attach(cfg))

	t.Run("second attach fails", func(t *testing.T) {
		assert.ErrorIs(t, b.Attach(cfg), types.ErrAlreadyAttached)
	})

	t.Run("collections resolve while attached", func(t *testing.T) {
		for _, name := range types.StandardCollections {
			_, err := b.GetCollection(name)
			assert.NoError(t, err, name)
		}
		_, err := b.GetCollection("clientes")
		assert.ErrorIs(t, err, types.ErrCollectionNotFound)
	})

	require.NoError(t, b.Detach())

	t.Run("detach is idempotent", func(t *testing.T) {
		assert.NoError(t, b.Detach())
	})

	t.Run("operations after detach fail", func(t *testing.T) {
		_, err := b.GetCollection(types.PassengersCollection)
		assert.ErrorIs(t, err, types.ErrStoreClosed)
	})
}

func TestAttachRejectsBadConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestDataSurvivesReattach(t *testing.T) {
	cfg := testConfig(t)

	first := NewBackend()
	require.NoError(t, first.Attach(cfg))
	coll, err := first.GetCollection(types.PassengersCollection)
	require.NoError(t, err)
	_, err = coll.Put(&types.BasicRecord{Code: 1, Name: "Elena Rojas"})
	require.NoError(t, err)
	require.NoError(t, first.Detach())

	second := NewBackend()
	require.NoError(t, second.Attach(cfg))
	defer second.Detach()

	coll, err = second.GetCollection(types.PassengersCollection)
	require.NoError(t, err)
	record, err := coll.Get(1)
	require.NoError(t, err)
	name, _ := record.Field("nombre")
	assert.Equal(t, "Elena Rojas", name)
}

func TestAttachRejectsNewerSchema(t *testing.T) {
	cfg := testConfig(t)

	// Stamp the file with a version from the future.
	db, err := sql.Open("sqlite", filepath.Join(cfg.DataDir, dbFileName))
	require.NoError(t, err)
	_, err = db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	b := NewBackend()
	err = b.Attach(cfg)
	assert.ErrorIs(t, err, types.ErrVersionConflict)
}

func TestSharedConverges(t *testing.T) {
	t.Cleanup(func() { _ = CloseShared() })
	require.NoError(t, CloseShared())

	cfg := testConfig(t)

	const openers = 8
	backends := make([]*Backend, openers)
	errs := make([]error, openers)
	var wg sync.WaitGroup
	for i := 0; i < openers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			backends[i], errs[i] = Shared(cfg)
		}(i)
	}
	wg.Wait()

	for i := 0; i < openers; i++ {
		require.NoError(t, errs[i])
	}
	for i := 1; i < openers; i++ {
		assert.Same(t, backends[0], backends[i])
	}

	require.NoError(t, CloseShared())

	// After closing, the next caller attaches fresh.
	again, err := Shared(cfg)
	require.NoError(t, err)
	assert.NotSame(t, backends[0], again)
}
