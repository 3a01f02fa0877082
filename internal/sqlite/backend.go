package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/boletostravel/boletera/internal/logging"
	"github.com/boletostravel/boletera/pkg/types"
)

// dbFileName is the database file inside the data directory.
const dbFileName = "boletera.db"

// Backend implements the types.Store interface using SQLite.
type Backend struct {
	mu          sync.RWMutex
	attached    bool
	config      types.Config
	db          *sql.DB
	collections map[string]*collection
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		collections: make(map[string]*collection),
	}
}

// GetCollection returns the Collection for the given name.
// Returns ErrCollectionNotFound if the name is not recognized and
// ErrStoreClosed if the backend is not attached.
func (b *Backend) GetCollection(name string) (types.Collection, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreClosed
	}
	c, ok := b.collections[name]
	if !ok {
		return nil, types.ErrCollectionNotFound
	}
	return c, nil
}

// Attach opens the database under config.DataDir, creating the directory
// and the schema on first use. Data written by earlier attachments is
// preserved; all DDL is idempotent and guarded by the user_version pragma.
// Returns ErrAlreadyAttached if already attached, ErrVersionConflict if the
// data directory was written by a newer schema version.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return storageErr("create data dir", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return storageErr("open database", err)
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.attached = true

	for _, name := range types.StandardCollections {
		b.collections[name] = &collection{name: name, backend: b}
	}

	logging.L().Debugw("store attached", "data_dir", dataDir)
	return nil
}

// Detach closes the database. Idempotent: detaching a detached backend
// succeeds. After Detach, collection operations return ErrStoreClosed.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return storageErr("close database", err)
		}
		b.db = nil
	}
	b.attached = false
	b.collections = make(map[string]*collection)
	return nil
}

// ensureSchema establishes the schema exactly once per data directory. The
// first attacher finds user_version 0, runs the DDL, and stamps the current
// version; later attachers see the stamp and leave the data alone.
func ensureSchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return storageErr("read schema version", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("%w: found %d, supported %d",
			types.ErrVersionConflict, version, schemaVersion)
	}

	for _, stmt := range schemaDDL() {
		if _, err := db.Exec(stmt); err != nil {
			return storageErr("create schema", err)
		}
	}
	if version < schemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return storageErr("stamp schema version", err)
		}
	}
	return nil
}

// storageErr logs a storage failure and wraps it so callers can test for
// ErrStoreUnavailable. Failures propagate; there is no retry.
func storageErr(op string, err error) error {
	logging.L().Errorw("storage failure", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, errors.Join(types.ErrStoreUnavailable, err))
}

// Shared backend state. The store connection is a process-wide resource:
// concurrent openers converge on a single attached handle, with only the
// first performing schema establishment.
var (
	sharedMu      sync.Mutex
	sharedBackend *Backend
)

// Shared returns the process-wide backend, attaching it with config on
// first call. Subsequent callers receive the already-attached handle and
// their config is ignored.
func Shared(config types.Config) (*Backend, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedBackend != nil {
		return sharedBackend, nil
	}
	b := NewBackend()
	if err := b.Attach(config); err != nil {
		return nil, err
	}
	sharedBackend = b
	return b, nil
}

// CloseShared detaches and forgets the shared backend. The next Shared call
// attaches fresh.
func CloseShared() error {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedBackend == nil {
		return nil
	}
	err := sharedBackend.Detach()
	sharedBackend = nil
	return err
}
