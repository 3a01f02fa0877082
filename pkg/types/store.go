package types

import "errors"

// Store defines backend-agnostic access to the persistent record store.
// Callers attach to a backend, access collections by name, and detach when
// done.
type Store interface {
	// GetCollection returns the Collection for the given name.
	// Returns ErrCollectionNotFound if the name is not a standard
	// collection, ErrStoreClosed if the store is not attached.
	GetCollection(name string) (Collection, error)

	// Attach connects the store to durable storage described by config,
	// creating the data directory and schema on first use. Data written by
	// earlier attachments is preserved. Returns ErrAlreadyAttached if
	// called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, collection operations return ErrStoreClosed.
	Detach() error
}

// Collection provides uniform operations over a single record collection.
// Get and GetAll return the concrete entity type for the collection
// (*BasicRecord or *Ticket); callers type-assert as needed.
type Collection interface {
	// Get retrieves the record with the given key.
	// Returns ErrNotFound if no record exists with that key.
	Get(code int) (Record, error)

	// Put inserts or fully replaces the record with the same key and
	// returns the key. There is no partial merge: the stored row becomes
	// exactly the record passed in, and a field the caller left empty is
	// empty afterward.
	Put(record Record) (int, error)

	// GetAll returns a snapshot of every record in the collection, in
	// storage order.
	GetAll() ([]Record, error)

	// Delete physically removes the record with the given key. The
	// lifecycle prefers soft deletion; this exists for completeness.
	// Returns ErrNotFound if no record exists with that key.
	Delete(code int) error
}

// Store lifecycle errors.
var (
	ErrStoreClosed      = errors.New("store is detached")
	ErrAlreadyAttached  = errors.New("store is already attached")
	ErrStoreUnavailable = errors.New("storage unavailable")
	ErrVersionConflict  = errors.New("data directory uses a newer schema version")
)

// Collection operation errors.
var (
	ErrNotFound           = errors.New("record not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrInvalidData        = errors.New("invalid record data")
)

// Lifecycle and entity errors.
var (
	ErrRecordDeleted = errors.New("record is deleted")
	ErrInvalidStatus = errors.New("invalid registration status")
)
