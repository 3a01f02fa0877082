// Package lifecycle implements the record lifecycle: draft creation with
// next-identifier assignment, validated saves, soft deletion, the
// active/inactive toggle, cross-collection reference selection, and the
// bulk import/export interface. Every mutation is a full read-modify-write
// round trip through the store; callers re-query after each change.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/boletostravel/boletera/internal/logging"
	"github.com/boletostravel/boletera/pkg/types"
)

// Manager drives the record lifecycle against a Store.
type Manager struct {
	store types.Store
}

// NewManager creates a Manager over the given store.
func NewManager(store types.Store) *Manager {
	return &Manager{store: store}
}

// Create proposes a new record draft: the next free identifier
// (max existing + 1, or 1 on an empty collection) and status Active.
// Ticket drafts also default the travel date to today. The draft is not
// persisted; two sequential Creates without a Save propose the same
// identifier.
func (m *Manager) Create(collection string) (types.Record, error) {
	schema, err := types.SchemaFor(collection)
	if err != nil {
		return nil, err
	}
	col, err := m.store.GetCollection(collection)
	if err != nil {
		return nil, err
	}
	records, err := col.GetAll()
	if err != nil {
		return nil, err
	}

	next := 1
	for _, r := range records {
		if r.Key() >= next {
			next = r.Key() + 1
		}
	}

	draft := schema.New()
	switch d := draft.(type) {
	case *types.BasicRecord:
		d.Code = next
	case *types.Ticket:
		d.Number = next
		d.TravelDate = time.Now().Format("2006-01-02")
	}
	draft.SetStatus(types.StatusActive)
	return draft, nil
}

// Save validates the record against its collection schema and persists it.
// On validation failure a *types.ValidationError naming the missing fields
// is returned and nothing reaches storage.
func (m *Manager) Save(collection string, record types.Record) error {
	schema, err := types.SchemaFor(collection)
	if err != nil {
		return err
	}
	if err := schema.Validate(record); err != nil {
		return err
	}
	col, err := m.store.GetCollection(collection)
	if err != nil {
		return err
	}
	if _, err := col.Put(record); err != nil {
		return err
	}
	logging.L().Infow("record saved", "collection", collection, "key", record.Key())
	return nil
}

// SoftDelete marks a record Deleted. Deletion is one-way: the record stays
// in the collection but leaves every active view, and neither Toggle nor
// the normal edit path brings it back. Deleting an already-deleted record
// is a no-op. A vanished key returns ErrNotFound without writing.
//
// Confirmation is the caller's concern; by the time this runs the user has
// already said yes.
func (m *Manager) SoftDelete(collection string, code int) error {
	col, err := m.store.GetCollection(collection)
	if err != nil {
		return err
	}
	record, err := col.Get(code)
	if err != nil {
		return fmt.Errorf("soft delete %s/%d: %w", collection, code, err)
	}
	if record.Status() == types.StatusDeleted {
		return nil
	}

	record.SetStatus(types.StatusDeleted)
	if _, err := col.Put(record); err != nil {
		return err
	}
	logging.L().Infow("record soft-deleted", "collection", collection, "key", code)
	return nil
}

// Toggle flips a record between Active and Inactive. A Deleted record is
// guarded: Toggle returns ErrRecordDeleted and writes nothing, so the
// one-way deletion rule holds even though the original UI merely disabled
// the button.
func (m *Manager) Toggle(collection string, code int) error {
	col, err := m.store.GetCollection(collection)
	if err != nil {
		return err
	}
	record, err := col.Get(code)
	if err != nil {
		return fmt.Errorf("toggle %s/%d: %w", collection, code, err)
	}

	switch record.Status() {
	case types.StatusDeleted:
		return fmt.Errorf("toggle %s/%d: %w", collection, code, types.ErrRecordDeleted)
	case types.StatusActive:
		record.SetStatus(types.StatusInactive)
	default:
		record.SetStatus(types.StatusActive)
	}

	if _, err := col.Put(record); err != nil {
		return err
	}
	logging.L().Infow("record status toggled",
		"collection", collection, "key", code, "status", record.Status().String())
	return nil
}
