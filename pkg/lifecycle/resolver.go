package lifecycle

import (
	"fmt"

	"github.com/boletostravel/boletera/pkg/query"
	"github.com/boletostravel/boletera/pkg/types"
)

// Options returns the selection-picker view of a collection: active records
// only, sorted by name. A deleted or inactive record never appears, so a
// ticket can never pick up a reference to one.
func (m *Manager) Options(collection string) ([]types.Record, error) {
	col, err := m.store.GetCollection(collection)
	if err != nil {
		return nil, err
	}
	records, err := col.GetAll()
	if err != nil {
		return nil, err
	}
	return query.ActiveView(records), nil
}

// Select resolves a code within the active-records view of the target
// collection and returns the foreign key together with the display name to
// denormalize into the referencing record. A code outside the active view
// (absent, inactive, or deleted) returns ErrNotFound.
//
// References already embedded in saved tickets are never touched by later
// changes to the referenced record; the name is a copy taken here.
func (m *Manager) Select(collection string, code int) (types.Ref, error) {
	options, err := m.Options(collection)
	if err != nil {
		return types.Ref{}, err
	}
	for _, r := range options {
		if r.Key() == code {
			name, _ := r.Field("nombre")
			return types.Ref{Code: code, Name: name}, nil
		}
	}
	return types.Ref{}, fmt.Errorf("select %s/%d: %w", collection, code, types.ErrNotFound)
}
