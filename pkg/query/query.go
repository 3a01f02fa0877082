// Package query derives display views from collection snapshots: a status
// filter, a free-text search scoped by that filter, and a stable typed sort
// driven by the collection schema. It also provides the active-records view
// used to populate cross-collection selection pickers.
package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/boletostravel/boletera/pkg/types"
)

// StatusFilter selects which registration statuses pass into a view.
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterActive
	FilterInactive
	FilterDeleted
)

// ParseStatusFilter maps a filter symbol to a StatusFilter: "all" (or
// empty) passes everything, and the status symbols "A", "I", "*" select one
// status.
func ParseStatusFilter(symbol string) (StatusFilter, error) {
	switch symbol {
	case "", "all":
		return FilterAll, nil
	}
	status, err := types.ParseStatus(symbol)
	if err != nil {
		return FilterAll, fmt.Errorf("invalid status filter %q", symbol)
	}
	switch status {
	case types.StatusInactive:
		return FilterInactive, nil
	case types.StatusDeleted:
		return FilterDeleted, nil
	default:
		return FilterActive, nil
	}
}

// Matches reports whether a record with the given status passes the filter.
func (f StatusFilter) Matches(s types.Status) bool {
	switch f {
	case FilterActive:
		return s == types.StatusActive
	case FilterInactive:
		return s == types.StatusInactive
	case FilterDeleted:
		return s == types.StatusDeleted
	default:
		return true
	}
}

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ParseSort splits a combined sort spec of the form "field-asc" or
// "field-desc" into the field name and direction. An empty spec means no
// sort: the empty field name leaves the view in snapshot order.
func ParseSort(spec string) (string, Direction, error) {
	if spec == "" {
		return "", Ascending, nil
	}
	i := strings.LastIndex(spec, "-")
	if i < 0 {
		return "", Ascending, fmt.Errorf("invalid sort spec %q (expected field-asc or field-desc)", spec)
	}
	field := spec[:i]
	switch spec[i+1:] {
	case "asc":
		return field, Ascending, nil
	case "desc":
		return field, Descending, nil
	default:
		return "", Ascending, fmt.Errorf("invalid sort direction in %q", spec)
	}
}

// DeriveView produces the display view of a collection snapshot: records
// passing the status filter, matching the search term, in sort order.
//
// The search is a case-insensitive substring match over the schema's search
// fields and applies to the already-filtered base, so filtering by one
// status and searching for a record in another yields nothing. A sort field
// the schema does not know, or one without a comparator, leaves the view in
// snapshot order.
func DeriveView(schema types.Schema, records []types.Record, filter StatusFilter, sortField string, dir Direction, term string) []types.Record {
	view := make([]types.Record, 0, len(records))
	for _, r := range records {
		if filter.Matches(r.Status()) {
			view = append(view, r)
		}
	}
	if term != "" {
		view = search(schema, view, term)
	}
	sortView(schema, view, sortField, dir)
	return view
}

// search keeps records where any search field contains term,
// case-insensitively. Identifiers match on their decimal string form.
func search(schema types.Schema, records []types.Record, term string) []types.Record {
	term = strings.ToLower(term)
	matched := make([]types.Record, 0, len(records))
	for _, r := range records {
		for _, field := range schema.Search {
			value, ok := r.Field(field)
			if ok && strings.Contains(strings.ToLower(value), term) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}

// sortView sorts records in place by the named field. The comparator is
// picked from the field kind; stability preserves snapshot order among ties.
func sortView(schema types.Schema, records []types.Record, sortField string, dir Direction) {
	def, ok := schema.FieldDef(sortField)
	if !ok {
		return
	}

	var less func(a, b types.Record) bool
	switch def.Kind {
	case types.FieldCode, types.FieldRef:
		less = func(a, b types.Record) bool {
			return fieldInt(a, def.Name) < fieldInt(b, def.Name)
		}
	case types.FieldText:
		c := collate.New(language.Spanish, collate.Loose)
		less = func(a, b types.Record) bool {
			return c.CompareString(fieldString(a, def.Name), fieldString(b, def.Name)) < 0
		}
	case types.FieldDate:
		less = func(a, b types.Record) bool {
			return fieldDate(a, def.Name).Before(fieldDate(b, def.Name))
		}
	case types.FieldAmount:
		less = func(a, b types.Record) bool {
			return fieldAmount(a, def.Name) < fieldAmount(b, def.Name)
		}
	default:
		// No comparator for this kind; keep snapshot order.
		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		if dir == Descending {
			return less(records[j], records[i])
		}
		return less(records[i], records[j])
	})
}

// ActiveView returns the records with status Active, sorted ascending by
// name with a plain case-insensitive comparison. This is the view selection
// pickers are populated from; it deliberately uses a simpler comparator
// than the collated sort of DeriveView.
func ActiveView(records []types.Record) []types.Record {
	active := make([]types.Record, 0, len(records))
	for _, r := range records {
		if r.Status() == types.StatusActive {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return strings.ToLower(fieldString(active[i], "nombre")) <
			strings.ToLower(fieldString(active[j], "nombre"))
	})
	return active
}

func fieldString(r types.Record, name string) string {
	value, _ := r.Field(name)
	return value
}

func fieldInt(r types.Record, name string) int {
	n, err := strconv.Atoi(fieldString(r, name))
	if err != nil {
		return 0
	}
	return n
}

// fieldDate parses an ISO date. Invalid or missing dates sort first as the
// zero time rather than failing the sort.
func fieldDate(r types.Record, name string) time.Time {
	t, err := time.Parse("2006-01-02", fieldString(r, name))
	if err != nil {
		return time.Time{}
	}
	return t
}

// fieldAmount parses a decimal amount. Non-numeric or missing amounts count
// as zero; lenient on purpose, amounts are caller-entered text.
func fieldAmount(r types.Record, name string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(fieldString(r, name)), 64)
	if err != nil {
		return 0
	}
	return f
}
