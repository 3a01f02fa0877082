package types

import "strconv"

// BasicRecord is a passenger, teller, or destination: an integer code, a
// display name, and a registration status. The three collections share one
// shape; the collection a record belongs to is decided by where it is
// stored, not by its type.
type BasicRecord struct {
	Code      int    `json:"codigo"`
	Name      string `json:"nombre"`
	RegStatus Status `json:"estadoRegistro"`
}

// Key returns the record code.
func (r *BasicRecord) Key() int { return r.Code }

// Status returns the registration status.
func (r *BasicRecord) Status() Status { return r.RegStatus }

// SetStatus replaces the registration status.
func (r *BasicRecord) SetStatus(s Status) { r.RegStatus = s }

// Field returns the string form of a named field.
func (r *BasicRecord) Field(name string) (string, bool) {
	switch name {
	case "codigo":
		return strconv.Itoa(r.Code), true
	case "nombre":
		return r.Name, true
	case "estadoRegistro":
		return r.RegStatus.Symbol(), true
	default:
		return "", false
	}
}
