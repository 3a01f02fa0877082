package types

import (
	"encoding/json"
	"fmt"
)

// Status is the registration status of a record. It is a closed tri-state
// enumeration, not a boolean: deletion is a status, never a physical removal.
//
// The zero value is StatusActive, so a record decoded from a payload that
// omits the status comes up Active.
type Status int

const (
	StatusActive Status = iota
	StatusInactive
	StatusDeleted
)

// Wire symbols for Status. These are the one-character tags used in the
// persisted rows and in import/export payloads.
const (
	symbolActive   = "A"
	symbolInactive = "I"
	symbolDeleted  = "*"
)

// Symbol returns the one-character wire form of the status.
func (s Status) Symbol() string {
	switch s {
	case StatusInactive:
		return symbolInactive
	case StatusDeleted:
		return symbolDeleted
	default:
		return symbolActive
	}
}

// String returns a human-readable name for logs and error messages.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusInactive:
		return "inactive"
	case StatusDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseStatus converts a wire symbol back to a Status.
// Returns ErrInvalidStatus for anything other than "A", "I" or "*".
func ParseStatus(symbol string) (Status, error) {
	switch symbol {
	case symbolActive:
		return StatusActive, nil
	case symbolInactive:
		return StatusInactive, nil
	case symbolDeleted:
		return StatusDeleted, nil
	default:
		return StatusActive, fmt.Errorf("%w: %q", ErrInvalidStatus, symbol)
	}
}

// MarshalJSON encodes the status as its wire symbol.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Symbol())
}

// UnmarshalJSON decodes a wire symbol. An unknown symbol is an error;
// callers that want a lenient default must handle absence themselves.
func (s *Status) UnmarshalJSON(data []byte) error {
	var symbol string
	if err := json.Unmarshal(data, &symbol); err != nil {
		return err
	}
	parsed, err := ParseStatus(symbol)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
