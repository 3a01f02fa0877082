package types

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		want    Status
		wantErr bool
	}{
		{name: "A is active", symbol: "A", want: StatusActive},
		{name: "I is inactive", symbol: "I", want: StatusInactive},
		{name: "asterisk is deleted", symbol: "*", want: StatusDeleted},
		{name: "empty is invalid", symbol: "", wantErr: true},
		{name: "lowercase a is invalid", symbol: "a", wantErr: true},
		{name: "unknown symbol is invalid", symbol: "X", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.symbol)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				if !errors.Is(err, ErrInvalidStatus) {
					t.Fatalf("expected ErrInvalidStatus, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStatusSymbolRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusInactive, StatusDeleted} {
		got, err := ParseStatus(s.Symbol())
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", s.Symbol(), err)
		}
		if got != s {
			t.Fatalf("round trip of %v produced %v", s, got)
		}
	}
}

func TestStatusJSON(t *testing.T) {
	t.Run("marshals as the wire symbol", func(t *testing.T) {
		data, err := json.Marshal(StatusDeleted)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != `"*"` {
			t.Fatalf("expected %q, got %s", `"*"`, data)
		}
	})

	t.Run("unmarshals from the wire symbol", func(t *testing.T) {
		var s Status
		if err := json.Unmarshal([]byte(`"I"`), &s); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if s != StatusInactive {
			t.Fatalf("expected inactive, got %v", s)
		}
	})

	t.Run("rejects unknown symbols", func(t *testing.T) {
		var s Status
		if err := json.Unmarshal([]byte(`"Z"`), &s); err == nil {
			t.Fatal("expected error for unknown symbol")
		}
	})

	t.Run("zero value is active", func(t *testing.T) {
		var s Status
		if s != StatusActive {
			t.Fatalf("zero status should be active, got %v", s)
		}
	})
}
