package types

import "strconv"

// Ref is a resolved cross-collection reference: the foreign key plus the
// display name copied from the referenced record at selection time. The
// copied name is not kept in sync with later renames of the referenced
// record; saved tickets keep the name they were sold under.
type Ref struct {
	Code int    `json:"codigo"`
	Name string `json:"nombre"`
}

// Ticket is a sold travel ticket. It references a passenger, a destination,
// and the teller who issued it, each as a code plus a denormalized name.
// TravelDate is an ISO date (YYYY-MM-DD) and Amount is kept as entered text;
// the query layer parses it leniently when sorting by amount.
type Ticket struct {
	Number          int    `json:"numeroBoleto"`
	TravelDate      string `json:"fechaViaje"`
	PassengerCode   int    `json:"pasajero"`
	PassengerName   string `json:"pasajeroNombre"`
	DestinationCode int    `json:"destino"`
	DestinationName string `json:"destinoNombre"`
	TellerCode      int    `json:"cajero"`
	TellerName      string `json:"cajeroNombre"`
	Seat            string `json:"asiento"`
	Amount          string `json:"monto"`
	RegStatus       Status `json:"estadoRegistro"`
}

// Key returns the ticket number.
func (t *Ticket) Key() int { return t.Number }

// Status returns the registration status.
func (t *Ticket) Status() Status { return t.RegStatus }

// SetStatus replaces the registration status.
func (t *Ticket) SetStatus(s Status) { t.RegStatus = s }

// SetPassenger applies a resolved passenger reference.
func (t *Ticket) SetPassenger(ref Ref) {
	t.PassengerCode = ref.Code
	t.PassengerName = ref.Name
}

// SetDestination applies a resolved destination reference.
func (t *Ticket) SetDestination(ref Ref) {
	t.DestinationCode = ref.Code
	t.DestinationName = ref.Name
}

// SetTeller applies a resolved teller reference.
func (t *Ticket) SetTeller(ref Ref) {
	t.TellerCode = ref.Code
	t.TellerName = ref.Name
}

// Field returns the string form of a named field. Reference codes render as
// the empty string while unselected so that required-field validation treats
// them as blank.
func (t *Ticket) Field(name string) (string, bool) {
	switch name {
	case "numeroBoleto":
		return strconv.Itoa(t.Number), true
	case "fechaViaje":
		return t.TravelDate, true
	case "pasajero":
		return refField(t.PassengerCode), true
	case "pasajeroNombre":
		return t.PassengerName, true
	case "destino":
		return refField(t.DestinationCode), true
	case "destinoNombre":
		return t.DestinationName, true
	case "cajero":
		return refField(t.TellerCode), true
	case "cajeroNombre":
		return t.TellerName, true
	case "asiento":
		return t.Seat, true
	case "monto":
		return t.Amount, true
	case "estadoRegistro":
		return t.RegStatus.Symbol(), true
	default:
		return "", false
	}
}

// refField renders a reference code, with zero (not selected) as blank.
func refField(code int) string {
	if code == 0 {
		return ""
	}
	return strconv.Itoa(code)
}
