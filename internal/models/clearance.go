package models

// Clearance is the access level of a user. It also selects the numeric band
// the user's id is allocated from.
type Clearance string

const (
	ClearanceAdmin Clearance = "admin"
	ClearanceUser  Clearance = "user"
	ClearanceGuest Clearance = "guest"
)

// Clearances lists the valid levels in menu order.
var Clearances = []Clearance{ClearanceAdmin, ClearanceUser, ClearanceGuest}

// Valid reports whether c is one of the known levels.
func (c Clearance) Valid() bool {
	switch c {
	case ClearanceAdmin, ClearanceUser, ClearanceGuest:
		return true
	}
	return false
}
