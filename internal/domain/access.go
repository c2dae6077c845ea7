package domain

import "time"

// Direction of a registered access.
type Direction string

const (
	DirectionEntry Direction = "Entry"
	DirectionExit  Direction = "Exit"
)

// AccessEvent is one entry in the append-only access ledger. PersonName,
// HouseAddress, and VehiclePlate are snapshotted at registration time so the
// audit trail stays historically accurate when person or house records are
// edited later. Events are never updated or deleted.
type AccessEvent struct {
	ID           string
	PersonID     string
	PersonName   string
	VehicleID    string
	VehiclePlate string
	Direction    Direction
	Timestamp    time.Time
	HouseID      string
	HouseAddress string
}

// SameDay reports whether the event falls on the given calendar day in the
// event's own location.
func (e AccessEvent) SameDay(day time.Time) bool {
	y1, m1, d1 := e.Timestamp.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
