package domain

import "time"

// PersonType separates standing residents from non-resident individuals whose
// access is tied to a house.
type PersonType string

const (
	PersonTypeResident   PersonType = "Resident"
	PersonTypeAuthorized PersonType = "Authorized"
)

// PersonSubtype qualifies an Authorized person. Residents carry no subtype.
type PersonSubtype string

const (
	SubtypeEmployee PersonSubtype = "Employee"
	SubtypeVisitor  PersonSubtype = "Visitor"
)

// Person is the primary identity tracked by the access core. A person belongs
// to exactly one house and owns zero or more vehicles.
type Person struct {
	ID         string
	Name       string
	NationalID string
	Type       PersonType
	Subtype    *PersonSubtype
	HouseID    string
	Vehicles   []Vehicle
	CreatedAt  time.Time
}

// Vehicle is owned by exactly one person. Plates are stored upper-cased and
// must be unique within the owner's fleet.
type Vehicle struct {
	ID       string
	Plate    string
	Model    string
	PersonID string
}

// FindVehicle returns the vehicle with the given id from the person's fleet.
func (p Person) FindVehicle(vehicleID string) (Vehicle, bool) {
	for _, v := range p.Vehicles {
		if v.ID == vehicleID {
			return v, true
		}
	}
	return Vehicle{}, false
}
