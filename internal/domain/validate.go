package domain

import (
	"strings"

	"github.com/asaskevich/govalidator"

	dErrors "condogate/pkg/domain-errors"
)

// nationalIDPattern is the formatted national id accepted across the system,
// e.g. 123.456.789-00.
const nationalIDPattern = `^\d{3}\.\d{3}\.\d{3}-\d{2}$`

// Validation predicates are pure: they inspect a value and either return nil
// or a CodeValidation error naming the violated invariant. Callers that
// create or edit people, houses, or vehicles must re-check them.

// ValidatePerson enforces the type/subtype pairing and the per-fleet plate
// uniqueness rule.
func ValidatePerson(p Person) error {
	if strings.TrimSpace(p.Name) == "" {
		return dErrors.New(dErrors.CodeValidation, "person name is required")
	}
	if p.NationalID != "" && !govalidator.Matches(p.NationalID, nationalIDPattern) {
		return dErrors.New(dErrors.CodeValidation, "national id must be formatted as 000.000.000-00")
	}
	switch p.Type {
	case PersonTypeResident:
		if p.Subtype != nil {
			return dErrors.New(dErrors.CodeValidation, "subtype must be empty for Resident person")
		}
	case PersonTypeAuthorized:
		if p.Subtype == nil {
			return dErrors.New(dErrors.CodeValidation, "subtype required for Authorized person")
		}
		if *p.Subtype != SubtypeEmployee && *p.Subtype != SubtypeVisitor {
			return dErrors.Newf(dErrors.CodeValidation, "unknown person subtype %q", *p.Subtype)
		}
	default:
		return dErrors.Newf(dErrors.CodeValidation, "unknown person type %q", p.Type)
	}
	seen := make(map[string]struct{}, len(p.Vehicles))
	for _, v := range p.Vehicles {
		plate := strings.ToUpper(strings.TrimSpace(v.Plate))
		if plate == "" {
			return dErrors.New(dErrors.CodeValidation, "vehicle plate is required")
		}
		if _, dup := seen[plate]; dup {
			return dErrors.Newf(dErrors.CodeValidation, "duplicate plate %s in fleet", plate)
		}
		seen[plate] = struct{}{}
	}
	return nil
}

// ResidentLinkable reports whether the person may be referenced in a house's
// residents set.
func ResidentLinkable(p Person) bool {
	return p.Type == PersonTypeResident
}

// AuthorizedLinkable reports whether the person may be referenced in a
// house's authorized set.
func AuthorizedLinkable(p Person) bool {
	return p.Type == PersonTypeAuthorized
}

// ValidateHouseDelete rejects deletion while any person still references the
// house.
func ValidateHouseDelete(h House) error {
	if h.HasDependents() {
		return dErrors.New(dErrors.CodeValidation, "house has dependents")
	}
	return nil
}

// VehiclePlateUnique reports whether plate (case-normalized) is free within
// the person's fleet, ignoring the vehicle identified by excludeVehicleID so
// edits can keep their own plate.
func VehiclePlateUnique(p Person, plate string, excludeVehicleID string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(plate))
	for _, v := range p.Vehicles {
		if v.ID == excludeVehicleID {
			continue
		}
		if strings.ToUpper(v.Plate) == normalized {
			return false
		}
	}
	return true
}
