package domain

import (
	"fmt"
	"time"
)

// House groups residents and authorized people under one street address. The
// Residents and Authorized sets are disjoint person id sets; membership must
// agree with each person's type (checked by the validation predicates).
type House struct {
	ID         string
	StreetType string
	StreetName string
	Number     string
	Residents  []string
	Authorized []string
	CreatedAt  time.Time
}

// Address renders the canonical address string used for event snapshots,
// e.g. "Rua das Flores, 10".
func (h House) Address() string {
	return fmt.Sprintf("%s %s, %s", h.StreetType, h.StreetName, h.Number)
}

// HasDependents reports whether any person still references the house.
// A house with dependents is not deletable.
func (h House) HasDependents() bool {
	return len(h.Residents) > 0 || len(h.Authorized) > 0
}
