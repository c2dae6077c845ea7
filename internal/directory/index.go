// Package directory flattens the person collection into the searchable entry
// list used to resolve registration targets: one entry per person and one per
// vehicle, so gatekeepers can look up either a name or a plate.
package directory

import (
	"context"
	"fmt"
	"strings"

	"condogate/internal/domain"
	"condogate/internal/storage"
)

type EntryKind string

const (
	KindPerson  EntryKind = "person"
	KindVehicle EntryKind = "vehicle"
)

// Entry is one selectable row of the index. Selecting a vehicle entry commits
// to that vehicle for the registration; selecting a person entry leaves the
// vehicle choice to a secondary step.
type Entry struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Kind      EntryKind `json:"kind"`
	PersonID  string    `json:"person_id"`
	VehicleID string    `json:"vehicle_id,omitempty"`
}

// BuildIndex is pure and deterministic: people in input order, each person's
// vehicles in their stored order immediately after the person entry.
func BuildIndex(people []domain.Person) []Entry {
	entries := make([]Entry, 0, len(people))
	for _, person := range people {
		entries = append(entries, Entry{
			ID:       "person-" + person.ID,
			Label:    person.Name,
			Kind:     KindPerson,
			PersonID: person.ID,
		})
		for _, vehicle := range person.Vehicles {
			entries = append(entries, Entry{
				ID:        "vehicle-" + vehicle.ID,
				Label:     fmt.Sprintf("%s - %s", vehicle.Plate, person.Name),
				Kind:      KindVehicle,
				PersonID:  person.ID,
				VehicleID: vehicle.ID,
			})
		}
	}
	return entries
}

// Filter keeps entries whose label contains the query, case-insensitively.
// An empty query keeps everything.
func Filter(entries []Entry, query string) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}
	matched := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Label), query) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// Service exposes the index over the person store for the search endpoint.
type Service struct {
	people storage.PersonStore
}

func NewService(people storage.PersonStore) *Service {
	return &Service{people: people}
}

func (s *Service) Search(ctx context.Context, query string) ([]Entry, error) {
	people, err := s.people.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(BuildIndex(people), query), nil
}
