// Package admin owns the write side of people, houses, and vehicles. The
// access core only reads these records; every mutation here re-checks the
// domain invariants and keeps house membership sets consistent with each
// person's type.
package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"condogate/internal/domain"
	"condogate/internal/storage"
	dErrors "condogate/pkg/domain-errors"
)

type VehicleInput struct {
	Plate string `json:"plate"`
	Model string `json:"model"`
}

type PersonInput struct {
	Name       string         `json:"name"`
	NationalID string         `json:"national_id"`
	Type       string         `json:"type"`
	Subtype    string         `json:"subtype"`
	HouseID    string         `json:"house_id"`
	Vehicles   []VehicleInput `json:"vehicles"`
}

type HouseInput struct {
	StreetType string `json:"street_type"`
	StreetName string `json:"street_name"`
	Number     string `json:"number"`
}

type Service struct {
	people storage.PersonStore
	houses storage.HouseStore
	now    func() time.Time
}

func NewService(people storage.PersonStore, houses storage.HouseStore) *Service {
	return &Service{people: people, houses: houses, now: time.Now}
}

// CreatePerson validates and persists a new person with their fleet, then
// links them into the owning house's membership set.
func (s *Service) CreatePerson(ctx context.Context, input PersonInput) (domain.Person, error) {
	person, err := s.buildPerson(uuid.NewString(), input)
	if err != nil {
		return domain.Person{}, err
	}
	person.CreatedAt = s.now()

	if _, err := s.houses.FindByID(ctx, person.HouseID); err != nil {
		return domain.Person{}, dErrors.New(dErrors.CodeBadRequest, "unknown house")
	}
	if err := s.people.Save(ctx, person); err != nil {
		return domain.Person{}, err
	}
	if err := s.syncHouseMembership(ctx, person); err != nil {
		return domain.Person{}, err
	}
	return person, nil
}

// UpdatePerson replaces a person's editable fields. Moving between houses or
// changing type updates the affected membership sets.
func (s *Service) UpdatePerson(ctx context.Context, id string, input PersonInput) (domain.Person, error) {
	existing, err := s.people.FindByID(ctx, id)
	if err != nil {
		return domain.Person{}, err
	}
	person, err := s.buildPerson(id, input)
	if err != nil {
		return domain.Person{}, err
	}
	person.CreatedAt = existing.CreatedAt

	if _, err := s.houses.FindByID(ctx, person.HouseID); err != nil {
		return domain.Person{}, dErrors.New(dErrors.CodeBadRequest, "unknown house")
	}
	if existing.HouseID != person.HouseID {
		if err := s.unlinkFromHouse(ctx, existing.HouseID, id); err != nil {
			return domain.Person{}, err
		}
	}
	if err := s.people.Save(ctx, person); err != nil {
		return domain.Person{}, err
	}
	if err := s.syncHouseMembership(ctx, person); err != nil {
		return domain.Person{}, err
	}
	return person, nil
}

// DeletePerson removes the person, their house references, and their fleet.
// Vehicles are deleted with their owner; orphaned vehicles are disallowed.
func (s *Service) DeletePerson(ctx context.Context, id string) error {
	person, err := s.people.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.unlinkFromHouse(ctx, person.HouseID, id); err != nil {
		return err
	}
	return s.people.Delete(ctx, id)
}

func (s *Service) CreateHouse(ctx context.Context, input HouseInput) (domain.House, error) {
	if err := validateHouseInput(input); err != nil {
		return domain.House{}, err
	}
	house := domain.House{
		ID:         uuid.NewString(),
		StreetType: strings.TrimSpace(input.StreetType),
		StreetName: strings.TrimSpace(input.StreetName),
		Number:     strings.TrimSpace(input.Number),
		CreatedAt:  s.now(),
	}
	if err := s.houses.Save(ctx, house); err != nil {
		return domain.House{}, err
	}
	return house, nil
}

// UpdateHouse edits the street descriptor only; membership sets are owned by
// the person operations.
func (s *Service) UpdateHouse(ctx context.Context, id string, input HouseInput) (domain.House, error) {
	house, err := s.houses.FindByID(ctx, id)
	if err != nil {
		return domain.House{}, err
	}
	if err := validateHouseInput(input); err != nil {
		return domain.House{}, err
	}
	house.StreetType = strings.TrimSpace(input.StreetType)
	house.StreetName = strings.TrimSpace(input.StreetName)
	house.Number = strings.TrimSpace(input.Number)
	if err := s.houses.Save(ctx, house); err != nil {
		return domain.House{}, err
	}
	return house, nil
}

// DeleteHouse fails while any resident or authorized person still references
// the house.
func (s *Service) DeleteHouse(ctx context.Context, id string) error {
	house, err := s.houses.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.ValidateHouseDelete(house); err != nil {
		return err
	}
	return s.houses.Delete(ctx, id)
}

func (s *Service) ListPeople(ctx context.Context) ([]domain.Person, error) {
	return s.people.List(ctx)
}

func (s *Service) ListHouses(ctx context.Context) ([]domain.House, error) {
	return s.houses.List(ctx)
}

func (s *Service) buildPerson(id string, input PersonInput) (domain.Person, error) {
	person := domain.Person{
		ID:         id,
		Name:       strings.TrimSpace(input.Name),
		NationalID: strings.TrimSpace(input.NationalID),
		Type:       domain.PersonType(input.Type),
		HouseID:    strings.TrimSpace(input.HouseID),
	}
	if input.Subtype != "" {
		subtype := domain.PersonSubtype(input.Subtype)
		person.Subtype = &subtype
	}
	if person.HouseID == "" {
		return domain.Person{}, dErrors.New(dErrors.CodeValidation, "person must belong to a house")
	}
	for i, v := range input.Vehicles {
		person.Vehicles = append(person.Vehicles, domain.Vehicle{
			ID:       fmt.Sprintf("%s-vehicle-%d", id, i+1),
			Plate:    strings.ToUpper(strings.TrimSpace(v.Plate)),
			Model:    strings.TrimSpace(v.Model),
			PersonID: id,
		})
	}
	if err := domain.ValidatePerson(person); err != nil {
		return domain.Person{}, err
	}
	return person, nil
}

// syncHouseMembership places the person id in the house set matching their
// type and removes it from the other one.
func (s *Service) syncHouseMembership(ctx context.Context, person domain.Person) error {
	house, err := s.houses.FindByID(ctx, person.HouseID)
	if err != nil {
		return err
	}
	house.Residents = remove(house.Residents, person.ID)
	house.Authorized = remove(house.Authorized, person.ID)
	if domain.ResidentLinkable(person) {
		house.Residents = append(house.Residents, person.ID)
	} else {
		house.Authorized = append(house.Authorized, person.ID)
	}
	return s.houses.Save(ctx, house)
}

func (s *Service) unlinkFromHouse(ctx context.Context, houseID, personID string) error {
	house, err := s.houses.FindByID(ctx, houseID)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return nil
		}
		return err
	}
	house.Residents = remove(house.Residents, personID)
	house.Authorized = remove(house.Authorized, personID)
	return s.houses.Save(ctx, house)
}

func remove(ids []string, id string) []string {
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return kept
}

func validateHouseInput(input HouseInput) error {
	if strings.TrimSpace(input.StreetType) == "" ||
		strings.TrimSpace(input.StreetName) == "" ||
		strings.TrimSpace(input.Number) == "" {
		return dErrors.New(dErrors.CodeValidation, "street type, name, and number are required")
	}
	return nil
}
