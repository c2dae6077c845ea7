package storage

import (
	"context"
	"sync"

	"condogate/internal/domain"
)

// In-memory stores are the default backend. They favor clarity over
// performance and guard their state with RWMutex so concurrent operator
// sessions stay safe. Insertion order is preserved because the directory
// index depends on a deterministic listing order.

type InMemoryPersonStore struct {
	mu     sync.RWMutex
	people map[string]domain.Person
	order  []string
}

func NewInMemoryPersonStore() *InMemoryPersonStore {
	return &InMemoryPersonStore{people: make(map[string]domain.Person)}
}

func (s *InMemoryPersonStore) Save(_ context.Context, person domain.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.people[person.ID]; !exists {
		s.order = append(s.order, person.ID)
	}
	s.people[person.ID] = clonePerson(person)
	return nil
}

func (s *InMemoryPersonStore) FindByID(_ context.Context, id string) (domain.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if person, ok := s.people[id]; ok {
		return clonePerson(person), nil
	}
	return domain.Person{}, ErrNotFound
}

func (s *InMemoryPersonStore) List(_ context.Context) ([]domain.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	people := make([]domain.Person, 0, len(s.order))
	for _, id := range s.order {
		people = append(people, clonePerson(s.people[id]))
	}
	return people, nil
}

func (s *InMemoryPersonStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.people[id]; !ok {
		return ErrNotFound
	}
	delete(s.people, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type InMemoryHouseStore struct {
	mu     sync.RWMutex
	houses map[string]domain.House
	order  []string
}

func NewInMemoryHouseStore() *InMemoryHouseStore {
	return &InMemoryHouseStore{houses: make(map[string]domain.House)}
}

func (s *InMemoryHouseStore) Save(_ context.Context, house domain.House) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.houses[house.ID]; !exists {
		s.order = append(s.order, house.ID)
	}
	s.houses[house.ID] = cloneHouse(house)
	return nil
}

func (s *InMemoryHouseStore) FindByID(_ context.Context, id string) (domain.House, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if house, ok := s.houses[id]; ok {
		return cloneHouse(house), nil
	}
	return domain.House{}, ErrNotFound
}

func (s *InMemoryHouseStore) List(_ context.Context) ([]domain.House, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	houses := make([]domain.House, 0, len(s.order))
	for _, id := range s.order {
		houses = append(houses, cloneHouse(s.houses[id]))
	}
	return houses, nil
}

func (s *InMemoryHouseStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.houses[id]; !ok {
		return ErrNotFound
	}
	delete(s.houses, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[string]domain.User)}
}

func (s *InMemoryUserStore) Save(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return domain.User{}, ErrNotFound
}

func (s *InMemoryUserStore) FindByNationalID(_ context.Context, nationalID string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.NationalID == nationalID {
			return user, nil
		}
	}
	return domain.User{}, ErrNotFound
}

// InMemoryAccessEventStore keeps the ledger most-recent-first. Append is the
// only mutation; List hands out copies so callers cannot alter history.
type InMemoryAccessEventStore struct {
	mu     sync.RWMutex
	events []domain.AccessEvent
}

func NewInMemoryAccessEventStore() *InMemoryAccessEventStore {
	return &InMemoryAccessEventStore{}
}

func (s *InMemoryAccessEventStore) Append(_ context.Context, event domain.AccessEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append([]domain.AccessEvent{event}, s.events...)
	return nil
}

func (s *InMemoryAccessEventStore) List(_ context.Context) ([]domain.AccessEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AccessEvent{}, s.events...), nil
}

type InMemoryDeliveryStore struct {
	mu         sync.RWMutex
	deliveries map[string]domain.Delivery
	order      []string
}

func NewInMemoryDeliveryStore() *InMemoryDeliveryStore {
	return &InMemoryDeliveryStore{deliveries: make(map[string]domain.Delivery)}
}

func (s *InMemoryDeliveryStore) Save(_ context.Context, delivery domain.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.deliveries[delivery.ID]; !exists {
		s.order = append(s.order, delivery.ID)
	}
	s.deliveries[delivery.ID] = delivery
	return nil
}

func (s *InMemoryDeliveryStore) FindByID(_ context.Context, id string) (domain.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if delivery, ok := s.deliveries[id]; ok {
		return delivery, nil
	}
	return domain.Delivery{}, ErrNotFound
}

func (s *InMemoryDeliveryStore) List(_ context.Context) ([]domain.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	deliveries := make([]domain.Delivery, 0, len(s.order))
	for _, id := range s.order {
		deliveries = append(deliveries, s.deliveries[id])
	}
	return deliveries, nil
}

type InMemoryNoticeStore struct {
	mu      sync.RWMutex
	notices map[string]domain.Notice
	order   []string
}

func NewInMemoryNoticeStore() *InMemoryNoticeStore {
	return &InMemoryNoticeStore{notices: make(map[string]domain.Notice)}
}

func (s *InMemoryNoticeStore) Save(_ context.Context, notice domain.Notice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.notices[notice.ID]; !exists {
		s.order = append(s.order, notice.ID)
	}
	copied := notice
	copied.ViewedBy = append([]string{}, notice.ViewedBy...)
	s.notices[notice.ID] = copied
	return nil
}

func (s *InMemoryNoticeStore) FindByID(_ context.Context, id string) (domain.Notice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if notice, ok := s.notices[id]; ok {
		copied := notice
		copied.ViewedBy = append([]string{}, notice.ViewedBy...)
		return copied, nil
	}
	return domain.Notice{}, ErrNotFound
}

func (s *InMemoryNoticeStore) List(_ context.Context) ([]domain.Notice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	notices := make([]domain.Notice, 0, len(s.order))
	for _, id := range s.order {
		notice := s.notices[id]
		notice.ViewedBy = append([]string{}, notice.ViewedBy...)
		notices = append(notices, notice)
	}
	return notices, nil
}

type InMemoryOccurrenceStore struct {
	mu          sync.RWMutex
	occurrences map[string]domain.Occurrence
	order       []string
}

func NewInMemoryOccurrenceStore() *InMemoryOccurrenceStore {
	return &InMemoryOccurrenceStore{occurrences: make(map[string]domain.Occurrence)}
}

func (s *InMemoryOccurrenceStore) Save(_ context.Context, occurrence domain.Occurrence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.occurrences[occurrence.ID]; !exists {
		s.order = append(s.order, occurrence.ID)
	}
	s.occurrences[occurrence.ID] = occurrence
	return nil
}

func (s *InMemoryOccurrenceStore) FindByID(_ context.Context, id string) (domain.Occurrence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if occurrence, ok := s.occurrences[id]; ok {
		return occurrence, nil
	}
	return domain.Occurrence{}, ErrNotFound
}

func (s *InMemoryOccurrenceStore) List(_ context.Context) ([]domain.Occurrence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	occurrences := make([]domain.Occurrence, 0, len(s.order))
	for _, id := range s.order {
		occurrences = append(occurrences, s.occurrences[id])
	}
	return occurrences, nil
}

func clonePerson(p domain.Person) domain.Person {
	copied := p
	copied.Vehicles = append([]domain.Vehicle{}, p.Vehicles...)
	if p.Subtype != nil {
		subtype := *p.Subtype
		copied.Subtype = &subtype
	}
	return copied
}

func cloneHouse(h domain.House) domain.House {
	copied := h
	copied.Residents = append([]string{}, h.Residents...)
	copied.Authorized = append([]string{}, h.Authorized...)
	return copied
}
