// Package ledger owns the access event lifecycle: registration with
// snapshotting, and the filtered/sorted projections every review screen and
// export consumes. The ledger is append-only; nothing here mutates or removes
// an event once registered.
package ledger

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"condogate/internal/domain"
	"condogate/internal/platform/metrics"
	"condogate/internal/storage"
	dErrors "condogate/pkg/domain-errors"
)

var tracer = otel.Tracer("condogate/internal/ledger")

// Criteria filters a ledger projection. All provided predicates are ANDed.
type Criteria struct {
	// FreeText matches case-insensitively against person name, vehicle
	// plate (upper-normalized), or house address.
	FreeText string
	// Direction restricts to an exact direction; empty or "all" disables
	// the predicate.
	Direction string
	// Date restricts to events on the same calendar day.
	Date *time.Time
}

// Service registers events and serves projections. Person and house data is
// read-only here; the administrative services own those records.
type Service struct {
	events  storage.AccessEventStore
	people  storage.PersonStore
	houses  storage.HouseStore
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(events storage.AccessEventStore, people storage.PersonStore, houses storage.HouseStore, m *metrics.Metrics) *Service {
	return &Service{
		events:  events,
		people:  people,
		houses:  houses,
		metrics: m,
		now:     time.Now,
	}
}

// Register appends one event for the given person, optionally bound to one of
// the person's vehicles. Name, house address, and plate are snapshotted at
// call time so later edits never retroactively change stored events. The
// operation is all-or-nothing: any failure leaves the ledger untouched.
//
// Direction is taken as given. Two consecutive entries (or exits) for the
// same person are accepted silently; operators correct mistakes by
// registering the opposite event.
func (s *Service) Register(ctx context.Context, personID, vehicleID string, direction domain.Direction) (domain.AccessEvent, error) {
	ctx, span := tracer.Start(ctx, "ledger.Register")
	defer span.End()

	if strings.TrimSpace(personID) == "" {
		return domain.AccessEvent{}, dErrors.New(dErrors.CodePrecondition, "select a person first")
	}
	if direction != domain.DirectionEntry && direction != domain.DirectionExit {
		return domain.AccessEvent{}, dErrors.Newf(dErrors.CodeBadRequest, "unknown direction %q", direction)
	}

	person, err := s.people.FindByID(ctx, personID)
	if err != nil {
		return domain.AccessEvent{}, err
	}
	house, err := s.houses.FindByID(ctx, person.HouseID)
	if err != nil {
		return domain.AccessEvent{}, err
	}

	event := domain.AccessEvent{
		ID:           uuid.NewString(),
		PersonID:     person.ID,
		PersonName:   person.Name,
		Direction:    direction,
		Timestamp:    s.now(),
		HouseID:      house.ID,
		HouseAddress: house.Address(),
	}
	if vehicleID != "" {
		vehicle, ok := person.FindVehicle(vehicleID)
		if !ok {
			return domain.AccessEvent{}, dErrors.New(dErrors.CodeBadRequest, "vehicle does not belong to the selected person")
		}
		event.VehicleID = vehicle.ID
		event.VehiclePlate = vehicle.Plate
	}

	if err := s.events.Append(ctx, event); err != nil {
		return domain.AccessEvent{}, err
	}
	span.SetAttributes(attribute.String("access.direction", string(direction)))
	s.metrics.IncrementAccessRegistered(string(direction))
	return event, nil
}

// Today returns the events of now's calendar day, most recent first.
func (s *Service) Today(ctx context.Context, now time.Time) ([]domain.AccessEvent, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	return TodayEvents(events, now), nil
}

// Filter returns the filtered projection described by criteria, most recent
// first. An empty result is not an error.
func (s *Service) Filter(ctx context.Context, criteria Criteria) ([]domain.AccessEvent, error) {
	ctx, span := tracer.Start(ctx, "ledger.Filter")
	defer span.End()

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterEvents(events, criteria), nil
}

// TodayEvents is the pure projection behind Today: restartable, no hidden
// state.
func TodayEvents(events []domain.AccessEvent, now time.Time) []domain.AccessEvent {
	var date = now
	return FilterEvents(events, Criteria{Date: &date})
}

// FilterEvents applies criteria to a snapshot of the ledger and sorts the
// result descending by timestamp. It never modifies its input.
func FilterEvents(events []domain.AccessEvent, criteria Criteria) []domain.AccessEvent {
	freeText := strings.ToLower(strings.TrimSpace(criteria.FreeText))
	direction := strings.TrimSpace(criteria.Direction)
	filterDirection := direction != "" && !strings.EqualFold(direction, "all")

	matched := make([]domain.AccessEvent, 0, len(events))
	for _, event := range events {
		if freeText != "" && !matchesFreeText(event, freeText) {
			continue
		}
		if filterDirection && !strings.EqualFold(string(event.Direction), direction) {
			continue
		}
		if criteria.Date != nil && !event.SameDay(*criteria.Date) {
			continue
		}
		matched = append(matched, event)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	return matched
}

func matchesFreeText(event domain.AccessEvent, query string) bool {
	if strings.Contains(strings.ToLower(event.PersonName), query) {
		return true
	}
	if event.VehiclePlate != "" &&
		strings.Contains(strings.ToUpper(event.VehiclePlate), strings.ToUpper(query)) {
		return true
	}
	return strings.Contains(strings.ToLower(event.HouseAddress), query)
}
