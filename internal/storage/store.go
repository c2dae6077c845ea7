package storage

import (
	"context"

	"condogate/internal/domain"
)

// Stores are interface-driven to keep the domain logic testable and to allow
// swapping in-memory, Postgres, or external persistence without rewiring
// business code. The access core only reads person/house/vehicle records;
// writes come from the administrative services.

type PersonStore interface {
	Save(ctx context.Context, person domain.Person) error
	FindByID(ctx context.Context, id string) (domain.Person, error)
	List(ctx context.Context) ([]domain.Person, error)
	Delete(ctx context.Context, id string) error
}

type HouseStore interface {
	Save(ctx context.Context, house domain.House) error
	FindByID(ctx context.Context, id string) (domain.House, error)
	List(ctx context.Context) ([]domain.House, error)
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	Save(ctx context.Context, user domain.User) error
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByNationalID(ctx context.Context, nationalID string) (domain.User, error)
}

// AccessEventStore persists access registrations as an append-only audit log.
// There is deliberately no update or delete: once registered, an event is
// permanent.
type AccessEventStore interface {
	Append(ctx context.Context, event domain.AccessEvent) error
	// List returns all events most-recent-first.
	List(ctx context.Context) ([]domain.AccessEvent, error)
}

type DeliveryStore interface {
	Save(ctx context.Context, delivery domain.Delivery) error
	FindByID(ctx context.Context, id string) (domain.Delivery, error)
	List(ctx context.Context) ([]domain.Delivery, error)
}

type NoticeStore interface {
	Save(ctx context.Context, notice domain.Notice) error
	FindByID(ctx context.Context, id string) (domain.Notice, error)
	List(ctx context.Context) ([]domain.Notice, error)
}

type OccurrenceStore interface {
	Save(ctx context.Context, occurrence domain.Occurrence) error
	FindByID(ctx context.Context, id string) (domain.Occurrence, error)
	List(ctx context.Context) ([]domain.Occurrence, error)
}
