package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"condogate/internal/domain"
)

// PostgresAccessEventStore persists the ledger in PostgreSQL for deployments
// where the process-local memory store is not enough. The table is
// insert-only; no UPDATE or DELETE statement exists anywhere in this store,
// which preserves the append-only audit guarantee under concurrent operator
// sessions.
type PostgresAccessEventStore struct {
	db *sql.DB
}

func NewPostgresAccessEventStore(db *sql.DB) *PostgresAccessEventStore {
	return &PostgresAccessEventStore{db: db}
}

const accessEventsSchema = `
CREATE TABLE IF NOT EXISTS access_events (
	id            TEXT PRIMARY KEY,
	person_id     TEXT NOT NULL,
	person_name   TEXT NOT NULL,
	vehicle_id    TEXT,
	vehicle_plate TEXT,
	direction     TEXT NOT NULL,
	occurred_at   TIMESTAMPTZ NOT NULL,
	house_id      TEXT NOT NULL,
	house_address TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS access_events_occurred_at_idx ON access_events (occurred_at DESC);
`

// EnsureSchema creates the access_events table when it does not exist yet.
func (s *PostgresAccessEventStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, accessEventsSchema); err != nil {
		return fmt.Errorf("ensure access_events schema: %w", err)
	}
	return nil
}

func (s *PostgresAccessEventStore) Append(ctx context.Context, event domain.AccessEvent) error {
	const query = `
		INSERT INTO access_events
			(id, person_id, person_name, vehicle_id, vehicle_plate, direction, occurred_at, house_id, house_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.PersonID,
		event.PersonName,
		nullable(event.VehicleID),
		nullable(event.VehiclePlate),
		string(event.Direction),
		event.Timestamp,
		event.HouseID,
		event.HouseAddress,
	)
	if err != nil {
		return fmt.Errorf("append access event: %w", err)
	}
	return nil
}

func (s *PostgresAccessEventStore) List(ctx context.Context) ([]domain.AccessEvent, error) {
	const query = `
		SELECT id, person_id, person_name, vehicle_id, vehicle_plate, direction, occurred_at, house_id, house_address
		FROM access_events
		ORDER BY occurred_at DESC, id DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list access events: %w", err)
	}
	defer rows.Close()

	var events []domain.AccessEvent
	for rows.Next() {
		var (
			event        domain.AccessEvent
			vehicleID    sql.NullString
			vehiclePlate sql.NullString
			direction    string
			occurredAt   time.Time
		)
		if err := rows.Scan(
			&event.ID,
			&event.PersonID,
			&event.PersonName,
			&vehicleID,
			&vehiclePlate,
			&direction,
			&occurredAt,
			&event.HouseID,
			&event.HouseAddress,
		); err != nil {
			return nil, fmt.Errorf("scan access event: %w", err)
		}
		event.VehicleID = vehicleID.String
		event.VehiclePlate = vehiclePlate.String
		event.Direction = domain.Direction(direction)
		event.Timestamp = occurredAt
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate access events: %w", err)
	}
	return events, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
