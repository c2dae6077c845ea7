package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"condogate/internal/domain"
)

func TestInMemoryPersonStore(t *testing.T) {
	ctx := context.Background()

	t.Run("FindByID for missing id returns ErrNotFound", func(t *testing.T) {
		store := NewInMemoryPersonStore()
		_, err := store.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("List preserves insertion order across updates", func(t *testing.T) {
		store := NewInMemoryPersonStore()
		for _, id := range []string{"person-3", "person-1", "person-2"} {
			require.NoError(t, store.Save(ctx, domain.Person{ID: id, Name: "Someone"}))
		}
		// Re-saving must not move the record to the back.
		require.NoError(t, store.Save(ctx, domain.Person{ID: "person-3", Name: "Renamed"}))

		people, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, people, 3)
		assert.Equal(t, "person-3", people[0].ID)
		assert.Equal(t, "Renamed", people[0].Name)
		assert.Equal(t, "person-1", people[1].ID)
		assert.Equal(t, "person-2", people[2].ID)
	})

	t.Run("stored record is isolated from caller mutations", func(t *testing.T) {
		store := NewInMemoryPersonStore()
		person := domain.Person{ID: "person-1", Name: "Carlos Silva", Vehicles: []domain.Vehicle{
			{ID: "vehicle-1", Plate: "ABC-1234", Model: "Honda Civic"},
		}}
		require.NoError(t, store.Save(ctx, person))

		person.Vehicles[0].Plate = "HACKED"

		stored, err := store.FindByID(ctx, "person-1")
		require.NoError(t, err)
		assert.Equal(t, "ABC-1234", stored.Vehicles[0].Plate)

		stored.Vehicles[0].Plate = "ALSO-HACKED"
		again, err := store.FindByID(ctx, "person-1")
		require.NoError(t, err)
		assert.Equal(t, "ABC-1234", again.Vehicles[0].Plate)
	})

	t.Run("Delete removes the record and its order slot", func(t *testing.T) {
		store := NewInMemoryPersonStore()
		require.NoError(t, store.Save(ctx, domain.Person{ID: "person-1"}))
		require.NoError(t, store.Save(ctx, domain.Person{ID: "person-2"}))

		require.NoError(t, store.Delete(ctx, "person-1"))
		assert.ErrorIs(t, store.Delete(ctx, "person-1"), ErrNotFound)

		people, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "person-2", people[0].ID)
	})
}

func TestInMemoryHouseStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryHouseStore()

	house := domain.House{ID: "house-1", StreetType: "Rua", StreetName: "das Flores", Number: "10",
		Residents: []string{"person-1"}}
	require.NoError(t, store.Save(ctx, house))

	house.Residents[0] = "tampered"
	stored, err := store.FindByID(ctx, "house-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"person-1"}, stored.Residents)

	_, err = store.FindByID(ctx, "house-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryUserStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryUserStore()

	user := domain.User{ID: "user-1", NationalID: "123.456.789-00", Name: "João Porteiro", Role: domain.RoleGatekeeper}
	require.NoError(t, store.Save(ctx, user))

	byNationalID, err := store.FindByNationalID(ctx, "123.456.789-00")
	require.NoError(t, err)
	assert.Equal(t, "user-1", byNationalID.ID)

	_, err = store.FindByNationalID(ctx, "000.000.000-00")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryAccessEventStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Append keeps most recent first", func(t *testing.T) {
		store := NewInMemoryAccessEventStore()
		require.NoError(t, store.Append(ctx, domain.AccessEvent{ID: "event-1"}))
		require.NoError(t, store.Append(ctx, domain.AccessEvent{ID: "event-2"}))

		events, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "event-2", events[0].ID)
		assert.Equal(t, "event-1", events[1].ID)
	})

	t.Run("List hands out a copy of the ledger", func(t *testing.T) {
		store := NewInMemoryAccessEventStore()
		require.NoError(t, store.Append(ctx, domain.AccessEvent{ID: "event-1", PersonName: "Carlos Silva"}))

		events, err := store.List(ctx)
		require.NoError(t, err)
		events[0].PersonName = "tampered"

		again, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Carlos Silva", again[0].PersonName)
	})

	t.Run("concurrent appends are all retained", func(t *testing.T) {
		store := NewInMemoryAccessEventStore()

		const goroutines = 50
		const appendsPerGoroutine = 10

		var wg sync.WaitGroup
		wg.Add(goroutines)
		for g := 0; g < goroutines; g++ {
			go func(g int) {
				defer wg.Done()
				for i := 0; i < appendsPerGoroutine; i++ {
					_ = store.Append(ctx, domain.AccessEvent{ID: fmt.Sprintf("event-%d-%d", g, i)})
				}
			}(g)
		}
		wg.Wait()

		events, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, events, goroutines*appendsPerGoroutine)
	})
}

func TestInMemoryNoticeStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryNoticeStore()

	notice := domain.Notice{ID: "notice-1", Title: "Manutenção", ViewedBy: []string{"user-1"}}
	require.NoError(t, store.Save(ctx, notice))

	notice.ViewedBy[0] = "tampered"
	stored, err := store.FindByID(ctx, "notice-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, stored.ViewedBy)
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	users := NewInMemoryUserStore()
	houses := NewInMemoryHouseStore()
	people := NewInMemoryPersonStore()

	require.NoError(t, SeedDemoData(ctx, users, houses, people))

	gatekeeper, err := users.FindByNationalID(ctx, "123.456.789-00")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGatekeeper, gatekeeper.Role)
	assert.NotEmpty(t, gatekeeper.PasswordHash)

	admin, err := users.FindByNationalID(ctx, "987.654.321-00")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdministrator, admin.Role)

	allHouses, err := houses.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, allHouses)
	assert.Equal(t, "Rua das Flores, 10", allHouses[0].Address())

	allPeople, err := people.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, allPeople)
	assert.Equal(t, "Carlos Silva", allPeople[0].Name)

	// Every seeded person must resolve to an existing house.
	for _, person := range allPeople {
		_, err := houses.FindByID(ctx, person.HouseID)
		assert.NoError(t, err, "person %s points at a missing house", person.ID)
	}
}
