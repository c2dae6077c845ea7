package storage

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"condogate/internal/domain"
)

// SeedDemoData loads a small demo condominium so a fresh instance is usable
// immediately: two operator accounts, four houses, and a handful of residents
// and authorized people with their vehicles. Enabled by config, off by
// default.
func SeedDemoData(ctx context.Context, users UserStore, houses HouseStore, people PersonStore) error {
	gatekeeperHash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash gatekeeper password: %w", err)
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	seedUsers := []domain.User{
		{ID: "user-1", NationalID: "123.456.789-00", Name: "João Porteiro", Role: domain.RoleGatekeeper, PasswordHash: string(gatekeeperHash)},
		{ID: "user-2", NationalID: "987.654.321-00", Name: "Maria Admin", Role: domain.RoleAdministrator, PasswordHash: string(adminHash)},
	}
	for _, user := range seedUsers {
		if err := users.Save(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", user.ID, err)
		}
	}

	seedHouses := []domain.House{
		{ID: "house-1", StreetType: "Rua", StreetName: "das Flores", Number: "10", Residents: []string{"person-1", "person-2"}, Authorized: []string{"person-3"}, CreatedAt: date(2024, 1, 15)},
		{ID: "house-2", StreetType: "Avenida", StreetName: "Principal", Number: "25", Residents: []string{"person-4"}, Authorized: []string{"person-5", "person-6"}, CreatedAt: date(2024, 1, 20)},
		{ID: "house-3", StreetType: "Rua", StreetName: "dos Ipês", Number: "42", Residents: []string{"person-7", "person-8"}, CreatedAt: date(2024, 2, 1)},
		{ID: "house-4", StreetType: "Rua", StreetName: "das Acácias", Number: "15", Residents: []string{"person-9"}, Authorized: []string{"person-10"}, CreatedAt: date(2024, 2, 10)},
	}
	for _, house := range seedHouses {
		if err := houses.Save(ctx, house); err != nil {
			return fmt.Errorf("seed house %s: %w", house.ID, err)
		}
	}

	employee := domain.SubtypeEmployee
	visitor := domain.SubtypeVisitor
	seedPeople := []domain.Person{
		{ID: "person-1", Name: "Carlos Silva", NationalID: "111.222.333-44", Type: domain.PersonTypeResident, HouseID: "house-1",
			Vehicles: []domain.Vehicle{{ID: "vehicle-1", Plate: "ABC-1234", Model: "Honda Civic", PersonID: "person-1"}}, CreatedAt: date(2024, 1, 15)},
		{ID: "person-2", Name: "Ana Santos", NationalID: "555.666.777-88", Type: domain.PersonTypeResident, HouseID: "house-1",
			Vehicles: []domain.Vehicle{{ID: "vehicle-2", Plate: "DEF-5678", Model: "Toyota Corolla", PersonID: "person-2"}}, CreatedAt: date(2024, 1, 15)},
		{ID: "person-3", Name: "José da Limpeza", NationalID: "999.888.777-66", Type: domain.PersonTypeAuthorized, Subtype: &employee, HouseID: "house-1",
			Vehicles: []domain.Vehicle{{ID: "vehicle-6", Plate: "PQR-1357", Model: "Fiat Uno", PersonID: "person-3"}}, CreatedAt: date(2024, 1, 20)},
		{ID: "person-4", Name: "Roberto Oliveira", NationalID: "444.333.222-11", Type: domain.PersonTypeResident, HouseID: "house-2",
			Vehicles: []domain.Vehicle{{ID: "vehicle-3", Plate: "GHI-9012", Model: "Volkswagen Gol", PersonID: "person-4"}}, CreatedAt: date(2024, 1, 20)},
		{ID: "person-5", Name: "Fernanda Lima", NationalID: "777.555.333-99", Type: domain.PersonTypeAuthorized, Subtype: &visitor, HouseID: "house-2",
			Vehicles: []domain.Vehicle{{ID: "vehicle-4", Plate: "JKL-3456", Model: "Ford Ka", PersonID: "person-5"}}, CreatedAt: date(2024, 1, 25)},
		{ID: "person-6", Name: "Pedro Jardineiro", NationalID: "222.444.666-88", Type: domain.PersonTypeAuthorized, Subtype: &employee, HouseID: "house-2", CreatedAt: date(2024, 2, 1)},
		{ID: "person-7", Name: "Lucia Costa", NationalID: "888.999.111-22", Type: domain.PersonTypeResident, HouseID: "house-3",
			Vehicles: []domain.Vehicle{{ID: "vehicle-5", Plate: "MNO-7890", Model: "Chevrolet Onix", PersonID: "person-7"}}, CreatedAt: date(2024, 2, 1)},
		{ID: "person-8", Name: "Miguel Costa", NationalID: "333.111.999-77", Type: domain.PersonTypeResident, HouseID: "house-3", CreatedAt: date(2024, 2, 1)},
		{ID: "person-9", Name: "Patrícia Souza", NationalID: "666.888.444-55", Type: domain.PersonTypeResident, HouseID: "house-4",
			Vehicles: []domain.Vehicle{{ID: "vehicle-7", Plate: "STU-2468", Model: "Hyundai HB20", PersonID: "person-9"}}, CreatedAt: date(2024, 2, 10)},
		{ID: "person-10", Name: "Bruno Visitante", NationalID: "111.333.555-77", Type: domain.PersonTypeAuthorized, Subtype: &visitor, HouseID: "house-4", CreatedAt: date(2024, 2, 15)},
	}
	for _, person := range seedPeople {
		if err := people.Save(ctx, person); err != nil {
			return fmt.Errorf("seed person %s: %w", person.ID, err)
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
