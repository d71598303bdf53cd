package postgres

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tripmanager/internal/adapters/out/postgres/destinationrepo"
	"tripmanager/internal/adapters/out/postgres/orderrepo"
	"tripmanager/internal/adapters/out/postgres/userrepo"
)

// Migrate creates or updates the database schema for all persisted aggregates.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&destinationrepo.DestinationDTO{},
		&orderrepo.OrderDTO{},
	)
}

// Seed populates an empty database with the destination catalog and one user
// per role. Running it twice is a no-op: existing rows are matched by their
// unique columns and left alone.
func Seed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}

	return seedDestinations(db)
}

type seedUser struct {
	name     string
	email    string
	password string
	role     string
}

func seedUsers(db *gorm.DB) error {
	users := []seedUser{
		{name: "Default Manager", email: "manager@tripmanager.local", password: "manager-password", role: "MANAGER"},
		{name: "Default Solicitor", email: "solicitor@tripmanager.local", password: "solicitor-password", role: "SOLICITOR"},
	}

	for _, u := range users {
		var count int64
		if err := db.Model(&userrepo.UserDTO{}).Where("email = ?", u.email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		dto := userrepo.UserDTO{
			ID:           uuid.New(),
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
		}
		if err := db.Create(&dto).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedDestinations(db *gorm.DB) error {
	catalog := []destinationrepo.DestinationDTO{
		{City: "Lisbon", IataCode: "LIS", Country: "Portugal"},
		{City: "Sao Paulo", IataCode: "GRU", Country: "Brazil"},
		{City: "New York", IataCode: "JFK", Country: "United States"},
		{City: "London", IataCode: "LHR", Country: "United Kingdom"},
		{City: "Tokyo", IataCode: "HND", Country: "Japan"},
		{City: "Buenos Aires", IataCode: "EZE", Country: "Argentina"},
	}

	for _, entry := range catalog {
		var count int64
		if err := db.Model(&destinationrepo.DestinationDTO{}).
			Where("iata_code = ?", entry.IataCode).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		entry.ID = uuid.New()
		if err := db.Create(&entry).Error; err != nil {
			return err
		}
	}

	return nil
}
