// Package destinationrepo provides data transfer objects and mapping functions
// for the destination catalog. The catalog is seeded at startup and read-only
// at runtime.
package destinationrepo

import (
	"tripmanager/internal/core/domain/model/destination"
	"tripmanager/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DestinationDTO represents the database structure for persisting destinations.
type DestinationDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	City     string
	IataCode string `gorm:"uniqueIndex"`
	Country  string
}

// TableName specifies the database table name for destination entities.
func (DestinationDTO) TableName() string {
	return "destinations"
}

// ToDomain converts a database DTO to a destination domain entity.
func (dto DestinationDTO) ToDomain() (*destination.Destination, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return destination.NewDestination(id, dto.City, dto.IataCode, dto.Country)
}
