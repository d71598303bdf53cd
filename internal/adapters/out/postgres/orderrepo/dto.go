// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"tripmanager/internal/adapters/out/postgres/destinationrepo"
	"tripmanager/internal/adapters/out/postgres/userrepo"
	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Owner and destination are stored as foreign keys and resolved into full
// entities when the aggregate is loaded. Status is stored as its wire string
// so the rows read naturally in SQL.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	DestinationID uuid.UUID `gorm:"type:uuid;index"`
	DepartureDate time.Time
	ReturnDate    time.Time
	ApprovedAt    *time.Time
	Status        string `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		DestinationID: aggregate.DestinationID().Bytes(),
		DepartureDate: aggregate.DepartureDate(),
		ReturnDate:    aggregate.ReturnDate(),
		ApprovedAt:    aggregate.ApprovedAt(),
		Status:        aggregate.Status().String(),
	}
}

// toDomain converts a database DTO plus its resolved references to an order
// domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO, ownerDTO userrepo.UserDTO, destDTO destinationrepo.DestinationDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	owner, err := ownerDTO.ToDomain()
	if err != nil {
		return nil, err
	}

	dest, err := destDTO.ToDomain()
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		owner,
		dest,
		dto.DepartureDate,
		dto.ReturnDate,
		dto.ApprovedAt,
		status,
	)
}
