package ports

import (
	"context"

	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Absent orders surface as errs.ObjectNotFoundError.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// with its owner and destination references resolved.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindAll retrieves every order matching the filter,
	// ordered by identifier ascending.
	FindAll(ctx context.Context, filter order.Filter) ([]*order.Order, error)
}
