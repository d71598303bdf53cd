package ports

import (
	"context"

	"tripmanager/internal/core/domain/model/destination"
	"tripmanager/internal/core/domain/model/kernel"
)

// DestinationRepository defines the read contract for the destination catalog.
// The catalog is administered externally and read-only here.
// Absent destinations surface as errs.ObjectNotFoundError.
type DestinationRepository interface {
	// Get retrieves a destination by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*destination.Destination, error)

	// GetAll retrieves the whole destination catalog.
	GetAll(ctx context.Context) ([]*destination.Destination, error)
}
