package ports

import (
	"context"

	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/user"
)

// UserRepository defines the read contract for users.
// Users are created by the identity provider, never by this core, so there is
// no write side. Absent users surface as errs.ObjectNotFoundError.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
