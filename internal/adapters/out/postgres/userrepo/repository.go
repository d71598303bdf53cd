package userrepo

import (
	"context"
	"errors"

	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/user"
	"tripmanager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return dto.ToDomain()
}
