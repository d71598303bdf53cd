package destinationrepo

import (
	"context"
	"errors"

	"tripmanager/internal/core/domain/model/destination"
	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDestinationRepository implements DestinationRepository using GORM.
type GormDestinationRepository struct {
	db *gorm.DB
}

// NewGormDestinationRepository creates a new GORM destination repository.
func NewGormDestinationRepository(db *gorm.DB) *GormDestinationRepository {
	return &GormDestinationRepository{db: db}
}

// Get retrieves a destination by ID.
func (r *GormDestinationRepository) Get(ctx context.Context, id kernel.UUID) (*destination.Destination, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DestinationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("destination", id.String())
		}
		return nil, err
	}

	return dto.ToDomain()
}

// GetAll retrieves the whole destination catalog sorted by city.
func (r *GormDestinationRepository) GetAll(ctx context.Context) ([]*destination.Destination, error) {
	var dtos []DestinationDTO
	if err := r.db.WithContext(ctx).Order("city").Find(&dtos).Error; err != nil {
		return nil, err
	}

	destinations := make([]*destination.Destination, 0, len(dtos))
	for _, dto := range dtos {
		d, err := dto.ToDomain()
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}

	return destinations, nil
}
