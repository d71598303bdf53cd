package orderrepo

import (
	"context"
	"errors"

	"tripmanager/internal/adapters/out/postgres/destinationrepo"
	"tripmanager/internal/adapters/out/postgres/userrepo"
	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/order"
	"tripmanager/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"owner_id":       dto.OwnerID,
		"destination_id": dto.DestinationID,
		"departure_date": dto.DepartureDate,
		"return_date":    dto.ReturnDate,
		"approved_at":    dto.ApprovedAt,
		"status":         dto.Status,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its owner and destination resolved.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	var ownerDTO userrepo.UserDTO
	if err := r.db.WithContext(ctx).First(&ownerDTO, "id = ?", dto.OwnerID).Error; err != nil {
		return nil, err
	}

	var destDTO destinationrepo.DestinationDTO
	if err := r.db.WithContext(ctx).First(&destDTO, "id = ?", dto.DestinationID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, ownerDTO, destDTO)
}

// FindAll retrieves every order matching the filter, ordered by ID ascending.
// The date bounds are inclusive overlap filters: the start bound admits an
// order whose departure or return falls on or after it, the end bound admits
// an order whose return or departure falls on or before it.
func (r *GormOrderRepository) FindAll(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Model(&OrderDTO{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.StartDate != nil {
		query = query.Where("departure_date >= ? OR return_date >= ?", *filter.StartDate, *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("return_date <= ? OR departure_date <= ?", *filter.EndDate, *filter.EndDate)
	}
	if filter.DestinationID != nil {
		query = query.Where("destination_id = ?", filter.DestinationID.Bytes())
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", filter.OwnerID.Bytes())
	}

	var dtos []OrderDTO
	if err := query.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	owners, err := r.loadOwners(ctx, dtos)
	if err != nil {
		return nil, err
	}

	dests, err := r.loadDestinations(ctx, dtos)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto, owners[dto.OwnerID], dests[dto.DestinationID])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) loadOwners(ctx context.Context, dtos []OrderDTO) (map[uuid.UUID]userrepo.UserDTO, error) {
	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.OwnerID)
	}

	owners := make(map[uuid.UUID]userrepo.UserDTO, len(ids))
	if len(ids) == 0 {
		return owners, nil
	}

	var ownerDTOs []userrepo.UserDTO
	if err := r.db.WithContext(ctx).Find(&ownerDTOs, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	for _, ownerDTO := range ownerDTOs {
		owners[ownerDTO.ID] = ownerDTO
	}
	return owners, nil
}

func (r *GormOrderRepository) loadDestinations(ctx context.Context, dtos []OrderDTO) (map[uuid.UUID]destinationrepo.DestinationDTO, error) {
	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.DestinationID)
	}

	dests := make(map[uuid.UUID]destinationrepo.DestinationDTO, len(ids))
	if len(ids) == 0 {
		return dests, nil
	}

	var destDTOs []destinationrepo.DestinationDTO
	if err := r.db.WithContext(ctx).Find(&destDTOs, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	for _, destDTO := range destDTOs {
		dests[destDTO.ID] = destDTO
	}
	return dests, nil
}
