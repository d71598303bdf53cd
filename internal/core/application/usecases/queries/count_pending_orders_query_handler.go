package queries

import (
	"context"

	"tripmanager/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CountPendingOrdersQueryHandler counts orders in the requested status
// straight from the database.
type CountPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountPendingOrdersQueryHandler creates a handler for pending order counts.
// Requires a GORM database connection for query execution.
func NewCountPendingOrdersQueryHandler(db *gorm.DB) CountPendingOrdersQueryHandler {
	return CountPendingOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the number of orders still awaiting
// a manager decision.
func (h CountPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountPendingOrdersQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE status = ?
	`, order.Requested.String()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
