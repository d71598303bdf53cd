package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDestinationsQueryHandler reads the destination catalog straight from the
// database. The catalog is a plain projection with no per-user visibility.
type ListDestinationsQueryHandler struct {
	db *gorm.DB
}

// NewListDestinationsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewListDestinationsQueryHandler(db *gorm.DB) ListDestinationsQueryHandler {
	return ListDestinationsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by city name for stable
// output.
func (h ListDestinationsQueryHandler) Handle(
	ctx context.Context,
	query ListDestinationsQuery,
) ([]DestinationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	destinations := make([]DestinationResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			city,
			iata_code,
			country
		FROM destinations
		ORDER BY city
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var resp DestinationResponse

		err = rows.Scan(
			&id,
			&resp.City,
			&resp.IataCode,
			&resp.Country,
		)
		if err != nil {
			return nil, err
		}

		resp.ID = id.String()
		destinations = append(destinations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return destinations, nil
}
