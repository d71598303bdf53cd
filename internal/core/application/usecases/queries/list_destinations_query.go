package queries

import (
	"errors"

	"tripmanager/internal/pkg/guard"
)

var (
	ErrListDestinationsQueryIsNotConstructed = errors.New(
		"ListDestinationsQuery must be created via NewListDestinationsQuery constructor",
	)
)

// ListDestinationsQuery retrieves the whole destination catalog.
// Any authenticated user may browse it; there is nothing to authorize, so the
// handler reads the database directly.
type ListDestinationsQuery struct {
	guard guard.ConstructorGuard
}

// NewListDestinationsQuery creates a query to retrieve the destination catalog.
// This is a parameterless query.
func NewListDestinationsQuery() ListDestinationsQuery {
	return ListDestinationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDestinationsQueryIsNotConstructed if validation fails.
func (q ListDestinationsQuery) Validate() error {
	return q.guard.Validate(ErrListDestinationsQueryIsNotConstructed)
}
