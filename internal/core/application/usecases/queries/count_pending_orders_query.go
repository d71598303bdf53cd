package queries

import (
	"errors"

	"tripmanager/internal/pkg/guard"
)

var (
	ErrCountPendingOrdersQueryIsNotConstructed = errors.New(
		"CountPendingOrdersQuery must be created via NewCountPendingOrdersQuery constructor",
	)
)

// CountPendingOrdersQuery counts orders still awaiting a manager decision.
// Feeds the periodic approval reminder job.
type CountPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewCountPendingOrdersQuery creates a query counting requested orders.
// This is a parameterless query.
func NewCountPendingOrdersQuery() CountPendingOrdersQuery {
	return CountPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrCountPendingOrdersQueryIsNotConstructed if validation fails.
func (q CountPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountPendingOrdersQueryIsNotConstructed)
}
