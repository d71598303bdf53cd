package queries

import (
	"errors"

	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/order"
	"tripmanager/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves the trip orders visible to a user, optionally
// narrowed by status, travel period and destination. Solicitors are always
// scoped to their own orders; managers see everything the filter admits.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	filter order.Filter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query listing orders for the given user.
// An optional filter narrows the result; a set filter status must be a known
// lifecycle status.
func NewListOrdersQuery(userID kernel.UUID, filter order.Filter) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUserID(userID),
		query.setFilter(filter),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the requesting user.
func (q ListOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Filter returns the collection filter as supplied by the caller.
func (q ListOrdersQuery) Filter() order.Filter {
	return q.filter
}

func (q *ListOrdersQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

func (q *ListOrdersQuery) setFilter(filter order.Filter) error {
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return err
		}
	}
	if filter.DestinationID != nil {
		if err := filter.DestinationID.Validate(); err != nil {
			return err
		}
	}

	q.filter = filter
	return nil
}
