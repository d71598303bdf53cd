package queries

import (
	"errors"

	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single trip order on behalf of a user.
// Visibility is restricted: solicitors see only their own orders, managers
// see every order.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve the given order for the given
// user. Both identifiers must be valid.
func NewGetOrderQuery(orderID kernel.UUID, userID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setUserID(userID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// UserID returns the identifier of the requesting user.
func (q GetOrderQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}
