package queries

import (
	"context"
	"errors"

	"tripmanager/internal/core/ports"
	"tripmanager/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order with its owner and destination
// resolved. Reads through the repository ports because visibility depends on
// the requester's role.
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
	userRepository  ports.UserRepository
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
func NewGetOrderQueryHandler(
	orderRepository ports.OrderRepository,
	userRepository ports.UserRepository,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orderRepository: orderRepository,
		userRepository:  userRepository,
	}
}

// Handle executes the query. The requesting user must be the order's owner or
// hold the approval capability; otherwise ErrUserNotAuthorized is returned
// rather than revealing the order's existence.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.orderRepository.Get(ctx, query.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return OrderResponse{}, ErrOrderNotFound
	}
	if err != nil {
		return OrderResponse{}, err
	}

	requester, err := h.userRepository.Get(ctx, query.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return OrderResponse{}, ErrUserNotFound
	}
	if err != nil {
		return OrderResponse{}, err
	}

	if !requester.ID().IsEqual(o.OwnerID()) && !requester.CanApproveOrders() {
		return OrderResponse{}, ErrUserNotAuthorized
	}

	return NewOrderResponse(o), nil
}
