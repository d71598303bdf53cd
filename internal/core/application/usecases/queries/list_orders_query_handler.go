package queries

import (
	"context"
	"errors"

	"tripmanager/internal/core/ports"
	"tripmanager/internal/pkg/errs"
)

// ListOrdersQueryHandler lists the orders visible to a user.
// Reads through the repository ports because the effective filter depends on
// the requester's role.
type ListOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
	userRepository  ports.UserRepository
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(
	orderRepository ports.OrderRepository,
	userRepository ports.UserRepository,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		orderRepository: orderRepository,
		userRepository:  userRepository,
	}
}

// Handle executes the query. Requesters without the approval capability are
// forced onto their own orders, whatever owner filter they supplied. Results
// are ordered by identifier ascending.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requester, err := h.userRepository.Get(ctx, query.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	filter := query.Filter()
	if !requester.CanApproveOrders() {
		filter = filter.WithOwner(requester.ID())
	}

	found, err := h.orderRepository.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(found))
	for _, o := range found {
		responses = append(responses, NewOrderResponse(o))
	}

	return responses, nil
}
