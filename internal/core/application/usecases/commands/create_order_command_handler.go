package commands

import (
	"context"
	"errors"

	"tripmanager/internal/core/domain/model/order"
	"tripmanager/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for raising trip orders.
// Only solicitors may create orders, and always on their own behalf; the new
// order starts in Requested status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), userID, destinationID, departure, ret)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Loads the requesting user (ErrUserNotFound), requires the solicitor
// capability (ErrUserNotAuthorized), resolves the destination
// (ErrDestinationNotFound), and persists a new Requested order. The
// departure-before-return invariant is enforced by the Order constructor, so
// a date violation aborts before any persistence call.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if !owner.CanManageOwnOrders() {
		return ErrUserNotAuthorized
	}

	dest, err := uow.DestinationRepository().Get(ctx, cmd.DestinationID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDestinationNotFound
	}
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), owner, dest, cmd.DepartureDate(), cmd.ReturnDate())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
