package commands

import (
	"context"
	"errors"

	"tripmanager/internal/pkg/errs"
)

// UpdateOrderDetailsCommandHandler handles rewrites of an order's destination
// and trip dates by its owner.
//
// The order status is intentionally not re-checked before applying the edits:
// an approved or canceled order's details remain editable by the owner.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderDetailsCommandHandler creates a handler for order detail updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderDetailsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detail update command.
// Loads the order (ErrOrderNotFound) and the requesting user (ErrUserNotFound),
// requires the requester to be the order's owner (ErrUserNotAuthorized),
// resolves the new destination (ErrDestinationNotFound), then applies the new
// dates and destination through the entity setters, which re-validate the date
// invariant on every mutation. Any failure aborts before persistence.
func (h UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	requester, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if !requester.ID().IsEqual(o.OwnerID()) {
		return ErrUserNotAuthorized
	}

	dest, err := uow.DestinationRepository().Get(ctx, cmd.DestinationID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDestinationNotFound
	}
	if err != nil {
		return err
	}

	if err = o.SetDepartureDate(cmd.DepartureDate()); err != nil {
		return err
	}
	if err = o.SetReturnDate(cmd.ReturnDate()); err != nil {
		return err
	}
	if err = o.SetDestination(dest); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
