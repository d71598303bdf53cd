package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tripmanager/internal/core/ports"
	"tripmanager/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles approval and cancellation of orders
// by managers.
//
// After a successful commit the order's owner is notified of the change.
// Notification is best-effort: a delivery failure is logged but the status
// change stands.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	clock      func() time.Time
	log        *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status changes.
// Requires an OrderUoWFactory, a Notifier for owner notifications, a clock
// (time.Now in production) and a logger. The clock is injected because the
// approval and cancellation rules are relative to the current moment.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	clock func() time.Time,
	log *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
		log:        log,
	}
}

// Handle processes the status change command.
// Loads the order (ErrOrderNotFound) and the requesting user (ErrUserNotFound),
// checks the transition's authorization rule (ErrUserNotAuthorized) and applies
// the transition, which enforces the lifecycle and temporal invariants. On
// commit the owner is notified.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if !cmd.transition.allowedFor(requester, o) {
		return ErrUserNotAuthorized
	}

	if err = cmd.transition.apply(o, h.clock()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.NotifyOrderStatusChanged(ctx, o); err != nil {
		h.log.Warn("order status notification failed",
			"orderID", o.ID().String(),
			"status", o.Status().String(),
			"error", err)
	}

	return nil
}
