package commands

import (
	"errors"
	"time"

	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/order"
	"tripmanager/internal/pkg/errs"
	"tripmanager/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// statusTransition is the lifecycle change a status command requests.
// Each variant knows which role may request it and how to apply itself to
// the aggregate; adding a transition means adding a variant here rather than
// branching on a raw target status inside the handler.
type statusTransition interface {
	// apply performs the transition on the aggregate at the given time.
	apply(o *order.Order, now time.Time) error
	// allowedFor reports whether the requester may perform this transition
	// on the given order.
	allowedFor(requester requester, o *order.Order) bool
}

// requester is the slice of the user model the transitions need for
// authorization checks.
type requester interface {
	CanApproveOrders() bool
}

// approveTransition moves an order to the approved status. Managers only.
type approveTransition struct{}

func (approveTransition) apply(o *order.Order, now time.Time) error {
	return o.Approve(now)
}

func (approveTransition) allowedFor(r requester, _ *order.Order) bool {
	return r.CanApproveOrders()
}

// cancelTransition moves an order to the canceled status. Managers only;
// the temporal cancellation rules live on the aggregate.
type cancelTransition struct{}

func (cancelTransition) apply(o *order.Order, now time.Time) error {
	return o.Cancel(now)
}

func (cancelTransition) allowedFor(r requester, _ *order.Order) bool {
	return r.CanApproveOrders()
}

// UpdateOrderStatusCommand represents a manager's request to approve or
// cancel an order. The target status is resolved to a transition at
// construction time, so an unknown status never reaches the handler.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	userID     kernel.UUID
	transition statusTransition

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to move an order to the given
// target status. Only the approved and canceled statuses are valid targets.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	targetStatus order.Status,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setTransition(targetStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the requesting user.
func (c UpdateOrderStatusCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateOrderStatusCommand) setTransition(targetStatus order.Status) error {
	switch targetStatus {
	case order.Approved:
		c.transition = approveTransition{}
	case order.Canceled:
		c.transition = cancelTransition{}
	default:
		return errs.NewValueIsInvalidError("targetStatus")
	}

	return nil
}
