package commands

import (
	"errors"
	"time"

	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/pkg/errs"
	"tripmanager/internal/pkg/guard"
)

var (
	ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
		"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
	)
)

// UpdateOrderDetailsCommand represents an owner's request to rewrite an
// order's destination and trip dates. Detail edits are owner-only: managers
// are deliberately not granted an override here, unlike viewing or status
// changes.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        kernel.UUID
	destinationID kernel.UUID
	departureDate time.Time
	returnDate    time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderDetailsCommand creates a command to update an order's
// destination and dates. Validates that all identifiers are valid and both
// dates are set.
func NewUpdateOrderDetailsCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	destinationID kernel.UUID,
	departureDate time.Time,
	returnDate time.Time,
) (UpdateOrderDetailsCommand, error) {
	cmd := UpdateOrderDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setDestinationID(destinationID),
		cmd.setDates(departureDate, returnDate),
	); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderDetailsCommandIsNotConstructed if validation fails.
func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderDetailsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the requesting user.
func (c UpdateOrderDetailsCommand) UserID() kernel.UUID {
	return c.userID
}

// DestinationID returns the identifier of the new destination.
func (c UpdateOrderDetailsCommand) DestinationID() kernel.UUID {
	return c.destinationID
}

// DepartureDate returns the new trip departure date.
func (c UpdateOrderDetailsCommand) DepartureDate() time.Time {
	return c.departureDate
}

// ReturnDate returns the new trip return date.
func (c UpdateOrderDetailsCommand) ReturnDate() time.Time {
	return c.returnDate
}

func (c *UpdateOrderDetailsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderDetailsCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateOrderDetailsCommand) setDestinationID(destinationID kernel.UUID) error {
	if err := destinationID.Validate(); err != nil {
		return err
	}

	c.destinationID = destinationID
	return nil
}

func (c *UpdateOrderDetailsCommand) setDates(departureDate, returnDate time.Time) error {
	if departureDate.IsZero() {
		return errs.NewValueIsRequiredError("departure date")
	}
	if returnDate.IsZero() {
		return errs.NewValueIsRequiredError("return date")
	}

	c.departureDate = departureDate
	c.returnDate = returnDate
	return nil
}
