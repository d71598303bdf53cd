package commands

import (
	"errors"
	"time"

	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/pkg/errs"
	"tripmanager/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a solicitor's request to raise a new trip order.
// Encapsulates the owning user, the destination, and the trip date range.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, userID, destinationID, departure, ret)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        kernel.UUID
	destinationID kernel.UUID
	departureDate time.Time
	returnDate    time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to raise a new trip order.
// Validates that all identifiers are valid and both dates are set; the
// departure-before-return invariant is enforced by the Order entity itself.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	destinationID kernel.UUID,
	departureDate time.Time,
	returnDate time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setDestinationID(destinationID),
		orderCommand.setDates(departureDate, returnDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the requesting user.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// DestinationID returns the identifier of the requested destination.
func (c CreateOrderCommand) DestinationID() kernel.UUID {
	return c.destinationID
}

// DepartureDate returns the requested trip departure date.
func (c CreateOrderCommand) DepartureDate() time.Time {
	return c.departureDate
}

// ReturnDate returns the requested trip return date.
func (c CreateOrderCommand) ReturnDate() time.Time {
	return c.returnDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setDestinationID(destinationID kernel.UUID) error {
	if err := destinationID.Validate(); err != nil {
		return err
	}

	c.destinationID = destinationID
	return nil
}

func (c *CreateOrderCommand) setDates(departureDate, returnDate time.Time) error {
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
