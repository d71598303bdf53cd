package order

import (
	"errors"
	"time"

	"tripmanager/internal/core/domain/model/destination"
	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/user"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

const (
	cancellationWindow = 24 * time.Hour
	minApprovalGapDays = 7
	hoursPerDay        = 24
)

// Order represents a trip order in the system. It is the aggregate root that
// manages the order lifecycle from request through approval or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, owner, and destination
//   - The departure date is never after the return date, also across mutation
//   - Status transitions follow the Status state machine
//   - The approval timestamp is recorded on approval and never cleared,
//     even after a later cancellation
//   - Can only be created through NewOrder or RestoreOrder
//
// The owner and destination are referenced, not owned: the order never mutates
// them, it only swaps the destination reference when details change.
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// owner is the solicitor that raised the order
	owner *user.User

	// destination is the referenced trip destination
	destination *destination.Destination

	// departureDate and returnDate bound the trip; departure <= return always
	departureDate time.Time
	returnDate    time.Time

	// approvedAt is set on approval and never cleared (nil until then)
	approvedAt *time.Time

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Requested status with validation.
// Fails with ErrInvalidDates when the departure date is after the return date.
func NewOrder(
	id kernel.UUID,
	owner *user.User,
	dest *destination.Destination,
	departureDate time.Time,
	returnDate time.Time,
) (*Order, error) {
	o := &Order{
		status:        Requested,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
		o.setDestination(dest),
		o.setDates(departureDate, returnDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// It bypasses the default Requested status but still runs date validation, then
// force-sets the status and approval timestamp exactly as stored. A canceled
// order that carries an approval timestamp therefore stays representable.
func RestoreOrder(
	id kernel.UUID,
	owner *user.User,
	dest *destination.Destination,
	departureDate time.Time,
	returnDate time.Time,
	approvedAt *time.Time,
	status Status,
) (*Order, error) {
	o, err := NewOrder(id, owner, dest, departureDate, returnDate)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.approvedAt = approvedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct, and should be called when persisting aggregates.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Owner returns the user that raised the order.
func (o *Order) Owner() *user.User {
	return o.owner
}

// OwnerID returns the identifier of the user that raised the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.owner.ID()
}

// Destination returns the referenced trip destination.
func (o *Order) Destination() *destination.Destination {
	return o.destination
}

// DestinationID returns the identifier of the referenced destination.
func (o *Order) DestinationID() kernel.UUID {
	return o.destination.ID()
}

// DepartureDate returns the trip departure date.
func (o *Order) DepartureDate() time.Time {
	return o.departureDate
}

// ReturnDate returns the trip return date.
func (o *Order) ReturnDate() time.Time {
	return o.returnDate
}

// ApprovedAt returns the approval timestamp, or nil if the order was never approved.
func (o *Order) ApprovedAt() *time.Time {
	return o.approvedAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// SetDepartureDate replaces the departure date, re-validating the date pair
// against the existing return date. Fails with ErrInvalidDates on violation.
func (o *Order) SetDepartureDate(departureDate time.Time) error {
	if err := validateDates(departureDate, o.returnDate); err != nil {
		return err
	}
	o.departureDate = departureDate
	return nil
}

// SetReturnDate replaces the return date, re-validating the date pair against
// the existing departure date. Fails with ErrInvalidDates on violation.
func (o *Order) SetReturnDate(returnDate time.Time) error {
	if err := validateDates(o.departureDate, returnDate); err != nil {
		return err
	}
	o.returnDate = returnDate
	return nil
}

// SetDestination replaces the referenced destination unconditionally.
// Only the reference itself is checked for proper construction.
func (o *Order) SetDestination(dest *destination.Destination) error {
	return o.setDestination(dest)
}

// Approve transitions the order to Approved and records the approval timestamp
// exactly as given.
//
// Fails with an ApproveError carrying:
//   - "order_status_not_requested" unless the current status is Requested
//   - "invalid_date" if the departure date is before the approval moment
//
// A failed call leaves the order unchanged.
func (o *Order) Approve(approvedAt time.Time) error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	if o.departureDate.Before(approvedAt) {
		return NewApproveError(ReasonInvalidDate)
	}

	o.status = newStatus
	o.approvedAt = &approvedAt
	return nil
}

// Cancel transitions the order to Canceled.
//
// Fails with a CancelError carrying:
//   - "order_already_canceled" if the order is already Canceled
//   - "order_approved_passed_one_day" for an approved order once 24 hours have
//     elapsed since approval (approvedAt + 1 day <= now)
//   - "departure_date_and_approved_diff_more_7_days" for an approved order whose
//     whole-day departure-to-approval gap is under 7 days; the rule compares the
//     approval-to-departure window, not the cancellation moment
//
// Cancellation of a Requested order always succeeds, regardless of dates.
// The approval timestamp, if set, is left untouched.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if o.status == Approved && o.approvedAt != nil {
		if !now.Before(o.approvedAt.Add(cancellationWindow)) {
			return NewCancelError(ReasonApprovedPassedOneDay)
		}

		if wholeDays(o.departureDate.Sub(*o.approvedAt)) < minApprovalGapDays {
			return NewCancelError(ReasonDepartureApprovedGap)
		}
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(owner *user.User) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	o.owner = owner
	return nil
}

func (o *Order) setDestination(dest *destination.Destination) error {
	if err := dest.Validate(); err != nil {
		return err
	}
	o.destination = dest
	return nil
}

func (o *Order) setDates(departureDate, returnDate time.Time) error {
	if err := validateDates(departureDate, returnDate); err != nil {
		return err
	}
	o.departureDate = departureDate
	o.returnDate = returnDate
	return nil
}

func validateDates(departureDate, returnDate time.Time) error {
	if departureDate.After(returnDate) {
		return ErrInvalidDates
	}
	return nil
}

// wholeDays returns the absolute number of whole days in d, truncated.
func wholeDays(d time.Duration) int {
	if d < 0 {
		d = -d
	}
	return int(d / (hoursPerDay * time.Hour))
}
