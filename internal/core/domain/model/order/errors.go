package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDates is returned when a departure date is after the return date.
	ErrInvalidDates = errors.New("departure date must not be after return date")

	// ErrOrderNotApprovable is the unwrap target for every ApproveError.
	ErrOrderNotApprovable = errors.New("order cannot be approved")

	// ErrOrderNotCancelable is the unwrap target for every CancelError.
	ErrOrderNotCancelable = errors.New("order cannot be canceled")
)

// Reason codes carried by ApproveError and CancelError. The boundary layer
// forwards them verbatim, so they double as wire-level error codes.
const (
	// ReasonStatusNotRequested: only orders in Requested status may be approved.
	ReasonStatusNotRequested = "order_status_not_requested"

	// ReasonInvalidDate: the departure date already passed relative to the
	// approval moment.
	ReasonInvalidDate = "invalid_date"

	// ReasonAlreadyCanceled: the order is already in Canceled status.
	ReasonAlreadyCanceled = "order_already_canceled"

	// ReasonApprovedPassedOneDay: more than 24 hours elapsed since approval.
	ReasonApprovedPassedOneDay = "order_approved_passed_one_day"

	// ReasonDepartureApprovedGap: the whole-day gap between the departure date
	// and the approval timestamp is under 7 days.
	ReasonDepartureApprovedGap = "departure_date_and_approved_diff_more_7_days"
)

// ApproveError indicates that an order could not be approved.
// The Reason field carries one of the Reason* codes above.
type ApproveError struct {
	Reason string
}

// NewApproveError creates an ApproveError with the given reason code.
func NewApproveError(reason string) *ApproveError {
	return &ApproveError{Reason: reason}
}

func (e *ApproveError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOrderNotApprovable, e.Reason)
}

func (e *ApproveError) Unwrap() error {
	return ErrOrderNotApprovable
}

// CancelError indicates that an order could not be canceled.
// The Reason field carries one of the Reason* codes above.
type CancelError struct {
	Reason string
}

// NewCancelError creates a CancelError with the given reason code.
func NewCancelError(reason string) *CancelError {
	return &CancelError{Reason: reason}
}

func (e *CancelError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOrderNotCancelable, e.Reason)
}

func (e *CancelError) Unwrap() error {
	return ErrOrderNotCancelable
}
