package order

import (
	"fmt"

	"tripmanager/internal/pkg/errs"
)

// Status represents the lifecycle state of a trip order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct approval workflow.
//
// State transitions:
//
//	Requested ──┬──> Approved ──> Canceled
//	            │                    ^
//	            └────────────────────┘
//
// No transition leaves Canceled.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status when an order is first created.
	// Orders in this status are waiting for a manager decision.
	Requested

	// Approved indicates a manager approved the order.
	// Approved orders may still be canceled within the cancellation window.
	Approved

	// Canceled indicates the order was canceled, either while requested or
	// after approval. This is a final state with no further transitions.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Requested: "REQUESTED",
		Approved:  "APPROVED",
		Canceled:  "CANCELED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested: "REQUESTED",
		Approved:  "APPROVED",
		Canceled:  "CANCELED",
	}
}

// StatusFromString parses a status from its wire representation
// ("REQUESTED", "APPROVED", or "CANCELED").
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are Requested, Approved, and Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Requested -> Approved
//
// Returns an ApproveError with reason "order_status_not_requested" for any
// other current status. Date-related approval rules live on the Order
// aggregate, which also holds the departure date.
func (s Status) Approve() (Status, error) {
	if s != Requested {
		return Unknown, NewApproveError(ReasonStatusNotRequested)
	}

	return Approved, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Requested -> Canceled
//   - Approved -> Canceled (subject to the Order's cancellation-window rules)
//
// Returns a CancelError with reason "order_already_canceled" when the order
// is already Canceled.
func (s Status) Cancel() (Status, error) {
	if s == Canceled {
		return Unknown, NewCancelError(ReasonAlreadyCanceled)
	}

	return Canceled, nil
}
