// Package order provides domain entities and business logic for trip order
// management. It implements the Order aggregate root with lifecycle management,
// date invariants, and status transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, dates, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Filter: The query shape used when listing order collections
//
// Key business rules:
//   - The departure date must never be after the return date
//   - Order status follows a defined workflow: Requested -> Approved or Canceled,
//     Approved -> Canceled; nothing leaves Canceled
//   - Approval records the approval timestamp, which is never cleared afterwards
//   - Canceling an approved order is blocked more than 24 hours after approval,
//     and when the approval-to-departure gap is under 7 whole days
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
