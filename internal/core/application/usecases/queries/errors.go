// Package queries contains read operations that never modify system state.
// Implements the query side of the CQRS architecture: some handlers read
// through the repository ports when domain authorization applies, others go
// straight to the database for plain projections.
package queries

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserNotAuthorized  = errors.New("user not authorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
