package commands

import "errors"

// Sentinel errors shared by the command handlers. Repository lookups surface
// errs.ErrObjectNotFound; the handlers translate that into the specific error
// for the object that was missing, so the boundary can map each one to its own
// response.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrUserNotAuthorized   = errors.New("user not authorized")
)
