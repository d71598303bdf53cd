// Package guard provides a small defensive-construction helper shared by
// commands, queries, and other objects that must only be built through their
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their constructor from
// zero values. Embed it in a struct and set it with NewConstructorGuard inside
// the constructor; Validate then rejects any zero-value instance.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor,
// otherwise the supplied validation error (or ErrDefaultConstructorGuard when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
