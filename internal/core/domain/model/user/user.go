// Package user contains the User entity and the role-based capability
// predicates that drive every authorization decision in the system.
//
// Users are created by the identity provider on signup or seeding and are
// read-only to this core: there is no mutation use case, and the role is
// immutable after construction.
package user

import (
	"errors"

	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User represents an identity known to the system: a display name, an email
// address used for notifications, and the role deciding authorization
// capabilities.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Name and email must be non-empty
//   - Role must be valid and is immutable after construction
//   - Can only be created through the NewUser constructor
type User struct {
	id    kernel.UUID
	name  string
	email string
	role  Role

	// isConstructed ensures the user was created via NewUser
	isConstructed bool
}

// NewUser creates a new User instance with validation. This is the only way to
// create a valid User; the role is fixed for the lifetime of the entity.
func NewUser(id kernel.UUID, name string, email string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// CanApproveOrders reports whether the user may approve or cancel any order
// and view all orders. True iff the role is Manager.
func (u *User) CanApproveOrders() bool {
	return u.role == Manager
}

// CanManageOwnOrders reports whether the user may create orders and manage
// their own. True iff the role is Solicitor.
func (u *User) CanManageOwnOrders() bool {
	return u.role == Solicitor
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
