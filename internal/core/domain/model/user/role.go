package user

import (
	"fmt"

	"tripmanager/internal/pkg/errs"
)

// Role represents the authorization role of a user.
// It is the sole authorization signal in the system: all access decisions are
// derived from the two capability predicates on User, which in turn depend only
// on the role. There is no hierarchical or attribute-based policy.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Solicitor is an ordinary user who raises trip orders and may manage
	// only their own orders.
	Solicitor

	// Manager is a privileged user who may approve or cancel any order and
	// view all orders.
	Manager
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Solicitor:   "SOLICITOR",
		Manager:     "MANAGER",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Solicitor: "SOLICITOR",
		Manager:   "MANAGER",
	}
}

// RoleFromString parses a role from its wire representation ("SOLICITOR" or "MANAGER").
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
// Valid roles are Solicitor and Manager; UnknownRole and any other value are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire representation of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
