package queries

import (
	"errors"

	"tripmanager/internal/pkg/errs"
	"tripmanager/internal/pkg/guard"
)

var (
	ErrAuthedUserQueryIsNotConstructed = errors.New(
		"AuthedUserQuery must be created via NewAuthedUserQuery constructor",
	)
)

// AuthedUserQuery resolves an access token to the user it was issued for.
type AuthedUserQuery struct { //nolint:recvcheck //using for validation
	token string

	guard guard.ConstructorGuard
}

// NewAuthedUserQuery creates a query resolving the given token.
func NewAuthedUserQuery(token string) (AuthedUserQuery, error) {
	query := AuthedUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setToken(token); err != nil {
		return AuthedUserQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthedUserQueryIsNotConstructed if validation fails.
func (q AuthedUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthedUserQueryIsNotConstructed)
}

// Token returns the access token to resolve.
func (q AuthedUserQuery) Token() string {
	return q.token
}

func (q *AuthedUserQuery) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	q.token = token
	return nil
}
