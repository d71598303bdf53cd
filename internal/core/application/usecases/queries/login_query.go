package queries

import (
	"errors"

	"tripmanager/internal/pkg/errs"
	"tripmanager/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)
)

// LoginQuery exchanges an email/password pair for an access token.
type LoginQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login query. Both credentials must be non-empty;
// their verification happens in the identity provider.
func NewLoginQuery(email string, password string) (LoginQuery, error) {
	query := LoginQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setEmail(email),
		query.setPassword(password),
	); err != nil {
		return LoginQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrLoginQueryIsNotConstructed if validation fails.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Email returns the credential email.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the credential password.
func (q LoginQuery) Password() string {
	return q.password
}

func (q *LoginQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	q.email = email
	return nil
}

func (q *LoginQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	q.password = password
	return nil
}
