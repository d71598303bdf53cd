package queries

import (
	"context"
	"errors"

	"tripmanager/internal/core/ports"
	"tripmanager/internal/pkg/errs"
)

// LoginQueryResponse carries the token issued for a successful login.
type LoginQueryResponse struct {
	Token string
}

// LoginQueryHandler verifies credentials through the identity provider and
// returns the issued token.
type LoginQueryHandler struct {
	identityProvider ports.IdentityProvider
}

// NewLoginQueryHandler creates a handler for login requests.
func NewLoginQueryHandler(identityProvider ports.IdentityProvider) LoginQueryHandler {
	return LoginQueryHandler{
		identityProvider: identityProvider,
	}
}

// Handle executes the query. An unknown email and a wrong password are
// indistinguishable to the caller: both surface as ErrInvalidCredentials.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	token, err := h.identityProvider.Authenticate(ctx, query.Email(), query.Password())
	if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, ports.ErrAuthenticationFailed) {
		return LoginQueryResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginQueryResponse{}, err
	}

	return LoginQueryResponse{Token: token}, nil
}
