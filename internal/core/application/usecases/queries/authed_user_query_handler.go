package queries

import (
	"context"
	"errors"

	"tripmanager/internal/core/ports"
	"tripmanager/internal/pkg/errs"
)

// AuthedUserQueryHandler resolves an access token to the profile of the user
// it identifies.
type AuthedUserQueryHandler struct {
	identityProvider ports.IdentityProvider
}

// NewAuthedUserQueryHandler creates a handler for token resolution.
func NewAuthedUserQueryHandler(identityProvider ports.IdentityProvider) AuthedUserQueryHandler {
	return AuthedUserQueryHandler{
		identityProvider: identityProvider,
	}
}

// Handle executes the query. An expired, malformed or otherwise unverifiable
// token surfaces as ErrInvalidCredentials; a verified token whose user has
// since disappeared surfaces as ErrUserNotFound.
func (h AuthedUserQueryHandler) Handle(ctx context.Context, query AuthedUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	u, err := h.identityProvider.CurrentUser(ctx, query.Token())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return UserResponse{}, ErrUserNotFound
	}
	if errors.Is(err, ports.ErrAuthenticationFailed) {
		return UserResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return UserResponse{}, err
	}

	return NewUserResponse(u), nil
}
