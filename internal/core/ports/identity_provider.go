package ports

import (
	"context"
	"errors"

	"tripmanager/internal/core/domain/model/user"
)

// ErrAuthenticationFailed is returned by identity providers when a credential
// pair or token cannot be verified. Unknown emails and password mismatches
// wrap the same error so callers cannot tell them apart.
var ErrAuthenticationFailed = errors.New("authentication failed")

// IdentityProvider authenticates credentials and resolves tokens back to users.
// Token issuance and verification live entirely behind this interface; the core
// only threads the opaque token string through.
type IdentityProvider interface {
	// Authenticate verifies the email/password pair and returns a token.
	// Verification failures surface as ErrAuthenticationFailed.
	Authenticate(ctx context.Context, email string, password string) (string, error)

	// CurrentUser resolves a previously issued token to its user.
	// Invalid or expired tokens surface as ErrAuthenticationFailed.
	CurrentUser(ctx context.Context, token string) (*user.User, error)
}
