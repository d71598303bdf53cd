// Package identity implements the identity provider port with bcrypt password
// verification and HS256 JWT tokens. Users live in the same database as the
// rest of the system; only this package ever reads their password hashes.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tripmanager/internal/adapters/out/postgres/userrepo"
	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/user"
	"tripmanager/internal/core/ports"
	"tripmanager/internal/pkg/errs"
)

// Claims describes the JWT payload issued on login.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTProvider implements ports.IdentityProvider.
type JWTProvider struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
	clock  func() time.Time
}

// NewJWTProvider creates an identity provider signing tokens with the given
// secret. Tokens expire after ttl.
func NewJWTProvider(db *gorm.DB, secret string, ttl time.Duration) *JWTProvider {
	return &JWTProvider{
		db:     db,
		secret: []byte(secret),
		ttl:    ttl,
		clock:  time.Now,
	}
}

// Authenticate verifies the email/password pair and returns a signed token.
// Unknown emails and password mismatches both surface as
// ports.ErrAuthenticationFailed.
func (p *JWTProvider) Authenticate(ctx context.Context, email string, password string) (string, error) {
	var dto userrepo.UserDTO
	if err := p.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ports.ErrAuthenticationFailed
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dto.PasswordHash), []byte(password)); err != nil {
		return "", ports.ErrAuthenticationFailed
	}

	return p.generateToken(dto.ID.String())
}

// CurrentUser resolves a previously issued token to its user.
// Malformed, forged or expired tokens surface as ports.ErrAuthenticationFailed;
// a verified token whose user no longer exists surfaces as
// errs.ObjectNotFoundError so callers can tell the two apart.
func (p *JWTProvider) CurrentUser(ctx context.Context, token string) (*user.User, error) {
	claims, err := p.parseToken(token)
	if err != nil {
		return nil, ports.ErrAuthenticationFailed
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return nil, ports.ErrAuthenticationFailed
	}

	var dto userrepo.UserDTO
	if err := p.db.WithContext(ctx).First(&dto, "id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", claims.UserID)
		}
		return nil, err
	}

	return dto.ToDomain()
}

func (p *JWTProvider) generateToken(userID string) (string, error) {
	now := p.clock()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "tripmanager",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *JWTProvider) parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.clock))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}

	return claims, nil
}
