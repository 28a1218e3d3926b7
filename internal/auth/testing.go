package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// WithClaims returns a new context with the given claims.
// This is primarily for testing purposes.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// NewTestClaims creates Claims with the given user ID and email.
// This is primarily for testing purposes.
func NewTestClaims(userID, email string) *Claims {
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
		},
		Email: email,
	}
}

// StaticProvider accepts exactly one token. It is meant for handler tests.
type StaticProvider struct {
	Token  string
	Claims *Claims
}

func (p StaticProvider) Verify(token string) (*Claims, error) {
	if token != p.Token {
		return nil, ErrInvalidToken
	}
	return p.Claims, nil
}
