package auth

import (
	"context"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

type contextKey int

const (
	claimsKey contextKey = iota
)

// ClaimsFrom returns the verified claims from context, or nil if not authenticated.
func ClaimsFrom(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

// Subject returns the provider's user ID from context, or empty string if not authenticated.
func Subject(ctx context.Context) string {
	claims := ClaimsFrom(ctx)
	if claims == nil {
		return ""
	}
	return claims.Subject
}

// Email returns the user's email from context, or empty string if not available.
func Email(ctx context.Context) string {
	claims := ClaimsFrom(ctx)
	if claims == nil {
		return ""
	}
	return claims.Email
}

// CurrentUser returns the normalized user for the request.
func CurrentUser(ctx context.Context) (models.User, bool) {
	claims := ClaimsFrom(ctx)
	if claims == nil {
		return models.User{}, false
	}
	return claims.User(), true
}

// IsAuthenticated returns true if the request has valid authentication.
func IsAuthenticated(ctx context.Context) bool {
	return ClaimsFrom(ctx) != nil
}
