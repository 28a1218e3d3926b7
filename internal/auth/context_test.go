package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestClaimsFrom(t *testing.T) {
	t.Run("returns nil for empty context", func(t *testing.T) {
		ctx := context.Background()
		assert.Nil(t, ClaimsFrom(ctx))
	})

	t.Run("returns claims from context", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject: "user_123",
			},
			Email: "test@example.com",
		}
		ctx := context.WithValue(context.Background(), claimsKey, claims)

		got := ClaimsFrom(ctx)
		assert.NotNil(t, got)
		assert.Equal(t, "user_123", got.Subject)
		assert.Equal(t, "test@example.com", got.Email)
	})
}

func TestSubject(t *testing.T) {
	t.Run("returns empty string for empty context", func(t *testing.T) {
		assert.Equal(t, "", Subject(context.Background()))
	})

	t.Run("returns subject from claims", func(t *testing.T) {
		ctx := WithClaims(context.Background(), NewTestClaims("fb_abc123", ""))
		assert.Equal(t, "fb_abc123", Subject(ctx))
	})
}

func TestEmail(t *testing.T) {
	t.Run("returns empty string for empty context", func(t *testing.T) {
		assert.Equal(t, "", Email(context.Background()))
	})

	t.Run("returns email from claims", func(t *testing.T) {
		ctx := WithClaims(context.Background(), NewTestClaims("", "user@example.com"))
		assert.Equal(t, "user@example.com", Email(ctx))
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("not authenticated", func(t *testing.T) {
		_, ok := CurrentUser(context.Background())
		assert.False(t, ok)
		assert.False(t, IsAuthenticated(context.Background()))
	})

	t.Run("normalizes claims", func(t *testing.T) {
		ctx := WithClaims(context.Background(), NewTestClaims("u1", "grace@example.com"))

		user, ok := CurrentUser(ctx)
		assert.True(t, ok)
		assert.True(t, IsAuthenticated(ctx))
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "grace", user.Name)
	})
}
