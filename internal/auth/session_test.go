package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *MockProvider {
	t.Helper()
	p, err := NewMockProvider("test-secret", 24*time.Hour)
	require.NoError(t, err)
	return p
}

func TestNewMockProvider(t *testing.T) {
	_, err := NewMockProvider("", time.Hour)
	assert.ErrorContains(t, err, "secret cannot be empty")

	_, err = NewMockProvider("s", time.Minute)
	assert.ErrorContains(t, err, "at least 1 hour")
}

func TestMockProvider_LoginAndVerify(t *testing.T) {
	p := newTestProvider(t)

	user, token, err := p.Login(LoginRequest{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, UserID("ada@example.com"), user.ID)
	assert.Equal(t, "ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Contains(t, user.Avatar, "seed=ada@example.com")

	claims, err := p.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user, claims.User())
	assert.Equal(t, "mock", claims.SignInProvider())
}

func TestMockProvider_LoginRejects(t *testing.T) {
	p := newTestProvider(t)

	tests := []struct {
		name string
		req  LoginRequest
	}{
		{"missing email", LoginRequest{Password: "secret1"}},
		{"malformed email", LoginRequest{Email: "not-an-email", Password: "secret1"}},
		{"short password", LoginRequest{Email: "ada@example.com", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, token, err := p.Login(tt.req)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Empty(t, token)
		})
	}
}

func TestMockProvider_VerifyRejects(t *testing.T) {
	p := newTestProvider(t)
	_, token, err := p.Login(LoginRequest{Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	t.Run("empty", func(t *testing.T) {
		_, err := p.Verify("")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := NewMockProvider("another-secret", 24*time.Hour)
		require.NoError(t, err)
		_, err = other.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		p.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
		defer func() { p.now = time.Now }()

		_, err := p.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered", func(t *testing.T) {
		_, err := p.Verify(token + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestUserID(t *testing.T) {
	id := UserID("Ada@Example.com")

	assert.Equal(t, id, UserID("ada@example.com"))
	assert.NotEqual(t, id, UserID("grace@example.com"))

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
}
