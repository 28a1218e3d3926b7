package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProject = "study-buddy"

func testVerifier(t *testing.T) (*FirebaseVerifier, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	v := newFirebaseVerifier(testProject, func(*jwt.Token) (any, error) {
		return &key.PublicKey, nil
	})
	return v, key
}

func idToken(t *testing.T, key *rsa.PrivateKey, mutate func(*Claims)) string {
	t.Helper()
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://securetoken.google.com/" + testProject,
			Audience:  jwt.ClaimStrings{testProject},
			Subject:   "firebase-uid-1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email:    "ada@example.com",
		Name:     "Ada",
		Firebase: &FirebaseInfo{SignInProvider: "google.com"},
	}
	if mutate != nil {
		mutate(claims)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestFirebaseVerifier_Valid(t *testing.T) {
	v, key := testVerifier(t)

	claims, err := v.Verify(idToken(t, key, nil))
	require.NoError(t, err)

	assert.Equal(t, "firebase-uid-1", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "google.com", claims.SignInProvider())
}

func TestFirebaseVerifier_Rejects(t *testing.T) {
	v, key := testVerifier(t)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong audience", idToken(t, key, func(c *Claims) { c.Audience = jwt.ClaimStrings{"other-project"} })},
		{"wrong issuer", idToken(t, key, func(c *Claims) { c.Issuer = "https://accounts.google.com" })},
		{"expired", idToken(t, key, func(c *Claims) { c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute)) })},
		{"no expiry", idToken(t, key, func(c *Claims) { c.ExpiresAt = nil })},
		{"issued in the future", idToken(t, key, func(c *Claims) { c.IssuedAt = jwt.NewNumericDate(time.Now().Add(time.Hour)) })},
		{"empty subject", idToken(t, key, func(c *Claims) { c.Subject = "" })},
		{"wrong key", idToken(t, other, nil)},
		{"hs256", func() string {
			s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte("k"))
			require.NoError(t, err)
			return s
		}()},
		{"garbage", "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}
