package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

const avatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// Claims are the JWT claims shared by Firebase ID tokens and mock sessions.
type Claims struct {
	jwt.RegisteredClaims
	Email         string        `json:"email,omitempty"`
	EmailVerified bool          `json:"email_verified,omitempty"`
	Name          string        `json:"name,omitempty"`
	Picture       string        `json:"picture,omitempty"`
	Firebase      *FirebaseInfo `json:"firebase,omitempty"`
}

// FirebaseInfo is the "firebase" claim of an ID token.
type FirebaseInfo struct {
	SignInProvider string              `json:"sign_in_provider,omitempty"`
	Identities     map[string][]string `json:"identities,omitempty"`
}

// SignInProvider reports how the user signed in, e.g. "google.com" or
// "password". Mock sessions report "mock".
func (c *Claims) SignInProvider() string {
	if c.Firebase == nil || c.Firebase.SignInProvider == "" {
		return "mock"
	}
	return c.Firebase.SignInProvider
}

// User normalizes the claims into the profile returned to clients. The name
// falls back to the local part of the email and the avatar to a generated
// image seeded by the email.
func (c *Claims) User() models.User {
	return models.User{
		ID:     c.Subject,
		Email:  c.Email,
		Name:   displayName(c.Name, c.Email),
		Avatar: avatar(c.Picture, c.Email),
	}
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	if local, _, _ := strings.Cut(email, "@"); local != "" {
		return local
	}
	return "User"
}

func avatar(picture, email string) string {
	if picture != "" {
		return picture
	}
	return avatarURL + email
}
