package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

func TestClaims_User(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
		want   models.User
	}{
		{
			name:   "profile fields win",
			claims: Claims{Email: "ada@example.com", Name: "Ada Lovelace", Picture: "https://example.com/ada.png"},
			want:   models.User{Email: "ada@example.com", Name: "Ada Lovelace", Avatar: "https://example.com/ada.png"},
		},
		{
			name:   "name from email",
			claims: Claims{Email: "grace.hopper@example.com"},
			want: models.User{
				Email:  "grace.hopper@example.com",
				Name:   "grace.hopper",
				Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=grace.hopper@example.com",
			},
		},
		{
			name:   "no email",
			claims: Claims{},
			want:   models.User{Name: "User", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.claims.Subject = "sub-1"
			tt.want.ID = "sub-1"
			assert.Equal(t, tt.want, tt.claims.User())
		})
	}
}

func TestClaims_SignInProvider(t *testing.T) {
	assert.Equal(t, "mock", (&Claims{}).SignInProvider())
	assert.Equal(t, "google.com", (&Claims{Firebase: &FirebaseInfo{SignInProvider: "google.com"}}).SignInProvider())
}
