package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kamilpajak/codecompanion/pkg/models"
)

const sessionIssuer = "codecompanion"

// userNamespace scopes the deterministic user IDs handed out by MockProvider.
var userNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://codecompanion.dev/users"))

// LoginRequest is the body of a mock login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// MockProvider accepts any well-formed email and password and issues HS256
// session tokens. It stands in for Firebase during local development.
type MockProvider struct {
	secret   []byte
	ttl      time.Duration
	validate *validator.Validate
	now      func() time.Time
}

// NewMockProvider creates a provider signing sessions with secret.
func NewMockProvider(secret string, ttl time.Duration) (*MockProvider, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret cannot be empty")
	}
	if ttl < time.Hour {
		return nil, fmt.Errorf("session TTL must be at least 1 hour, got: %s", ttl)
	}
	return &MockProvider{
		secret:   []byte(secret),
		ttl:      ttl,
		validate: validator.New(),
		now:      time.Now,
	}, nil
}

// UserID derives the stable mock user ID for an email address.
func UserID(email string) string {
	return uuid.NewSHA1(userNamespace, []byte(strings.ToLower(email))).String()
}

// Login validates the credentials and returns the user with a session token.
func (p *MockProvider) Login(req LoginRequest) (models.User, string, error) {
	if err := p.validate.Struct(req); err != nil {
		return models.User{}, "", fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	local, _, _ := strings.Cut(req.Email, "@")
	now := p.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   UserID(req.Email),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Email: req.Email,
		Name:  local,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return claims.User(), token, nil
}

// Verify validates a session token issued by Login.
func (p *MockProvider) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
