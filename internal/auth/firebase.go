package auth

import (
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// googleJWKS publishes the keys that sign Firebase ID tokens.
const googleJWKS = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

// FirebaseVerifier checks Firebase Authentication ID tokens.
type FirebaseVerifier struct {
	keyfunc  jwt.Keyfunc
	audience string
	issuer   string
}

// NewFirebaseVerifier creates a verifier for the given Firebase project.
// Signing keys are fetched from Google and refreshed in the background.
func NewFirebaseVerifier(projectID string) (*FirebaseVerifier, error) {
	jwks, err := keyfunc.NewDefault([]string{googleJWKS})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS keyfunc: %w", err)
	}
	return newFirebaseVerifier(projectID, jwks.Keyfunc), nil
}

func newFirebaseVerifier(projectID string, kf jwt.Keyfunc) *FirebaseVerifier {
	return &FirebaseVerifier{
		keyfunc:  kf,
		audience: projectID,
		issuer:   "https://securetoken.google.com/" + projectID,
	}
}

// Verify validates an ID token and returns its claims.
func (v *FirebaseVerifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, v.keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
