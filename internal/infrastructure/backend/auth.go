package backend

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceAudience is the audience claim the upstream API expects on service tokens.
const ServiceAudience = "forms-backend"

// TokenSigner issues short-lived HS256 tokens identifying this service to the upstream API.
type TokenSigner struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenSigner returns nil when secret is empty, which disables the Authorization header.
func NewTokenSigner(secret, issuer string, ttl time.Duration) *TokenSigner {
	if secret == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &TokenSigner{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Sign creates a token whose jti is the request id.
func (s *TokenSigner) Sign(requestID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   s.issuer,
		Audience:  jwt.ClaimStrings{ServiceAudience},
		ID:        requestID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign service token: %w", err)
	}
	return signed, nil
}
