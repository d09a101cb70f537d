package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of the backend's token claims the gateway reads.
// The signature is NOT checked here: only the backend holds the signing key,
// and it re-validates the token on every proxied call. Claims are used for
// UI gating and expiry checks only.
type Claims struct {
	ID    string `json:"id"`
	AltID string `json:"userId"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the user identifier, whichever claim key carries it.
func (c *Claims) UserID() string {
	if c.ID != "" {
		return c.ID
	}
	if c.AltID != "" {
		return c.AltID
	}
	return c.Subject
}

// ParseClaims decodes a backend token without verifying its signature.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token claims: %w", err)
	}
	return claims, nil
}
