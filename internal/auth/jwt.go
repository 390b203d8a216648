package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSecret   = errors.New("jwt secret is not configured")
	ErrNoIdentity = errors.New("token carries no identity")
)

// Claims is the bearer token payload. Tokens are minted elsewhere; this
// service only verifies them.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the caller's email, falling back to the subject.
func (c *Claims) Identity() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}

// ParseToken verifies an HS256 token against secret and returns its claims.
func ParseToken(tokenStr string, secret []byte) (*Claims, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims.Identity() == "" {
		return nil, ErrNoIdentity
	}
	return claims, nil
}
