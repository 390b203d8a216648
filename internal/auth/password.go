package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/thanquan654/mood-diary/internal/config"
)

// PasswordMatcher compares a stored password against a supplied one.
type PasswordMatcher interface {
	Matches(stored, supplied string) bool
	// Hash turns a supplied password into the stored form.
	Hash(password string) (string, error)
}

// PlainMatcher stores passwords as given and compares them exactly.
type PlainMatcher struct{}

func (PlainMatcher) Matches(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func (PlainMatcher) Hash(password string) (string, error) { return password, nil }

// BcryptMatcher stores bcrypt hashes.
type BcryptMatcher struct {
	Cost int
}

func (BcryptMatcher) Matches(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

func (m BcryptMatcher) Hash(password string) (string, error) {
	cost := m.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

// NewPasswordMatcher returns the matcher for a configured scheme.
func NewPasswordMatcher(scheme string) (PasswordMatcher, error) {
	switch scheme {
	case "", config.PasswordSchemePlain:
		return PlainMatcher{}, nil
	case config.PasswordSchemeBcrypt:
		return BcryptMatcher{}, nil
	}
	return nil, fmt.Errorf("unknown password scheme %q", scheme)
}
