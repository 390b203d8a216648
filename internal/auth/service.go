// Package auth verifies login credentials and guards routes with an
// ordered permit/deny rule table.
package auth

import (
	"context"
	"errors"

	"github.com/thanquan654/mood-diary/internal/users"
)

// ErrInvalidCredentials is the kind shared by every login rejection. Callers
// cannot tell an unknown email from a wrong password through it.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialsError carries the human-readable reason for a rejected login.
type CredentialsError struct {
	Message string
}

func (e *CredentialsError) Error() string { return e.Message }

func (e *CredentialsError) Is(target error) bool { return target == ErrInvalidCredentials }

const (
	msgUnknownEmail  = "email does not exist or is malformed"
	msgWrongPassword = "password is empty or incorrect"
)

// Service checks an email/password pair against the user record store.
type Service struct {
	users     users.Store
	passwords PasswordMatcher
}

func NewService(store users.Store, passwords PasswordMatcher) *Service {
	if passwords == nil {
		passwords = PlainMatcher{}
	}
	return &Service{users: store, passwords: passwords}
}

// Login returns the full record when password matches the stored one.
// Records without a stored password never match. Store failures are
// returned unchanged.
func (s *Service) Login(ctx context.Context, email, password string) (*users.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &CredentialsError{Message: msgUnknownEmail}
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// removed between the two queries
		if errors.Is(err, users.ErrNotFound) {
			return nil, &CredentialsError{Message: msgUnknownEmail}
		}
		return nil, err
	}

	if u.Password == nil || !s.passwords.Matches(*u.Password, password) {
		return nil, &CredentialsError{Message: msgWrongPassword}
	}
	return u, nil
}
