// Package users holds the user record model and its stores.
package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound         = errors.New("user not found")
	ErrAlreadyExists    = errors.New("email already in use")
	ErrStoreUnavailable = errors.New("user store unavailable")
)

// Store is the user record store. Lookups are exact matches on email.
type Store interface {
	// FindByEmail returns ErrNotFound when no record has the email.
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create assigns u.ID. A duplicate email yields ErrAlreadyExists.
	Create(ctx context.Context, u *User) error
}
