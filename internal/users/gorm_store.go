package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the SQLSTATE postgres reports for a duplicate key.
const pgUniqueViolation = "23505"

// GormStore is the postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w: %w", ErrStoreUnavailable, err)
	}
	return &u, nil
}

func (s *GormStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("count users by email: %w: %w", ErrStoreUnavailable, err)
	}
	return n > 0, nil
}

func (s *GormStore) Create(ctx context.Context, u *User) error {
	err := s.db.WithContext(ctx).Create(u).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create user: %w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
