package auth

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thanquan654/mood-diary/internal/users"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, u *users.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
