package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thanquan654/mood-diary/internal/users"
)

func strPtr(s string) *string { return &s }

func seededStore(t *testing.T, recs ...*users.User) *users.MemoryStore {
	t.Helper()
	s := users.NewMemoryStore()
	for _, u := range recs {
		require.NoError(t, s.Create(context.Background(), u))
	}
	return s
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(seededStore(t, &users.User{Email: "a@x.com", Password: strPtr("secret"), Fullname: "A"}), nil)

	for _, email := range []string{"nobody@x.com", "", "A@X.COM", "a@x.com "} {
		_, err := svc.Login(context.Background(), email, "secret")
		require.ErrorIs(t, err, ErrInvalidCredentials, email)

		var ce *CredentialsError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, msgUnknownEmail, ce.Message)
	}
}

func TestLogin_PasswordMismatch(t *testing.T) {
	svc := NewService(seededStore(t,
		&users.User{Email: "a@x.com", Password: strPtr("secret"), Fullname: "A"},
		&users.User{Email: "g@x.com", Fullname: "G", ProviderID: strPtr("google-1")},
	), nil)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong", "a@x.com", "wrong"},
		{"empty", "a@x.com", ""},
		{"case differs", "a@x.com", "Secret"},
		{"prefix", "a@x.com", "secre"},
		{"no stored password, empty supplied", "g@x.com", ""},
		{"no stored password, any supplied", "g@x.com", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			require.ErrorIs(t, err, ErrInvalidCredentials)
			assert.EqualError(t, err, msgWrongPassword)
		})
	}
}

func TestLogin_Success_ReturnsFullRecord(t *testing.T) {
	stored := &users.User{
		Email:      "a@x.com",
		Password:   strPtr("secret"),
		AvatarURL:  strPtr("https://img/a.png"),
		ProviderID: strPtr("p-1"),
		Fullname:   "A",
	}
	svc := NewService(seededStore(t, stored), nil)

	u, err := svc.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, strPtr("secret"), u.Password)
	assert.Equal(t, strPtr("https://img/a.png"), u.AvatarURL)
	assert.Equal(t, strPtr("p-1"), u.ProviderID)
	assert.Equal(t, "A", u.Fullname)
}

func TestLogin_Bcrypt(t *testing.T) {
	m := BcryptMatcher{Cost: 4}
	hash, err := m.Hash("secret")
	require.NoError(t, err)

	svc := NewService(seededStore(t, &users.User{Email: "a@x.com", Password: &hash, Fullname: "A"}), m)

	_, err = svc.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "a@x.com", hash)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StoreErrorsPropagate(t *testing.T) {
	storeErr := errors.Join(users.ErrStoreUnavailable, errors.New("connection refused"))

	t.Run("exists fails", func(t *testing.T) {
		store := new(MockStore)
		store.On("ExistsByEmail", mock.Anything, "a@x.com").Return(false, storeErr)

		_, err := NewService(store, nil).Login(context.Background(), "a@x.com", "secret")
		require.ErrorIs(t, err, users.ErrStoreUnavailable)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		store.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("find fails", func(t *testing.T) {
		store := new(MockStore)
		store.On("ExistsByEmail", mock.Anything, "a@x.com").Return(true, nil)
		store.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, storeErr)

		_, err := NewService(store, nil).Login(context.Background(), "a@x.com", "secret")
		require.ErrorIs(t, err, users.ErrStoreUnavailable)
		store.AssertExpectations(t)
	})

	t.Run("record removed between queries", func(t *testing.T) {
		store := new(MockStore)
		store.On("ExistsByEmail", mock.Anything, "a@x.com").Return(true, nil)
		store.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, users.ErrNotFound)

		_, err := NewService(store, nil).Login(context.Background(), "a@x.com", "secret")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		assert.EqualError(t, err, msgUnknownEmail)
	})
}
