package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u := &User{Email: "a@x.com", Password: strPtr("secret"), Fullname: "A"}
	require.NoError(t, s.Create(ctx, u))
	assert.NotZero(t, u.ID)

	got, err := s.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "secret", *got.Password)
	assert.Equal(t, "A", got.Fullname)

	// returned records are copies
	got.Fullname = "changed"
	again, err := s.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Fullname)
}

func TestMemoryStore_RejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Create(ctx, &User{Email: "a@x.com", Fullname: "A"}))
	err := s.Create(ctx, &User{Email: "a@x.com", Fullname: "Other"})
	require.ErrorIs(t, err, ErrAlreadyExists)

	got, err := s.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Fullname)
}

func TestMemoryStore_ExistsConsistentWithFind(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Create(ctx, &User{Email: "a@x.com", Fullname: "A"}))
	require.NoError(t, s.Create(ctx, &User{Email: "g@x.com", Fullname: "G"}))

	for _, email := range []string{"a@x.com", "g@x.com", "nobody@x.com", "", "A@X.COM"} {
		exists, err := s.ExistsByEmail(ctx, email)
		require.NoError(t, err)

		_, findErr := s.FindByEmail(ctx, email)
		if exists {
			assert.NoError(t, findErr, email)
		} else {
			assert.ErrorIs(t, findErr, ErrNotFound, email)
		}
	}
}

func TestToResponse_OmitsPassword(t *testing.T) {
	u := &User{ID: 1, Email: "a@x.com", Password: strPtr("secret"), Fullname: "A"}
	r := ToResponse(u)

	assert.Equal(t, Response{ID: 1, Email: "a@x.com", Fullname: "A"}, r)
}
