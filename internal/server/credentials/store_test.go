package credentials

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(bcrypt.MinCost)
}

func TestInitialize_SeedsAdmin(t *testing.T) {
	s := newTestStore(t)

	a, err := s.Initialize(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, AdminID, a.ID)
	assert.Equal(t, "admin@example.com", a.Email)
	assert.Equal(t, common.RoleAdmin, a.Role)
	assert.NotEqual(t, []byte("s3cret"), a.PasswordHash)
	assert.True(t, s.CheckPassword(a, "s3cret"))
	assert.False(t, s.CheckPassword(a, "S3cret"))
}

func TestInitialize_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Initialize(ctx, "admin@example.com", "one")
	require.NoError(t, err)

	second, err := s.Initialize(ctx, "other@example.com", "two")
	require.NoError(t, err)

	assert.Equal(t, first.Email, second.Email)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)
	assert.True(t, s.CheckPassword(second, "one"))
}

func TestInitialize_EmptyInput(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Initialize(context.Background(), "", "pw")
	require.ErrorIs(t, err, ErrEmptyCredentials)

	_, err = s.Initialize(context.Background(), "a@b.co", "")
	require.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestFindByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.FindByEmail(ctx, "admin@example.com")
	require.ErrorIs(t, err, common.ErrNotFound, "empty store")

	_, err = s.Initialize(ctx, "admin@example.com", "pw")
	require.NoError(t, err)

	got, err := s.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, AdminID, got.ID)

	_, err = s.FindByEmail(ctx, "Admin@Example.com")
	require.ErrorIs(t, err, common.ErrNotFound, "lookup is case-sensitive")
}

func TestFindByEmail_ReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.Initialize(ctx, "admin@example.com", "pw")
	require.NoError(t, err)

	a, err := s.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	a.Email = "changed@example.com"
	a.PasswordHash[0] ^= 0xff

	b, err := s.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, s.CheckPassword(b, "pw"))
}

func TestDummyCheck_Concurrent(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.DummyCheck("whatever")
		}()
	}
	wg.Wait()
	assert.NotEmpty(t, s.dummyHash)
}
