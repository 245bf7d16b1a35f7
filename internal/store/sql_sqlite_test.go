package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	s, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestSQLite_UserLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	repo := s.UserRepository

	require.NoError(t, s.Pinger.Ping(ctx))

	name := "Alice"
	alice, err := repo.CreateUser(ctx, models.User{Email: "a@x.com", PasswordHash: "h1", Name: &name})
	require.NoError(t, err)
	bob, err := repo.CreateUser(ctx, models.User{Email: "b@x.com", PasswordHash: "h2"})
	require.NoError(t, err)
	assert.Less(t, alice.ID, bob.ID)

	_, err = repo.CreateUser(ctx, models.User{Email: "a@x.com", PasswordHash: "h3"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := repo.FindUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
	assert.Equal(t, "h1", found.PasswordHash)
	require.NotNil(t, found.Name)
	assert.Equal(t, "Alice", *found.Name)
	assert.True(t, alice.CreatedAt.Equal(found.CreatedAt), "created_at %v != %v", alice.CreatedAt, found.CreatedAt)

	byID, err := repo.FindUserByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", byID.Email)
	assert.Nil(t, byID.Name)

	_, err = repo.FindUserByID(ctx, 9999)
	assert.True(t, errors.Is(err, ErrNoUserWasFound))

	total, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	all, err := repo.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []int64{alice.ID, bob.ID}, []int64{all[0].ID, all[1].ID})

	page, err := repo.ListUsers(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, bob.ID, page[0].ID)

	beyond, err := repo.ListUsers(ctx, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.Error(t, err)
}

func TestStorages_CloseWithoutDB(t *testing.T) {
	assert.NoError(t, (&Storages{}).Close())
}
