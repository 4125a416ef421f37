package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/store"
)

func TestLoadCollectionMissingKey(t *testing.T) {
	repo := NewUserRepo(store.NewMemoryStore())

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoadCollectionMalformedEntry(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.Put(ctx, store.KeyUsers, []byte("{not json")))

	repo := NewUserRepo(st)

	// A value that fails to parse reads as empty instead of erroring.
	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	// And the next write replaces the garbage wholesale.
	require.NoError(t, repo.Append(ctx, model.User{ID: "u1", Email: "a@example.com"}))
	users, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAppendRejectsDuplicateEmail(t *testing.T) {
	repo := NewUserRepo(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, model.User{ID: "u1", Email: "a@example.com"}))
	err := repo.Append(ctx, model.User{ID: "u2", Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrEmailExists)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFindByEmailNormalizes(t *testing.T) {
	repo := NewUserRepo(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, model.User{ID: "u1", Email: "arjun@example.com"}))

	u, err := repo.FindByEmail(ctx, "  ARJUN@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
