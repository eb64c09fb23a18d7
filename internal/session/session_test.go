package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/cosmopedia/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	sess := &session.Session{ID: "s1", UserID: 7, Username: "a", CreatedAt: time.Now()}
	require.NoError(t, store.Create(ctx, sess, time.Hour))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, "a", got.Username)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	sess := &session.Session{ID: "s1", UserID: 1}
	require.NoError(t, store.Create(ctx, sess, -time.Second))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestMemoryStoreDeleteByUser(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &session.Session{ID: "s1", UserID: 1}, time.Hour))
	require.NoError(t, store.Create(ctx, &session.Session{ID: "s2", UserID: 1}, time.Hour))
	require.NoError(t, store.Create(ctx, &session.Session{ID: "s3", UserID: 2}, time.Hour))

	require.NoError(t, store.DeleteByUser(ctx, 1))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = store.Get(ctx, "s2")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = store.Get(ctx, "s3")
	assert.NoError(t, err)
}
