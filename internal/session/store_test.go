package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"go-property-listing/internal/model"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewStore(rdb), mr
}

func TestNewSessionID(t *testing.T) {
	t.Parallel()

	first := NewSessionID()
	second := NewSessionID()
	require.NotEmpty(t, first)
	require.NotEqual(t, first, second)
}

func TestStorePutGet(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	t.Run("round trips a stored token", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "1", "sess-a", "token-1", time.Hour))

		got, err := store.Get(ctx, "1", "sess-a")
		require.NoError(t, err)
		require.Equal(t, "token-1", got)
	})

	t.Run("missing session reports not found", func(t *testing.T) {
		_, err := store.Get(ctx, "1", "no-such-session")
		require.ErrorIs(t, err, model.ErrSessionNotFound)
	})

	t.Run("sessions are scoped per user", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "1", "shared", "token-user-1", time.Hour))

		_, err := store.Get(ctx, "2", "shared")
		require.ErrorIs(t, err, model.ErrSessionNotFound)
	})
}

func TestStoreRotationOverwrites(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "1", "sess-a", "old-token", time.Hour))
	require.NoError(t, store.Put(ctx, "1", "sess-a", "new-token", time.Hour))

	got, err := store.Get(ctx, "1", "sess-a")
	require.NoError(t, err)
	require.Equal(t, "new-token", got)
}

func TestStoreRevoke(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "1", "sess-a", "token-1", time.Hour))
	require.NoError(t, store.Revoke(ctx, "1", "sess-a"))

	_, err := store.Get(ctx, "1", "sess-a")
	require.ErrorIs(t, err, model.ErrSessionNotFound)

	// Revoking again is a no-op, not an error.
	require.NoError(t, store.Revoke(ctx, "1", "sess-a"))
}

func TestStoreTTLExpiry(t *testing.T) {
	t.Parallel()

	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "1", "sess-a", "token-1", time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "1", "sess-a")
	require.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestStoreBackendDown(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := NewStore(rdb)
	ctx := context.Background()

	mr.Close()

	require.ErrorIs(t, store.Put(ctx, "1", "sess-a", "token-1", time.Hour), model.ErrBackendUnavailable)

	_, err := store.Get(ctx, "1", "sess-a")
	require.ErrorIs(t, err, model.ErrBackendUnavailable)

	require.ErrorIs(t, store.Revoke(ctx, "1", "sess-a"), model.ErrBackendUnavailable)
}
