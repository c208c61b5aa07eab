package redis

import (
	"context"
	"pilates-vision-service/internal/app/contracts"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*miniredis.Miniredis, contracts.CacheRepository) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, NewCacheRepository(client)
}

func TestClaimAndRelease(t *testing.T) {
	ctx := context.Background()
	key := "lock:instructor:i1"

	t.Run("owner releases its claim", func(t *testing.T) {
		server, repository := newTestRepository(t)

		claimed, err := repository.Claim(ctx, key, "token-a", time.Minute)
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = repository.Claim(ctx, key, "token-b", time.Minute)
		require.NoError(t, err)
		assert.False(t, claimed)

		outcome, err := repository.Release(ctx, key, "token-a")
		require.NoError(t, err)
		assert.Equal(t, contracts.ReleaseDeleted, outcome)
		assert.False(t, server.Exists(key))
	})

	t.Run("foreign token leaves the claim in place", func(t *testing.T) {
		server, repository := newTestRepository(t)

		_, err := repository.Claim(ctx, key, "token-a", time.Minute)
		require.NoError(t, err)

		outcome, err := repository.Release(ctx, key, "token-b")
		require.NoError(t, err)
		assert.Equal(t, contracts.ReleaseForeign, outcome)

		held, err := server.Get(key)
		require.NoError(t, err)
		assert.Equal(t, "token-a", held)
	})

	t.Run("expired claim", func(t *testing.T) {
		server, repository := newTestRepository(t)

		_, err := repository.Claim(ctx, key, "token-a", time.Second)
		require.NoError(t, err)
		server.FastForward(2 * time.Second)

		outcome, err := repository.Release(ctx, key, "token-a")
		require.NoError(t, err)
		assert.Equal(t, contracts.ReleaseExpired, outcome)

		claimed, err := repository.Claim(ctx, key, "token-b", time.Second)
		require.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("unreachable server", func(t *testing.T) {
		server, repository := newTestRepository(t)
		server.Close()

		_, err := repository.Release(ctx, key, "token-a")
		assert.Error(t, err)
	})
}

func TestGetJSONDropsUnreadableDocument(t *testing.T) {
	ctx := context.Background()
	server, repository := newTestRepository(t)
	require.NoError(t, server.Set("students:all", "{not json"))

	var dest []string
	found, err := repository.GetJSON(ctx, "students:all", &dest)

	assert.Error(t, err)
	assert.False(t, found)
	assert.False(t, server.Exists("students:all"))
}
