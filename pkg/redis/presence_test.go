package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	InitWithClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() {
		_ = Close()
		client = nil
	})
	return mr
}

func TestSetAndGetUserPresence(t *testing.T) {
	setupMiniredis(t)

	require.NoError(t, SetUserPresence("alice", "online"))

	presence, err := GetUserPresence("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", presence.Username)
	assert.Equal(t, "online", presence.Status)
	assert.True(t, presence.Connected)

	online, err := IsUserOnline("alice")
	require.NoError(t, err)
	assert.True(t, online)
}

func TestOfflinePresence(t *testing.T) {
	setupMiniredis(t)

	require.NoError(t, SetUserPresence("bob", "offline"))

	presence, err := GetUserPresence("bob")
	require.NoError(t, err)
	assert.Equal(t, "offline", presence.Status)
	assert.False(t, presence.Connected)
}

func TestPresenceExpires(t *testing.T) {
	mr := setupMiniredis(t)

	require.NoError(t, SetUserPresence("alice", "online"))

	// past the TTL the key disappears and the user counts as offline
	mr.FastForward(PresenceTTL * 2)

	online, err := IsUserOnline("alice")
	require.NoError(t, err)
	assert.False(t, online)
}

func TestUnknownUserNotOnline(t *testing.T) {
	setupMiniredis(t)

	online, err := IsUserOnline("ghost")
	require.NoError(t, err)
	assert.False(t, online)
}

func TestPopularPageCache(t *testing.T) {
	setupMiniredis(t)

	// cache miss returns empty string, not an error
	data, err := GetCachedPopularPage(1)
	require.NoError(t, err)
	assert.Empty(t, data)

	raw := `{"results":[{"id":1,"title":"A"}]}`
	require.NoError(t, CachePopularPage(1, raw))

	data, err = GetCachedPopularPage(1)
	require.NoError(t, err)
	assert.Equal(t, raw, data)

	// pages are cached independently
	data, err = GetCachedPopularPage(2)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestCacheToleratesMissingClient(t *testing.T) {
	client = nil

	data, err := GetCachedPopularPage(1)
	assert.NoError(t, err)
	assert.Empty(t, data)

	assert.NoError(t, CachePopularPage(1, "x"))
}
