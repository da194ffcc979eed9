package kvstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_GetMissingKey(t *testing.T) {
	s, _ := newRedisStore(t)

	value, ok, err := s.Get(context.Background(), "spontrip_user")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "spontrip_theme", "dark"))

	value, ok, err := s.Get(ctx, "spontrip_theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", value)

	// keys land under the namespace prefix
	assert.True(t, mr.Exists("spontrip:kv:spontrip_theme"))

	require.NoError(t, s.Delete(ctx, "spontrip_theme"))
	_, ok, err = s.Get(ctx, "spontrip_theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_SetOverwrites(t *testing.T) {
	s, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "spontrip_theme", "light"))
	require.NoError(t, s.Set(ctx, "spontrip_theme", "dark"))

	value, ok, err := s.Get(ctx, "spontrip_theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestMemoryStore_MatchesRedisSemantics(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v"))
	value, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", value)

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
