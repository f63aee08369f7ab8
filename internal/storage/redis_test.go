package storage

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	compasserrors "github.com/compasshq/compass/internal/errors"
)

func setupRedisKV(t *testing.T) (*RedisKV, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	kv, err := NewRedisKV(mr.Addr(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	return kv, mr
}

func TestNewRedisKV(t *testing.T) {
	t.Run("rejects empty address", func(t *testing.T) {
		_, err := NewRedisKV("", zerolog.Nop())
		require.Error(t, err)
	})

	t.Run("unreachable server fails fast", func(t *testing.T) {
		_, err := NewRedisKV("127.0.0.1:1", zerolog.Nop())
		require.Error(t, err)
		assert.ErrorIs(t, err, compasserrors.ErrStorageUnavailable)
	})
}

func TestRedisKVRoundTrip(t *testing.T) {
	kv, mr := setupRedisKV(t)

	require.True(t, kv.Set("things", payload{Name: "widget", Count: 2}))

	var got payload
	require.True(t, kv.Get("things", &got))
	assert.Equal(t, payload{Name: "widget", Count: 2}, got)

	// Keys are namespaced so Compass can share the instance.
	assert.True(t, mr.Exists("compass:things"))
}

func TestRedisKVGetMissing(t *testing.T) {
	kv, _ := setupRedisKV(t)

	var got payload
	assert.False(t, kv.Get("absent", &got))
	assert.Zero(t, got)
}

func TestRedisKVGetCorrupt(t *testing.T) {
	kv, mr := setupRedisKV(t)
	require.NoError(t, mr.Set("compass:bad", "{not json"))

	var got payload
	assert.False(t, kv.Get("bad", &got))
}

func TestRedisKVRemove(t *testing.T) {
	kv, mr := setupRedisKV(t)
	require.True(t, kv.Set("gone", payload{Name: "x"}))

	assert.True(t, kv.Remove("gone"))
	assert.False(t, mr.Exists("compass:gone"))

	assert.True(t, kv.Remove("gone"), "removing an absent key succeeds")
}

func TestRedisKVServerGone(t *testing.T) {
	kv, mr := setupRedisKV(t)
	mr.Close()

	var got payload
	assert.False(t, kv.Get("things", &got))
	assert.False(t, kv.Set("things", payload{Name: "x"}))
	assert.False(t, kv.Remove("things"))
}
