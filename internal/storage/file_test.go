package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func setupFileKV(t *testing.T) (*FileKV, string) {
	t.Helper()
	dir := t.TempDir()

	kv, err := NewFileKV(dir, zerolog.Nop())
	require.NoError(t, err)
	return kv, dir
}

func TestNewFileKV(t *testing.T) {
	t.Run("creates data directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		_, err := NewFileKV(dir, zerolog.Nop())
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("rejects empty dir", func(t *testing.T) {
		_, err := NewFileKV("", zerolog.Nop())
		require.Error(t, err)
	})
}

func TestFileKVRoundTrip(t *testing.T) {
	kv, dir := setupFileKV(t)

	require.True(t, kv.Set("things", payload{Name: "widget", Count: 3}))

	var got payload
	require.True(t, kv.Get("things", &got))
	assert.Equal(t, payload{Name: "widget", Count: 3}, got)

	// One pretty-printed JSON file per key.
	data, err := os.ReadFile(filepath.Join(dir, "things.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"name\": \"widget\"")
}

func TestFileKVGetMissing(t *testing.T) {
	kv, _ := setupFileKV(t)

	var got payload
	assert.False(t, kv.Get("absent", &got))
	assert.Zero(t, got)
}

func TestFileKVGetCorrupt(t *testing.T) {
	kv, dir := setupFileKV(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o600))

	var got payload
	assert.False(t, kv.Get("bad", &got), "corrupt payload reads as a miss")
}

func TestFileKVRemove(t *testing.T) {
	kv, dir := setupFileKV(t)
	require.True(t, kv.Set("gone", payload{Name: "x"}))

	assert.True(t, kv.Remove("gone"))
	_, err := os.Stat(filepath.Join(dir, "gone.json"))
	assert.True(t, os.IsNotExist(err))

	assert.True(t, kv.Remove("gone"), "removing an absent key succeeds")
}

func TestFileKVOverwrite(t *testing.T) {
	kv, _ := setupFileKV(t)

	require.True(t, kv.Set("k", payload{Name: "first"}))
	require.True(t, kv.Set("k", payload{Name: "second"}))

	var got payload
	require.True(t, kv.Get("k", &got))
	assert.Equal(t, "second", got.Name)
}

func TestFileKVNoStrayTempFiles(t *testing.T) {
	kv, dir := setupFileKV(t)
	require.True(t, kv.Set("k", payload{Name: "v"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}
