package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/iconswap/pkg/settings"
)

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := settings.NewFileStore(filepath.Join(t.TempDir(), "settings.toml"))

	_, ok := store.Get("active_pack")
	assert.False(t, ok)
}

func TestFileStore_SetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	store := settings.NewFileStore(path)

	require.NoError(t, store.Set("active_pack", "packs/material.json"))

	// A fresh store reloads the value from disk
	reloaded := settings.NewFileStore(path)
	v, ok := reloaded.Get("active_pack")
	assert.True(t, ok)
	assert.Equal(t, "packs/material.json", v)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	store := settings.NewFileStore(path)

	require.NoError(t, store.Set("a", "1"))
	require.NoError(t, store.Set("b", "2"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a = ")

	v, ok := store.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0644))

	store := settings.NewFileStore(path)

	// Reads degrade to an empty store instead of failing
	_, ok := store.Get("active_pack")
	assert.False(t, ok)
}
