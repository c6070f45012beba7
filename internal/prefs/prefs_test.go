package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/epeers/stocklens/internal/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := prefs.NewFileStore(filepath.Join(t.TempDir(), "nested", "prefs.json"))

	v, ok, err := store.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)

	require.NoError(t, store.Delete("theme"))
	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err), "delete of a missing key should not create the file")
}

func TestFileStore_SetGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	store := prefs.NewFileStore(path)

	require.NoError(t, store.Set("theme", "dark"))
	require.NoError(t, store.Set("other", "x"))

	// a fresh handle sees the persisted values
	reopened := prefs.NewFileStore(path)
	v, ok, err := reopened.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	require.NoError(t, reopened.Delete("theme"))
	_, ok, err = store.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err = store.Get("other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	store := prefs.NewFileStore(path)

	_, _, err := store.Get("theme")
	assert.Error(t, err)
	assert.Error(t, store.Set("theme", "dark"))

	// the corrupt file is left alone
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(b))
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, ok, err := prefs.NewFileStore(path).Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)
}
