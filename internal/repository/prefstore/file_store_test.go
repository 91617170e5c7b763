package prefstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/PizzaHomicide/lumix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "preferences.yaml"))

	prefs, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, prefs)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")
	store := NewFileStore(path)
	saved := domain.Preferences{DarkMode: false, Notifications: true, AutoplayTrailers: false}

	require.NoError(t, store.Save(context.Background(), saved))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, *loaded)

	// Only the preferences file should be left in the directory
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "notifications: true")
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preferences: ["), 0600))

	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorContains(t, err, "unable to parse preferences file")
}

func TestSaveIntoUnwritableLocation(t *testing.T) {
	// A regular file where the directory should be makes MkdirAll fail
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	err := NewFileStore(filepath.Join(blocker, "preferences.yaml")).Save(context.Background(), domain.Preferences{})
	assert.Error(t, err)
}
