package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazechase/internal/levels"
	"github.com/vovakirdan/mazechase/internal/storage"
)

func TestSeedMaps(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	bundled, err := levels.LoadBundled()
	require.NoError(t, err)
	want := len(bundled.Maps())

	n, err := seedMaps(store, bundled, false)
	require.NoError(t, err)
	assert.Equal(t, want, n)

	n, err = seedMaps(store, bundled, false)
	require.NoError(t, err)
	assert.Zero(t, n, "a database with maps is left alone")

	n, err = seedMaps(store, bundled, true)
	require.NoError(t, err)
	assert.Equal(t, want, n)

	nums, err := store.Levels()
	require.NoError(t, err)
	assert.Len(t, nums, want)

	stored, err := store.LoadMap(1)
	require.NoError(t, err)
	assert.Equal(t, bundled.Maps()[0].Layout.Width(), stored.Width())
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, filepath.Join("/home/tester", ".mazechase/x.log"), expandHome("~/.mazechase/x.log"))
	assert.Equal(t, "/var/log/x.log", expandHome("/var/log/x.log"))
}

func TestStoredBest(t *testing.T) {
	logger := log.New(io.Discard)
	assert.Zero(t, storedBest(nil, logger))

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	assert.Zero(t, storedBest(store, logger))
	require.NoError(t, store.RecordScore("a", 120, 1))
	require.NoError(t, store.RecordScore("b", 340, 2))
	assert.Equal(t, 340, storedBest(store, logger))
}
