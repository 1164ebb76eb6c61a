package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestFileStore_SaveLoadRoundtrip(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyStudyGoal, []byte("4.5")))

	got, err := store.Load(ctx, KeyStudyGoal)
	require.NoError(t, err)
	assert.Equal(t, []byte("4.5"), got)
}

func TestFileStore_LoadMissingKey(t *testing.T) {
	store := newFileStore(t)

	_, err := store.Load(context.Background(), "never-written")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyStudyGoal, []byte("1")))
	require.NoError(t, store.Save(ctx, KeyStudyGoal, []byte("2")))

	got, err := store.Load(ctx, KeyStudyGoal)
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
}

func TestFileStore_EraseIsIdempotent(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyStudyGoal, []byte("3")))
	require.NoError(t, store.Erase(ctx, KeyStudyGoal))

	_, err := store.Load(ctx, KeyStudyGoal)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// erasing a key that is already gone must not fail
	require.NoError(t, store.Erase(ctx, KeyStudyGoal))
}

func TestFileStore_KeysAreIsolated(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyStudyGoal, []byte("4")))
	require.NoError(t, store.Save(ctx, KeyTimerStats, []byte("{}")))
	require.NoError(t, store.Erase(ctx, KeyStudyGoal))

	got, err := store.Load(ctx, KeyTimerStats)
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), got)
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), KeyStudyGoal, []byte("4")))

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches, "atomic writes must clean up their temp file")
}

func TestFileStore_PingChecksDirectory(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	assert.NoError(t, store.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, store.Ping(context.Background()))
}
