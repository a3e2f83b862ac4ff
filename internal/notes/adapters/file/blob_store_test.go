package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapmemo/internal/notes/adapters/file"
)

func TestBlobStore_SetGet(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "prefs")
	store := file.NewBlobStore(dir)

	payload := []byte(`[{"id":"1"}]`)
	require.NoError(t, store.Set(ctx, "notes", payload))

	onDisk, err := os.ReadFile(filepath.Join(dir, "notes.json"))
	require.NoError(t, err)
	assert.Equal(t, payload, onDisk)

	value, err := store.Get(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, payload, value)

	assert.NoError(t, store.Close())
}

func TestBlobStore_GetMissing(t *testing.T) {
	store := file.NewBlobStore(t.TempDir())

	value, err := store.Get(context.Background(), "notes")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestBlobStore_OverwriteLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := file.NewBlobStore(dir)

	require.NoError(t, store.Set(ctx, "notes", []byte("first")))
	require.NoError(t, store.Set(ctx, "notes", []byte("second")))

	value, err := store.Get(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), value)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes.json", entries[0].Name())
}

func TestBlobStore_InvalidKey(t *testing.T) {
	ctx := context.Background()
	store := file.NewBlobStore(t.TempDir())

	for _, key := range []string{"", ".", "..", "../escape", `a\b`} {
		t.Run(key, func(t *testing.T) {
			_, err := store.Get(ctx, key)
			assert.ErrorIs(t, err, file.ErrInvalidKey)

			err = store.Set(ctx, key, []byte("x"))
			assert.ErrorIs(t, err, file.ErrInvalidKey)
		})
	}
}

func TestBlobStore_UnwritableDir(t *testing.T) {
	ctx := context.Background()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o600))

	store := file.NewBlobStore(filepath.Join(blocker, "prefs"))

	err := store.Set(ctx, "notes", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), file.ErrWriteFile)
}
