package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore_Unit(t *testing.T) {
	// No disk I/O is performed with an in-memory filesystem.
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	filePath := "about/ko.html"
	fileContent := "<main lang=\"ko\">저희 소개</main>"

	t.Run("Save", func(t *testing.T) {
		bytesWritten, err := store.Save(ctx, filePath, bytes.NewReader([]byte(fileContent)))

		require.NoError(t, err)
		assert.Equal(t, int64(len(fileContent)), bytesWritten)

		exists, err := afero.Exists(memFs, filePath)
		require.NoError(t, err)
		assert.True(t, exists, "file should exist after saving")

		readBytes, err := afero.ReadFile(memFs, filePath)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	t.Run("Save overwrites", func(t *testing.T) {
		_, err := store.Save(ctx, filePath, bytes.NewReader([]byte("short")))
		require.NoError(t, err)

		readBytes, err := afero.ReadFile(memFs, filePath)
		require.NoError(t, err)
		assert.Equal(t, "short", string(readBytes))
	})

	t.Run("Open", func(t *testing.T) {
		file, err := store.Open(ctx, filePath)
		require.NoError(t, err)
		defer file.Close()

		readBytes, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "short", string(readBytes))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, filePath))

		exists, err := afero.Exists(memFs, filePath)
		require.NoError(t, err)
		assert.False(t, exists, "file should not exist after deleting")
	})

	t.Run("Open non-existent file", func(t *testing.T) {
		_, err := store.Open(ctx, "path/to/nothing.txt")
		assert.Error(t, err, "opening a non-existent file should return an error")
	})

	t.Run("rejects traversal", func(t *testing.T) {
		_, err := store.Save(ctx, "../escape.html", bytes.NewReader(nil))
		assert.Error(t, err)

		_, err = store.Save(ctx, "", bytes.NewReader(nil))
		assert.Error(t, err)
	})
}

func TestDirStore(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)

	_, err := store.Save(context.Background(), "about/en.html", bytes.NewReader([]byte("hi")))
	require.NoError(t, err)

	got, err := afero.ReadFile(afero.NewOsFs(), dir+"/about/en.html")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(got))
}
