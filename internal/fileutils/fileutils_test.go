package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.txt")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Idempotent.
	require.NoError(t, EnsureDirectoryExists(dir))
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x", "y", "out.csv")

	require.NoError(t, WriteFile(path, []byte("data"), 0o644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestListFilesWithExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.pdf", "c.PDF", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "d.pdf"), []byte("x"), 0o644))

	files, err := ListFilesWithExtension(dir, ".pdf")
	require.NoError(t, err)

	require.Len(t, files, 4)
	assert.Equal(t, filepath.Join(dir, "a.pdf"), files[0])
	for _, f := range files {
		assert.NotContains(t, f, "notes.txt")
	}

	_, err = ListFilesWithExtension(filepath.Join(dir, "missing"), ".pdf")
	assert.Error(t, err)
}
