package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFiles_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	files, err := CollectFiles(path, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestCollectFiles_DirectoryIsRecursiveAndSorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"b.hcl", "a.hcl", "sub/c.hcl", "ignore.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := CollectFiles(dir, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "sub", "c.hcl"),
	}, files)
}

func TestCollectFiles_EmptyDirectory(t *testing.T) {
	t.Parallel()

	_, err := CollectFiles(t.TempDir(), ".hcl")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no .hcl files found")
}

func TestCollectFiles_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := CollectFiles(filepath.Join(t.TempDir(), "nope"), ".hcl")
	assert.Error(t, err)
}
