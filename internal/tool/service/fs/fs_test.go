package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_CreatesFileWithPerm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	err := NewOSFileSystem().WriteFileAtomic(path, []byte("hello"), 0o600)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, NewOSFileSystem().WriteFileAtomic(path, []byte("new"), 0o644))

	data, _ := os.ReadFile(path)
	assert.Equal(t, "new", string(data))
}

func TestWriteFileAtomic_MissingDir_ReturnsTempFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")

	err := NewOSFileSystem().WriteFileAtomic(path, []byte("x"), 0o644)

	var tmpErr *TempFileError
	assert.ErrorAs(t, err, &tmpErr)
}

func TestReadFile_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	_, err := NewOSFileSystem().ReadFile(path, 5)

	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestReadFile_Directory(t *testing.T) {
	_, err := NewOSFileSystem().ReadFile(t.TempDir(), 0)

	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestIsBinary(t *testing.T) {
	assert.False(t, IsBinary(nil))
	assert.False(t, IsBinary([]byte("package main\n\nfunc main() {}\n")))
	assert.False(t, IsBinary([]byte(`{"a": 1}`)))
	assert.True(t, IsBinary([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d}))
}
