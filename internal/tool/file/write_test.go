package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

func TestWriteFile_Confirmation(t *testing.T) {
	w := newWorkspace(t)
	writeTool := NewWriteFileTool(w.fs, w.resolver, w.cfg)

	t.Run("new file shows additions", func(t *testing.T) {
		details, err := writeTool.Confirmation(context.Background(), &WriteFileRequest{FilePath: "hello.txt", Content: "hello\nworld\n"})
		require.NoError(t, err)
		require.NotNil(t, details)
		assert.Equal(t, tool.ConfirmEdit, details.Kind)
		assert.Equal(t, "Confirm Create: hello.txt (+2 -0)", details.Title)
		assert.Contains(t, details.Description, "+hello\n+world\n")
	})

	t.Run("existing file shows replacement", func(t *testing.T) {
		w.write(t, "greet.txt", "hi\nthere\n")
		details, err := writeTool.Confirmation(context.Background(), &WriteFileRequest{FilePath: "greet.txt", Content: "hi\nfriend\n"})
		require.NoError(t, err)
		assert.Equal(t, "Confirm Write: greet.txt (+1 -1)", details.Title)
		assert.Contains(t, details.Description, " hi\n")
		assert.Contains(t, details.Description, "-there\n")
		assert.Contains(t, details.Description, "+friend\n")
	})

	t.Run("existing empty file is a write", func(t *testing.T) {
		w.write(t, "empty.txt", "")
		details, err := writeTool.Confirmation(context.Background(), &WriteFileRequest{FilePath: "empty.txt", Content: "now\n"})
		require.NoError(t, err)
		assert.Equal(t, "Confirm Write: empty.txt (+1 -0)", details.Title)
	})

	t.Run("confirmation does not touch disk", func(t *testing.T) {
		_, err := writeTool.Confirmation(context.Background(), &WriteFileRequest{FilePath: "ghost.txt", Content: "boo"})
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(w.root, "ghost.txt"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestWriteFile_Execute(t *testing.T) {
	w := newWorkspace(t)
	writeTool := NewWriteFileTool(w.fs, w.resolver, w.cfg)

	t.Run("creates parent directories", func(t *testing.T) {
		res, err := writeTool.Execute(context.Background(), &WriteFileRequest{FilePath: "a/b/c.txt", Content: "deep"})
		require.NoError(t, err)
		assert.Equal(t, "Created a/b/c.txt (4 bytes)", res.LLMContent)

		data, err := os.ReadFile(filepath.Join(w.root, "a/b/c.txt"))
		require.NoError(t, err)
		assert.Equal(t, "deep", string(data))

		info, err := os.Stat(filepath.Join(w.root, "a/b/c.txt"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("overwrite keeps mode", func(t *testing.T) {
		abs := w.write(t, "secret.txt", "old")
		require.NoError(t, os.Chmod(abs, 0o600))

		res, err := writeTool.Execute(context.Background(), &WriteFileRequest{FilePath: "secret.txt", Content: "new"})
		require.NoError(t, err)
		assert.Equal(t, "Overwrote secret.txt (3 bytes)", res.LLMContent)

		info, err := os.Stat(abs)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("content too large", func(t *testing.T) {
		cfg := *w.cfg
		cfg.Tools.MaxFileSize = 2
		small := NewWriteFileTool(w.fs, w.resolver, &cfg)
		_, err := small.Execute(context.Background(), &WriteFileRequest{FilePath: "big.txt", Content: "too big"})
		assert.ErrorIs(t, err, ErrContentTooLarge)
	})

	t.Run("directory target", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(w.root, "dir"), 0o755))
		_, err := writeTool.Execute(context.Background(), &WriteFileRequest{FilePath: "dir", Content: "x"})
		assert.ErrorIs(t, err, ErrIsDirectory)
	})
}

func TestWriteFile_Target(t *testing.T) {
	w := newWorkspace(t)
	writeTool := NewWriteFileTool(w.fs, w.resolver, w.cfg)

	assert.Equal(t, filepath.Join(w.root, "x.txt"), writeTool.Target(&WriteFileRequest{FilePath: "x.txt"}))
	assert.Equal(t, writeTool.Target(&WriteFileRequest{FilePath: "./x.txt"}), writeTool.Target(&WriteFileRequest{FilePath: "x.txt"}))
}
