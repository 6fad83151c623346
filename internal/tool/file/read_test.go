package file

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool/service/path"
)

func TestReadFile(t *testing.T) {
	w := newWorkspace(t)
	w.write(t, "notes.txt", "one\ntwo\nthree\nfour\n")
	readTool := NewReadFileTool(w.fs, w.resolver, w.cfg)

	t.Run("reads whole file", func(t *testing.T) {
		res, err := readTool.Execute(context.Background(), &ReadFileRequest{Path: "notes.txt"})
		require.NoError(t, err)
		assert.Equal(t, "one\ntwo\nthree\nfour\n", res.LLMContent)
		assert.Equal(t, "Read 4 lines from notes.txt", res.Display)
	})

	t.Run("offset and limit select lines", func(t *testing.T) {
		res, err := readTool.Execute(context.Background(), &ReadFileRequest{Path: "notes.txt", Offset: 1, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, "[File content truncated: showing lines 2-3 of 4 total lines.]\ntwo\nthree\n", res.LLMContent)
	})

	t.Run("offset past end returns header only", func(t *testing.T) {
		res, err := readTool.Execute(context.Background(), &ReadFileRequest{Path: "notes.txt", Offset: 10})
		require.NoError(t, err)
		assert.Contains(t, res.LLMContent, "of 4 total lines")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readTool.Execute(context.Background(), &ReadFileRequest{Path: "nope.txt"})
		assert.ErrorIs(t, err, ErrFileMissing)
	})

	t.Run("directory", func(t *testing.T) {
		w.write(t, "sub/a.txt", "a")
		_, err := readTool.Execute(context.Background(), &ReadFileRequest{Path: "sub"})
		assert.ErrorIs(t, err, ErrIsDirectory)
	})

	t.Run("outside workspace", func(t *testing.T) {
		_, err := readTool.Execute(context.Background(), &ReadFileRequest{Path: "../escape.txt"})
		assert.ErrorIs(t, err, path.ErrOutsideWorkspace)
	})

	t.Run("binary file rejected", func(t *testing.T) {
		w.write(t, "image.png", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01")
		_, err := readTool.Execute(context.Background(), &ReadFileRequest{Path: "image.png"})
		assert.ErrorIs(t, err, ErrBinaryFile)
	})

	t.Run("too large", func(t *testing.T) {
		cfg := *w.cfg
		cfg.Tools.MaxFileSize = 3
		small := NewReadFileTool(w.fs, w.resolver, &cfg)
		_, err := small.Execute(context.Background(), &ReadFileRequest{Path: "notes.txt"})
		assert.Error(t, err)
	})
}

func TestReadFileRequest_Validate(t *testing.T) {
	assert.ErrorIs(t, (&ReadFileRequest{}).Validate(), ErrPathRequired)
	assert.ErrorIs(t, (&ReadFileRequest{Path: "a", Offset: -1}).Validate(), ErrInvalidOffset)
	assert.ErrorIs(t, (&ReadFileRequest{Path: "a", Limit: -1}).Validate(), ErrInvalidLimit)
	assert.NoError(t, (&ReadFileRequest{Path: "a", Offset: 2, Limit: 5}).Validate())
}

func TestReadFile_NeedsNoConfirmation(t *testing.T) {
	w := newWorkspace(t)
	details, err := NewReadFileTool(w.fs, w.resolver, w.cfg).Confirmation(context.Background(), &ReadFileRequest{Path: "x"})
	require.NoError(t, err)
	assert.Nil(t, details)
}
