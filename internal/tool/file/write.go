package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/taeold/gemini-cli-core-codelab/internal/config"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool/service/fs"
)

// WriteFileTool creates or overwrites files in the workspace.
// Every call needs confirmation; the prompt shows a line diff.
type WriteFileTool struct {
	fileOps      fileSystem
	pathResolver pathResolver
	config       *config.Config
}

// NewWriteFileTool creates a new WriteFileTool with injected dependencies.
func NewWriteFileTool(fileOps fileSystem, pathResolver pathResolver, cfg *config.Config) *WriteFileTool {
	return &WriteFileTool{
		fileOps:      fileOps,
		pathResolver: pathResolver,
		config:       cfg,
	}
}

func (t *WriteFileTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "write_file",
		Description: "Writes content to a file in the workspace, creating parent directories as needed. Overwrites existing files.",
		Parameters:  tool.SchemaFor[WriteFileRequest](),
	}
}

func (t *WriteFileTool) NewRequest() any { return &WriteFileRequest{} }

// Target returns the absolute path the call writes to.
func (t *WriteFileTool) Target(req any) string {
	r := req.(*WriteFileRequest)
	abs, err := t.pathResolver.Abs(r.FilePath)
	if err != nil {
		return r.FilePath
	}
	return abs
}

// Confirmation renders the diff between the current file content (empty for
// new files) and the proposed content. The diff is taken when the call is
// validated; an earlier write to the same path in the same batch is not
// reflected in it.
func (t *WriteFileTool) Confirmation(ctx context.Context, req any) (*tool.ConfirmationDetails, error) {
	r := req.(*WriteFileRequest)

	abs, rel, err := t.resolve(r.FilePath)
	if err != nil {
		return nil, err
	}
	old, exists, err := t.existingContent(abs)
	if err != nil {
		return nil, err
	}

	diffText, added, removed := lineDiff(rel, old, r.Content)
	title := fmt.Sprintf("Confirm Write: %s", rel)
	if !exists {
		title = fmt.Sprintf("Confirm Create: %s", rel)
	}

	return &tool.ConfirmationDetails{
		Kind:        tool.ConfirmEdit,
		Title:       fmt.Sprintf("%s (+%d -%d)", title, added, removed),
		Description: diffText,
	}, nil
}

// Execute writes the file atomically. Existing files keep their mode; new
// files get 0644.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *WriteFileTool) Execute(ctx context.Context, req any) (*tool.Result, error) {
	r := req.(*WriteFileRequest)

	abs, rel, err := t.resolve(r.FilePath)
	if err != nil {
		return nil, err
	}

	data := []byte(r.Content)
	if maxSize := t.config.Tools.MaxFileSize; int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: %s (size %d, limit %d)", ErrContentTooLarge, rel, len(data), maxSize)
	}

	perm := os.FileMode(0644)
	created := true
	info, err := t.fileOps.Stat(abs)
	switch {
	case err == nil:
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrIsDirectory, rel)
		}
		perm = info.Mode().Perm()
		created = false
	case !errors.Is(err, os.ErrNotExist):
		return nil, &StatError{Path: abs, Cause: err}
	}

	if err := t.fileOps.EnsureDirs(filepath.Dir(abs)); err != nil {
		return nil, &WriteError{Path: abs, Cause: err}
	}
	if err := t.fileOps.WriteFileAtomic(abs, data, perm); err != nil {
		return nil, &WriteError{Path: abs, Cause: err}
	}

	verb := "Overwrote"
	if created {
		verb = "Created"
	}
	msg := fmt.Sprintf("%s %s (%d bytes)", verb, rel, len(data))
	return &tool.Result{LLMContent: msg, Display: msg}, nil
}

func (t *WriteFileTool) resolve(p string) (string, string, error) {
	abs, err := t.pathResolver.Abs(p)
	if err != nil {
		return "", "", err
	}
	rel, err := t.pathResolver.Rel(abs)
	if err != nil {
		return "", "", err
	}
	return abs, rel, nil
}

// existingContent returns the file's content and whether it exists.
func (t *WriteFileTool) existingContent(abs string) (string, bool, error) {
	data, err := t.fileOps.ReadFile(abs, t.config.Tools.MaxFileSize)
	switch {
	case err == nil:
		return string(data), true, nil
	case errors.Is(err, os.ErrNotExist):
		return "", false, nil
	case errors.Is(err, fs.ErrIsDirectory):
		return "", false, fmt.Errorf("%w: %s", ErrIsDirectory, abs)
	}
	return "", false, err
}
