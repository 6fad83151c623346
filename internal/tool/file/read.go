package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/taeold/gemini-cli-core-codelab/internal/config"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool/service/fs"
)

// ReadFileTool reads text files inside the workspace. It never needs confirmation.
type ReadFileTool struct {
	fileOps      fileSystem
	pathResolver pathResolver
	config       *config.Config
}

// NewReadFileTool creates a new ReadFileTool with injected dependencies.
func NewReadFileTool(fileOps fileSystem, pathResolver pathResolver, cfg *config.Config) *ReadFileTool {
	return &ReadFileTool{
		fileOps:      fileOps,
		pathResolver: pathResolver,
		config:       cfg,
	}
}

func (t *ReadFileTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "read_file",
		Description: "Reads a text file from the workspace. Use offset and limit to page through large files by line.",
		Parameters:  tool.SchemaFor[ReadFileRequest](),
	}
}

func (t *ReadFileTool) NewRequest() any { return &ReadFileRequest{} }

func (t *ReadFileTool) Confirmation(ctx context.Context, req any) (*tool.ConfirmationDetails, error) {
	return nil, nil
}

// Execute reads the requested line range. Binary files and files over the
// configured size limit are rejected.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *ReadFileTool) Execute(ctx context.Context, req any) (*tool.Result, error) {
	r := req.(*ReadFileRequest)

	abs, err := t.pathResolver.Abs(r.Path)
	if err != nil {
		return nil, err
	}
	rel, err := t.pathResolver.Rel(abs)
	if err != nil {
		return nil, err
	}

	data, err := t.fileOps.ReadFile(abs, t.config.Tools.MaxFileSize)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, rel)
		case errors.Is(err, fs.ErrIsDirectory):
			return nil, fmt.Errorf("%w: %s", ErrIsDirectory, rel)
		}
		return nil, err
	}

	if fs.IsBinary(data) {
		return nil, fmt.Errorf("%w: %s (%s)", ErrBinaryFile, rel, fs.DetectMIME(data))
	}

	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	total := len(lines)

	start := min(r.Offset, total)
	end := total
	if r.Limit > 0 {
		end = min(start+r.Limit, total)
	}
	content := strings.Join(lines[start:end], "")

	if start > 0 || end < total {
		content = fmt.Sprintf("[File content truncated: showing lines %d-%d of %d total lines.]\n%s", start+1, end, total, content)
	}

	return &tool.Result{
		LLMContent: content,
		Display:    fmt.Sprintf("Read %d lines from %s", end-start, rel),
	}, nil
}
