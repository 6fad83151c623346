package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/taeold/gemini-cli-core-codelab/internal/config"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

// ListDirectoryTool lists the immediate children of a workspace directory.
type ListDirectoryTool struct {
	fileOps      fileSystem
	pathResolver pathResolver
	ignore       ignoreMatcher
	config       *config.Config
}

// NewListDirectoryTool creates a new ListDirectoryTool with injected dependencies.
// ignore may be nil, in which case nothing is hidden.
func NewListDirectoryTool(fileOps fileSystem, pathResolver pathResolver, ignore ignoreMatcher, cfg *config.Config) *ListDirectoryTool {
	return &ListDirectoryTool{
		fileOps:      fileOps,
		pathResolver: pathResolver,
		ignore:       ignore,
		config:       cfg,
	}
}

func (t *ListDirectoryTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "list_directory",
		Description: "Lists the files and subdirectories of a workspace directory. Directories end with '/'. Gitignored entries are hidden.",
		Parameters:  tool.SchemaFor[ListDirectoryRequest](),
	}
}

func (t *ListDirectoryTool) NewRequest() any { return &ListDirectoryRequest{} }

func (t *ListDirectoryTool) Confirmation(ctx context.Context, req any) (*tool.ConfirmationDetails, error) {
	return nil, nil
}

// Execute lists directories first, then files, each group sorted by name.
func (t *ListDirectoryTool) Execute(ctx context.Context, req any) (*tool.Result, error) {
	r := req.(*ListDirectoryRequest)
	target := r.Path
	if target == "" {
		target = "."
	}

	abs, err := t.pathResolver.Abs(target)
	if err != nil {
		return nil, err
	}
	rel, err := t.pathResolver.Rel(abs)
	if err != nil {
		return nil, err
	}

	info, err := t.fileOps.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, rel)
		}
		return nil, &StatError{Path: abs, Cause: err}
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, rel)
	}

	entries, err := t.fileOps.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", rel, err)
	}

	var dirs, files []string
	hidden := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		entryRel := filepath.ToSlash(filepath.Join(rel, entry.Name()))
		if t.ignore != nil && t.ignore.ShouldIgnore(entryRel, entry.IsDir()) {
			hidden++
			continue
		}
		if entry.IsDir() {
			dirs = append(dirs, entry.Name()+"/")
		} else {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)
	names := append(dirs, files...)

	truncated := false
	if maxResults := t.config.Tools.MaxListDirectoryResults; len(names) > maxResults {
		names = names[:maxResults]
		truncated = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Directory listing for %s:\n", rel)
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	if truncated {
		fmt.Fprintf(&b, "[Results capped at %d entries.]\n", t.config.Tools.MaxListDirectoryResults)
	}
	if hidden > 0 {
		fmt.Fprintf(&b, "(%d gitignored entries hidden)\n", hidden)
	}

	return &tool.Result{
		LLMContent: b.String(),
		Display:    fmt.Sprintf("Listed %d entries in %s", len(names), rel),
	}, nil
}
