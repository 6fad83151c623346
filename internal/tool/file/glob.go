package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/taeold/gemini-cli-core-codelab/internal/config"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

// GlobTool finds workspace files matching a doublestar pattern.
type GlobTool struct {
	fileOps      fileSystem
	pathResolver pathResolver
	ignore       ignoreMatcher
	config       *config.Config
}

// NewGlobTool creates a new GlobTool with injected dependencies.
// ignore may be nil, in which case nothing is hidden.
func NewGlobTool(fileOps fileSystem, pathResolver pathResolver, ignore ignoreMatcher, cfg *config.Config) *GlobTool {
	return &GlobTool{
		fileOps:      fileOps,
		pathResolver: pathResolver,
		ignore:       ignore,
		config:       cfg,
	}
}

func (t *GlobTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "glob",
		Description: "Finds files whose workspace-relative path matches a glob pattern (e.g. **/*.go). Gitignored files are skipped.",
		Parameters:  tool.SchemaFor[GlobRequest](),
	}
}

func (t *GlobTool) NewRequest() any { return &GlobRequest{} }

func (t *GlobTool) Confirmation(ctx context.Context, req any) (*tool.ConfirmationDetails, error) {
	return nil, nil
}

// Execute returns matching file paths relative to the workspace root, sorted.
func (t *GlobTool) Execute(ctx context.Context, req any) (*tool.Result, error) {
	r := req.(*GlobRequest)

	if !doublestar.ValidatePattern(r.Pattern) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPattern, r.Pattern)
	}

	base := r.Path
	if base == "" {
		base = "."
	}
	abs, err := t.pathResolver.Abs(base)
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

	matches, err := doublestar.Glob(os.DirFS(abs), r.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var paths []string
	for _, m := range matches {
		p := path.Join(rel, m)
		if t.ignore != nil && t.isIgnored(p) {
			continue
		}
		paths = append(paths, p)
	}
	sort.Strings(paths)

	total := len(paths)
	maxResults := t.config.Tools.MaxGlobResults
	if total > maxResults {
		paths = paths[:maxResults]
	}

	if total == 0 {
		msg := fmt.Sprintf("No files found matching pattern %q in %s", r.Pattern, rel)
		return &tool.Result{LLMContent: msg, Display: msg}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d file(s) matching %q in %s:\n", total, r.Pattern, rel)
	for _, p := range paths {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	if total > maxResults {
		fmt.Fprintf(&b, "[Results capped at %d of %d matches.]\n", maxResults, total)
	}

	return &tool.Result{
		LLMContent: b.String(),
		Display:    fmt.Sprintf("Found %d file(s) matching %s", total, r.Pattern),
	}, nil
}

// isIgnored checks the file and every parent directory against the matcher.
func (t *GlobTool) isIgnored(p string) bool {
	segments := strings.Split(p, "/")
	for i := 1; i < len(segments); i++ {
		if t.ignore.ShouldIgnore(strings.Join(segments[:i], "/"), true) {
			return true
		}
	}
	return t.ignore.ShouldIgnore(p, false)
}
