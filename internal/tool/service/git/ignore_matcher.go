package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// GitignoreReadError is returned when .gitignore cannot be read.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}
func (e *GitignoreReadError) Unwrap() error { return e.Cause }

// fileReader defines the minimal filesystem interface needed for the matcher.
type fileReader interface {
	ReadFile(path string, maxSize int64) ([]byte, error)
}

// maxGitignoreSize bounds the .gitignore file we are willing to parse.
const maxGitignoreSize = 1 << 20

// IgnoreMatcher implements gitignore pattern matching using go-git's gitignore matcher.
// The .git directory is always ignored.
type IgnoreMatcher struct {
	matcher gitignore.Matcher
}

// NewIgnoreMatcher loads .gitignore from the workspace root.
// A missing .gitignore is not an error; only .git is ignored then.
func NewIgnoreMatcher(workspaceRoot string, fs fileReader) (*IgnoreMatcher, error) {
	if fs == nil {
		panic("fs is required")
	}

	patterns := []gitignore.Pattern{gitignore.ParsePattern(".git", nil)}

	gitignorePath := filepath.Join(workspaceRoot, ".gitignore")
	data, err := fs.ReadFile(gitignorePath, maxGitignoreSize)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, &GitignoreReadError{Path: gitignorePath, Cause: err}
	default:
		for _, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
			line = strings.TrimRight(line, " \t")
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			patterns = append(patterns, gitignore.ParsePattern(line, nil))
		}
	}

	return &IgnoreMatcher{matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldIgnore checks if a workspace-relative path matches any ignore pattern.
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	segments := splitPath(relativePath)
	if len(segments) == 0 {
		return false
	}
	return m.matcher.Match(segments, isDir)
}

// splitPath splits a path into segments for gitignore matching.
// It normalizes path separators and filters out empty and "." segments.
func splitPath(path string) []string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}
