package path

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver provides path resolution within a workspace boundary.
type Resolver struct {
	workspaceRoot string
}

// NewResolver creates a new path resolver for the given canonical workspace root.
func NewResolver(workspaceRoot string) *Resolver {
	if workspaceRoot == "" {
		panic("workspaceRoot is required")
	}
	return &Resolver{
		workspaceRoot: workspaceRoot,
	}
}

// Root returns the workspace root.
func (r *Resolver) Root() string {
	return r.workspaceRoot
}

// CanonicaliseRoot canonicalises a workspace root path by making it absolute and resolving symlinks.
// Returns an error if the path doesn't exist or isn't a directory.
func CanonicaliseRoot(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &WorkspaceRootError{Root: root, Cause: err}
	}

	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", &WorkspaceRootError{Root: absRoot, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &WorkspaceRootError{Root: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &WorkspaceRootError{Root: resolved, Cause: fmt.Errorf("%w: %s", ErrNotADirectory, resolved)}
	}
	return resolved, nil
}

// Abs resolves any path to absolute and validates it is within the workspace boundary.
// The longest existing prefix of the path has its symlinks evaluated, so a
// link pointing outside the workspace is rejected as well.
func (r *Resolver) Abs(path string) (string, error) {
	var abs string
	if filepath.IsAbs(path) {
		abs = filepath.Clean(path)
	} else {
		abs = filepath.Clean(filepath.Join(r.workspaceRoot, path))
	}

	if !r.within(abs) {
		return "", fmt.Errorf("%w: %s", ErrOutsideWorkspace, path)
	}

	resolved, err := evalExistingPrefix(abs)
	if err != nil {
		return "", err
	}
	if !r.within(resolved) {
		return "", fmt.Errorf("%w: %s (symlink target %s)", ErrOutsideWorkspace, path, resolved)
	}

	return abs, nil
}

// Rel resolves any path to relative to the workspace root and validates it is within the boundary.
// The root itself is returned as ".".
func (r *Resolver) Rel(path string) (string, error) {
	abs, err := r.Abs(path)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(r.workspaceRoot, abs)
	if err != nil {
		return "", ErrOutsideWorkspace
	}

	return filepath.ToSlash(rel), nil
}

func (r *Resolver) within(abs string) bool {
	return abs == r.workspaceRoot || strings.HasPrefix(abs, r.workspaceRoot+string(filepath.Separator))
}

// evalExistingPrefix evaluates symlinks for the deepest ancestor of abs that
// exists and re-attaches the missing tail.
func evalExistingPrefix(abs string) (string, error) {
	existing := abs
	var tail []string
	for {
		resolved, err := filepath.EvalSymlinks(existing)
		if err == nil {
			for i := len(tail) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, tail[i])
			}
			return resolved, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}
		tail = append(tail, filepath.Base(existing))
		existing = parent
	}
}
