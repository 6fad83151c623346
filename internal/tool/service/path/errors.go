package path

import (
	"errors"
	"fmt"
)

var (
	ErrOutsideWorkspace = errors.New("path is outside workspace root")
	ErrNotADirectory    = errors.New("workspace root is not a directory")
)

// WorkspaceRootError reports a workspace root that cannot be used.
type WorkspaceRootError struct {
	Root  string
	Cause error
}

func (e *WorkspaceRootError) Error() string {
	return fmt.Sprintf("invalid workspace root %s: %v", e.Root, e.Cause)
}

func (e *WorkspaceRootError) Unwrap() error { return e.Cause }
