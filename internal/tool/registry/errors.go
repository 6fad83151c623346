package registry

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTool   = errors.New("tool does not exist")
	ErrDuplicateTool = errors.New("tool already registered")
	ErrToolDenied    = errors.New("tool is denied by policy")
)

// ArgumentError is returned when a call's arguments do not fit the tool's
// request type or fail its validation.
type ArgumentError struct {
	Tool  string
	Cause error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %v", e.Tool, e.Cause)
}

func (e *ArgumentError) Unwrap() error { return e.Cause }

func (e *ArgumentError) InvalidInput() bool { return true }
