package shell

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrCommandRequired = errors.New("command is required")
	ErrTimeout         = errors.New("command timeout")
	ErrNotADirectory   = errors.New("working directory is not a directory")
)

// -- Error Types --

// CommandError is returned when a command cannot be started.
type CommandError struct {
	Cmd   string
	Stage string
	Cause error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed at %s: %v", e.Cmd, e.Stage, e.Cause)
}
func (e *CommandError) Unwrap() error { return e.Cause }
