package file

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPatternRequired = errors.New("pattern is required")
	ErrInvalidPattern  = errors.New("invalid glob pattern")
	ErrInvalidOffset   = errors.New("offset must be >= 0")
	ErrInvalidLimit    = errors.New("limit must be >= 0")
	ErrBinaryFile      = errors.New("binary files are not supported")
	ErrNotADirectory   = errors.New("path is not a directory")
	ErrIsDirectory     = errors.New("path is a directory")
	ErrFileMissing     = errors.New("file or path does not exist")
	ErrContentTooLarge = errors.New("content exceeds size limit")
)

// -- Error Types --

// StatError is returned when a path cannot be inspected.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }

// WriteError is returned when writing a file fails.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}
func (e *WriteError) Unwrap() error { return e.Cause }
