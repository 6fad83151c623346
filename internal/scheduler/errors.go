package scheduler

import "errors"

var (
	ErrAlreadyResolved = errors.New("confirmation already resolved")
	ErrClosed          = errors.New("scheduler is closed")
)
