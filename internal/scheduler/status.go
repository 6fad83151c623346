package scheduler

// Status is the lifecycle state of one tool call.
type Status string

const (
	StatusValidating       Status = "validating"
	StatusAwaitingApproval Status = "awaiting_approval"
	StatusExecuting        Status = "executing"
	StatusCompleted        Status = "completed"
	StatusCancelled        Status = "cancelled"
	StatusErrored          Status = "errored"
)

// Terminal reports whether no further transition can happen.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusErrored:
		return true
	}
	return false
}

// Decision is the operator's answer to a confirmation.
type Decision int

const (
	// ProceedOnce runs this call only.
	ProceedOnce Decision = iota
	// ProceedAlways runs this call and skips confirmation for later calls
	// to the same tool name in this session.
	ProceedAlways
	// Cancel declines the call; it is never executed.
	Cancel
)

func (d Decision) String() string {
	switch d {
	case ProceedOnce:
		return "proceed_once"
	case ProceedAlways:
		return "proceed_always"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}
