package scheduler

import (
	"fmt"
	"time"

	"github.com/taeold/gemini-cli-core-codelab/internal/provider"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

// Call tracks one tool call request from validation to a terminal status.
// Values handed to observers are snapshots.
type Call struct {
	Request provider.ToolCallRequest
	Status  Status

	// Confirmation is set while the call awaits approval and kept afterwards.
	Confirmation *Confirmation

	// Set once the call is terminal.
	Response *provider.FunctionResponse
	Result   *tool.Result
	Err      error

	StartedAt time.Time
	Duration  time.Duration

	tool tool.Tool
	req  any
}

// CompletedCall is a Call in a terminal status.
type CompletedCall = Call

// Part returns the call's response as turn input for the backend.
func (c *Call) Part() provider.Part {
	return provider.Part{FunctionResponse: c.Response}
}

// Display is a one-line description of the request, e.g. "Reading main.go".
func (c *Call) Display() string {
	if s, ok := c.req.(fmt.Stringer); ok {
		return s.String()
	}
	return c.Request.Name
}

func (c *Call) complete(res *tool.Result) {
	c.Status = StatusCompleted
	c.Result = res
	c.Response = &provider.FunctionResponse{
		ID:       c.Request.ID,
		Name:     c.Request.Name,
		Response: map[string]any{"output": res.LLMContent},
	}
	c.finish()
}

func (c *Call) fail(err error) {
	c.Status = StatusErrored
	c.Err = err
	c.Response = &provider.FunctionResponse{
		ID:       c.Request.ID,
		Name:     c.Request.Name,
		Response: map[string]any{"error": err.Error()},
	}
	c.finish()
}

// cancel marks the call cancelled. cause is nil when the operator declined.
func (c *Call) cancel(cause error) {
	msg := fmt.Sprintf("Tool call %s was cancelled by user", c.Request.Name)
	if cause != nil {
		msg = fmt.Sprintf("Tool call %s was cancelled: %v", c.Request.Name, cause)
	}
	c.Status = StatusCancelled
	c.Err = cause
	c.Response = &provider.FunctionResponse{
		ID:       c.Request.ID,
		Name:     c.Request.Name,
		Response: map[string]any{"error": msg, "cancelled": true},
	}
	c.finish()
}

func (c *Call) finish() {
	if !c.StartedAt.IsZero() {
		c.Duration = time.Since(c.StartedAt)
	}
}
