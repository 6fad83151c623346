package scheduler

import (
	"context"

	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

// toolDecoder resolves a call's tool and decodes its arguments.
type toolDecoder interface {
	Decode(name string, args map[string]any) (tool.Tool, any, error)
}

// Approver asks the operator to decide on a call awaiting approval.
// Requests are issued one at a time in batch order.
type Approver interface {
	RequestApproval(ctx context.Context, call Call) (Decision, error)
}

// Observer receives progress notifications. OnCallsUpdate fires on every
// status transition with a snapshot of the whole batch. OnAllCallsComplete
// fires once per batch after every call is terminal.
type Observer interface {
	OnCallsUpdate(calls []Call)
	OnAllCallsComplete(calls []CompletedCall)
}

// ApproverFunc adapts a function to the Approver interface.
type ApproverFunc func(ctx context.Context, call Call) (Decision, error)

func (f ApproverFunc) RequestApproval(ctx context.Context, call Call) (Decision, error) {
	return f(ctx, call)
}
