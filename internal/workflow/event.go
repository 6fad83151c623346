package workflow

import (
	"github.com/taeold/gemini-cli-core-codelab/internal/provider"
	"github.com/taeold/gemini-cli-core-codelab/internal/scheduler"
)

// Event is the interface for all workflow events.
// Consumers handle events via type switch.
type Event interface {
	isEvent()
}

// ThinkingEvent is emitted before each backend round.
type ThinkingEvent struct {
	Round int
}

func (ThinkingEvent) isEvent() {}

// ThoughtEvent carries a streamed thought fragment.
type ThoughtEvent struct {
	Text string
}

func (ThoughtEvent) isEvent() {}

// TextEvent carries a streamed content fragment.
type TextEvent struct {
	Text string
}

func (TextEvent) isEvent() {}

// ReasoningEvent is emitted when a round ends with tool calls. Its text is
// reasoning so far, never the final answer.
type ReasoningEvent struct {
	Thoughts string
	Text     string
}

func (ReasoningEvent) isEvent() {}

// ToolBatchEvent is emitted after a batch of tool calls is terminal.
type ToolBatchEvent struct {
	Requests []provider.ToolCallRequest
	Calls    []scheduler.CompletedCall
}

func (ToolBatchEvent) isEvent() {}

// DoneEvent is emitted when the loop returns.
type DoneEvent struct {
	Text   string
	Rounds int
	Err    error
}

func (DoneEvent) isEvent() {}
