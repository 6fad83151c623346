package provider

import (
	"fmt"
	"time"
)

// Part is one piece of turn input: plain text or a tool result.
type Part struct {
	Text             string
	FunctionResponse *FunctionResponse
}

// TextPart builds a text Part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// FunctionResponse carries a tool result back to the model.
type FunctionResponse struct {
	ID       string
	Name     string
	Response map[string]any
}

// Fragment is one atomic piece of a streamed reply. Exactly one of Text or
// ToolCall is set.
type Fragment struct {
	Text     string
	Thought  bool
	ToolCall *ToolCallRequest
}

// ToolCallRequest is a tool invocation issued by the model. Immutable once issued.
type ToolCallRequest struct {
	ID   string
	Name string
	Args map[string]any
}

// CallID returns id if non-empty, otherwise "name-<unix millis>".
func CallID(id, name string, now time.Time) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("%s-%d", name, now.UnixMilli())
}
