package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taeold/gemini-cli-core-codelab/internal/provider"
	"github.com/taeold/gemini-cli-core-codelab/internal/scheduler"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

func TestObserver_PrintsTransitionsOnce(t *testing.T) {
	var out bytes.Buffer
	o := NewObserver(&out)

	a := scheduler.Call{Request: provider.ToolCallRequest{ID: "read_file-1", Name: "read_file"}, Status: scheduler.StatusValidating}
	b := scheduler.Call{Request: provider.ToolCallRequest{ID: "write_file-1", Name: "write_file"}, Status: scheduler.StatusValidating}

	o.OnCallsUpdate([]scheduler.Call{a, b})
	a.Status = scheduler.StatusExecuting
	o.OnCallsUpdate([]scheduler.Call{a, b})
	b.Status = scheduler.StatusAwaitingApproval
	o.OnCallsUpdate([]scheduler.Call{a, b})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "[validating] read_file")
	assert.Contains(t, lines[1], "[validating] write_file")
	assert.Contains(t, lines[2], "[executing] read_file")
	assert.Contains(t, lines[3], "[awaiting_approval] write_file")
}

func TestObserver_TerminalDetails(t *testing.T) {
	var out bytes.Buffer
	o := NewObserver(&out)

	done := scheduler.Call{
		Request: provider.ToolCallRequest{ID: "read_file-1", Name: "read_file"},
		Status:  scheduler.StatusCompleted,
		Result:  &tool.Result{Display: "Read 3 lines from a.txt"},
	}
	failed := scheduler.Call{
		Request: provider.ToolCallRequest{ID: "glob-1", Name: "glob"},
		Status:  scheduler.StatusErrored,
		Err:     errors.New("bad pattern"),
	}
	o.OnCallsUpdate([]scheduler.Call{done, failed})
	o.OnAllCallsComplete([]scheduler.CompletedCall{done, failed})

	text := out.String()
	assert.Contains(t, text, "Read 3 lines from a.txt")
	assert.Contains(t, text, "[errored] glob glob-1 bad pattern")
	assert.Contains(t, text, "2 tool call(s): 1 completed, 0 cancelled, 1 errored")
}

func TestObserver_ForgetsCallsAfterBatch(t *testing.T) {
	var out bytes.Buffer
	o := NewObserver(&out)

	c := scheduler.Call{Request: provider.ToolCallRequest{ID: "x-1", Name: "x"}, Status: scheduler.StatusCancelled}
	o.OnCallsUpdate([]scheduler.Call{c})
	o.OnAllCallsComplete([]scheduler.CompletedCall{c})
	o.OnCallsUpdate([]scheduler.Call{c})

	assert.Equal(t, 2, strings.Count(out.String(), "[cancelled] x"))
}
