package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/taeold/gemini-cli-core-codelab/internal/scheduler"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

// ApprovalPrompt is printed after the confirmation details.
const ApprovalPrompt = "Approve? (y)es / (a)lways / (n)o: "

// ParseDecision maps one input line to a decision: "y" proceeds once, "a"
// proceeds always, anything else cancels. Surrounding whitespace is ignored.
func ParseDecision(line string) scheduler.Decision {
	switch strings.TrimSpace(line) {
	case "y":
		return scheduler.ProceedOnce
	case "a":
		return scheduler.ProceedAlways
	}
	return scheduler.Cancel
}

type lineResult struct {
	line string
	err  error
}

// Approver asks for decisions on a line-oriented input. One line is consumed
// per prompt; EOF cancels.
type Approver struct {
	in  io.Reader
	out io.Writer

	mu    sync.Mutex
	once  sync.Once
	lines chan lineResult
}

// NewApprover creates an Approver reading from in and prompting on out.
func NewApprover(in io.Reader, out io.Writer) *Approver {
	return &Approver{in: in, out: out, lines: make(chan lineResult)}
}

// RequestApproval prints the call's confirmation and waits for one line.
func (a *Approver) RequestApproval(ctx context.Context, call scheduler.Call) (scheduler.Decision, error) {
	details := tool.ConfirmationDetails{Title: call.Request.Name}
	if call.Confirmation != nil {
		details = call.Confirmation.ConfirmationDetails
	}
	return a.Confirm(ctx, details)
}

// Confirm prints details and the approval prompt, then waits for one line.
func (a *Approver) Confirm(ctx context.Context, details tool.ConfirmationDetails) (scheduler.Decision, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.once.Do(func() { go a.readLines() })

	fmt.Fprintln(a.out, formatConfirmation(details))
	fmt.Fprint(a.out, ApprovalPrompt)

	select {
	case res, ok := <-a.lines:
		if !ok || res.err != nil {
			fmt.Fprintln(a.out)
			return scheduler.Cancel, nil
		}
		return ParseDecision(res.line), nil
	case <-ctx.Done():
		fmt.Fprintln(a.out)
		return scheduler.Cancel, ctx.Err()
	}
}

// readLines feeds a.lines until the input ends. A line not taken before a
// prompt is cancelled stays queued for the next prompt.
func (a *Approver) readLines() {
	defer close(a.lines)
	reader := bufio.NewReader(a.in)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			a.lines <- lineResult{line: line}
		}
		if err != nil {
			if err != io.EOF {
				a.lines <- lineResult{err: err}
			}
			return
		}
	}
}

func formatConfirmation(details tool.ConfirmationDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s", details.Title)
	if desc := strings.TrimRight(details.Description, "\n"); desc != "" {
		b.WriteByte('\n')
		b.WriteString(desc)
	}
	return b.String()
}
