package console

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/taeold/gemini-cli-core-codelab/internal/scheduler"
)

// Observer prints a status line whenever a call changes state.
// Colours are dropped when out is not a terminal.
type Observer struct {
	out    io.Writer
	styles map[scheduler.Status]lipgloss.Style
	dim    lipgloss.Style

	mu   sync.Mutex
	seen map[string]scheduler.Status
}

// NewObserver creates an Observer writing to out.
func NewObserver(out io.Writer) *Observer {
	r := newRenderer(out)
	return &Observer{
		out: out,
		styles: map[scheduler.Status]lipgloss.Style{
			scheduler.StatusValidating:       r.NewStyle().Foreground(lipgloss.Color("241")),
			scheduler.StatusAwaitingApproval: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
			scheduler.StatusExecuting:        r.NewStyle().Foreground(lipgloss.Color("4")),
			scheduler.StatusCompleted:        r.NewStyle().Foreground(lipgloss.Color("2")),
			scheduler.StatusCancelled:        r.NewStyle().Foreground(lipgloss.Color("241")),
			scheduler.StatusErrored:          r.NewStyle().Foreground(lipgloss.Color("1")),
		},
		dim:  r.NewStyle().Faint(true),
		seen: make(map[string]scheduler.Status),
	}
}

// OnCallsUpdate prints one line per call whose status changed.
func (o *Observer) OnCallsUpdate(calls []scheduler.Call) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := range calls {
		c := &calls[i]
		if o.seen[c.Request.ID] == c.Status {
			continue
		}
		o.seen[c.Request.ID] = c.Status
		fmt.Fprintln(o.out, o.statusLine(c))
	}
}

// OnAllCallsComplete prints a one-line batch summary.
func (o *Observer) OnAllCallsComplete(calls []scheduler.CompletedCall) {
	o.mu.Lock()
	defer o.mu.Unlock()

	counts := make(map[scheduler.Status]int)
	for _, c := range calls {
		counts[c.Status]++
		delete(o.seen, c.Request.ID)
	}
	fmt.Fprintln(o.out, o.dim.Render(fmt.Sprintf("%d tool call(s): %d completed, %d cancelled, %d errored",
		len(calls), counts[scheduler.StatusCompleted], counts[scheduler.StatusCancelled], counts[scheduler.StatusErrored])))
}

func (o *Observer) statusLine(c *scheduler.Call) string {
	status := o.styles[c.Status].Render(fmt.Sprintf("[%s]", c.Status))
	line := fmt.Sprintf("%s %s %s", status, c.Request.Name, o.dim.Render(c.Request.ID))
	switch c.Status {
	case scheduler.StatusExecuting:
		line += " " + c.Display()
	case scheduler.StatusCompleted:
		if c.Result != nil && c.Result.Display != "" {
			line += " " + c.Result.Display
		}
		line += o.dim.Render(fmt.Sprintf(" (%s)", c.Duration.Round(time.Millisecond)))
	case scheduler.StatusErrored, scheduler.StatusCancelled:
		if c.Err != nil {
			line += " " + c.Err.Error()
		}
	}
	return line
}
