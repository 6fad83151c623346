package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/taeold/gemini-cli-core-codelab/internal/workflow"
)

// StreamPrinter writes workflow events to a terminal. Thoughts are dimmed
// and content is streamed as it arrives. With markdown enabled the final
// answer is buffered and rendered through glamour instead.
type StreamPrinter struct {
	out      io.Writer
	markdown bool
	width    int
	thought  lipgloss.Style

	buffer      strings.Builder
	inThought   bool
	wroteOutput bool
}

// NewStreamPrinter creates a StreamPrinter. width <= 0 disables wrapping.
func NewStreamPrinter(out io.Writer, markdown bool, width int) *StreamPrinter {
	return &StreamPrinter{
		out:      out,
		markdown: markdown,
		width:    width,
		thought:  newRenderer(out).NewStyle().Faint(true).Italic(true),
	}
}

// Handle prints a single event.
func (p *StreamPrinter) Handle(e workflow.Event) {
	switch e := e.(type) {
	case workflow.ThoughtEvent:
		if !p.inThought {
			p.newline()
			fmt.Fprint(p.out, p.thought.Render("Thinking:")+" ")
			p.inThought = true
		}
		fmt.Fprint(p.out, p.thought.Render(e.Text))
		p.wroteOutput = true
	case workflow.TextEvent:
		if p.inThought {
			fmt.Fprintln(p.out)
			p.inThought = false
		}
		if p.markdown {
			p.buffer.WriteString(e.Text)
			return
		}
		fmt.Fprint(p.out, e.Text)
		p.wroteOutput = true
	case workflow.ReasoningEvent:
		// Text before tool calls is not the answer; flush it raw.
		if p.markdown && p.buffer.Len() > 0 {
			fmt.Fprint(p.out, p.buffer.String())
			p.buffer.Reset()
			p.wroteOutput = true
		}
		p.inThought = false
		p.newline()
	case workflow.DoneEvent:
		p.inThought = false
		if p.markdown && p.buffer.Len() > 0 {
			p.newline()
			fmt.Fprint(p.out, p.render(p.buffer.String()))
			p.buffer.Reset()
		}
		p.newline()
	}
}

func (p *StreamPrinter) newline() {
	if p.wroteOutput {
		fmt.Fprintln(p.out)
		p.wroteOutput = false
	}
}

func (p *StreamPrinter) render(text string) string {
	out, err := RenderMarkdown(text, p.width)
	if err != nil {
		return text + "\n"
	}
	return out
}

// RenderMarkdown renders text for a dark terminal.
func RenderMarkdown(text string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("dark")}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}
