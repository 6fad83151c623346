package loop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taeold/gemini-cli-core-codelab/internal/provider"
	"github.com/taeold/gemini-cli-core-codelab/internal/workflow"
)

// DefaultMaxRounds bounds a turn when no limit is configured.
const DefaultMaxRounds = 20

// ErrMaxRounds is returned when the backend keeps requesting tools.
var ErrMaxRounds = errors.New("max rounds reached")

// Result is the outcome of one Run.
type Result struct {
	Text     string
	Thoughts string
	Rounds   int
}

// EventHandler receives loop events on the loop's goroutine.
type EventHandler func(workflow.Event)

// Loop runs one prompt to a final answer, alternating backend rounds and
// tool batches.
type Loop struct {
	backend   chatBackend
	tools     declarationSource
	executor  batchExecutor
	onEvent   EventHandler
	maxRounds int
	logger    *slog.Logger
}

// NewLoop creates a Loop. onEvent may be nil. It is called synchronously,
// so every event of a round has been handled before its tool calls are
// scheduled.
func NewLoop(backend chatBackend, tools declarationSource, executor batchExecutor, onEvent EventHandler, maxRounds int) *Loop {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Loop{
		backend:   backend,
		tools:     tools,
		executor:  executor,
		onEvent:   onEvent,
		maxRounds: maxRounds,
		logger:    slog.Default(),
	}
}

// WithLogger replaces the default logger.
func (l *Loop) WithLogger(logger *slog.Logger) *Loop {
	l.logger = logger
	return l
}

// Run sends prompt and keeps feeding tool results back until a round yields
// no tool calls. That round's content text is the answer.
func (l *Loop) Run(ctx context.Context, prompt string) (res *Result, err error) {
	rounds := 0
	defer func() {
		done := workflow.DoneEvent{Rounds: rounds, Err: err}
		if res != nil {
			done.Text = res.Text
		}
		l.emit(done)
	}()

	decls := l.tools.Declarations()
	pending := []provider.Part{provider.TextPart(prompt)}

	for rounds < l.maxRounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rounds++
		l.emit(workflow.ThinkingEvent{Round: rounds})

		var thoughts, content strings.Builder
		var calls []provider.ToolCallRequest
		for frag, err := range l.backend.SendTurn(ctx, pending, decls) {
			if err != nil {
				return nil, fmt.Errorf("round %d: %w", rounds, err)
			}
			switch {
			case frag.ToolCall != nil:
				calls = append(calls, *frag.ToolCall)
			case frag.Thought:
				thoughts.WriteString(frag.Text)
				l.emit(workflow.ThoughtEvent{Text: frag.Text})
			default:
				content.WriteString(frag.Text)
				l.emit(workflow.TextEvent{Text: frag.Text})
			}
		}

		if len(calls) == 0 {
			if content.Len() == 0 {
				l.logger.Warn("[workflow] backend returned no text and no tool calls", "round", rounds)
			}
			return &Result{Text: content.String(), Thoughts: thoughts.String(), Rounds: rounds}, nil
		}

		if thoughts.Len() > 0 || content.Len() > 0 {
			l.emit(workflow.ReasoningEvent{Thoughts: thoughts.String(), Text: content.String()})
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		l.logger.Debug("[workflow] scheduling tool calls", "round", rounds, "count", len(calls))
		completed, err := l.executor.Schedule(ctx, calls)
		if err != nil {
			return nil, fmt.Errorf("schedule round %d: %w", rounds, err)
		}
		l.emit(workflow.ToolBatchEvent{Requests: calls, Calls: completed})

		pending = make([]provider.Part, 0, len(completed))
		for i := range completed {
			pending = append(pending, completed[i].Part())
		}
	}

	return nil, fmt.Errorf("%w (%d)", ErrMaxRounds, l.maxRounds)
}

func (l *Loop) emit(e workflow.Event) {
	if l.onEvent != nil {
		l.onEvent(e)
	}
}
