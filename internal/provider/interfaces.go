package provider

import (
	"context"
	"iter"

	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

// ChatBackend is one conversation with a model. Implementations keep their
// own history; callers only send the next turn's input.
type ChatBackend interface {
	// SendTurn sends parts together with the available tool declarations and
	// returns the reply as a lazy, single-pass sequence of fragments in arrival
	// order. A stream failure is yielded as the last pair with a nil fragment.
	SendTurn(ctx context.Context, parts []Part, decls []tool.Declaration) iter.Seq2[*Fragment, error]
}

// Generator produces a single non-streamed reply without tools.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
