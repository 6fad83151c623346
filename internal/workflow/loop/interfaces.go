package loop

import (
	"context"
	"iter"

	"github.com/taeold/gemini-cli-core-codelab/internal/provider"
	"github.com/taeold/gemini-cli-core-codelab/internal/scheduler"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

// chatBackend streams one turn of the conversation.
type chatBackend interface {
	SendTurn(ctx context.Context, parts []provider.Part, decls []tool.Declaration) iter.Seq2[*provider.Fragment, error]
}

// declarationSource lists the tools offered to the model.
type declarationSource interface {
	Declarations() []tool.Declaration
}

// batchExecutor runs a batch of tool calls until all are terminal.
type batchExecutor interface {
	Schedule(ctx context.Context, requests []provider.ToolCallRequest) ([]scheduler.CompletedCall, error)
}
