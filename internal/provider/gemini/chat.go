package gemini

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/taeold/gemini-cli-core-codelab/internal/config"
	"github.com/taeold/gemini-cli-core-codelab/internal/provider"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
	"google.golang.org/genai"
)

// Chat is one streaming conversation with a Gemini model. It implements
// provider.ChatBackend and keeps the session history.
type Chat struct {
	client Client
	config config.ModelConfig

	// turn serializes SendTurn calls; mu guards history only and is never
	// held while a fragment is yielded.
	turn    sync.Mutex
	mu      sync.Mutex
	history []*genai.Content
}

// NewChat creates a Chat with empty history.
func NewChat(client Client, cfg config.ModelConfig) *Chat {
	if client == nil {
		panic("client is required")
	}
	return &Chat{client: client, config: cfg}
}

// History returns a copy of the conversation so far.
func (c *Chat) History() []*genai.Content {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.history)
}

// SendTurn streams the model's reply to parts. The user content and the
// model's parts received so far are appended to history once the sequence
// ends, unless the stream failed.
func (c *Chat) SendTurn(ctx context.Context, parts []provider.Part, decls []tool.Declaration) iter.Seq2[*provider.Fragment, error] {
	return func(yield func(*provider.Fragment, error) bool) {
		user := toUserContent(parts)
		if len(user.Parts) == 0 {
			yield(nil, &provider.ProviderError{
				Code:    provider.ErrorCodeInvalidRequest,
				Message: "turn input is empty",
			})
			return
		}

		// Turns of one session never overlap.
		c.turn.Lock()
		defer c.turn.Unlock()

		contents := append(c.History(), user)
		gc := toGeminiConfig(c.config, decls)

		var modelParts []*genai.Part
		failed := false
		defer func() {
			if failed {
				return
			}
			c.mu.Lock()
			defer c.mu.Unlock()
			c.history = append(c.history, user)
			if len(modelParts) > 0 {
				c.history = append(c.history, &genai.Content{Role: roleModel, Parts: modelParts})
			}
		}()

		for resp, err := range c.client.GenerateContentStream(ctx, c.config.Name, contents, gc) {
			if err != nil {
				failed = true
				yield(nil, mapGeminiError(err))
				return
			}
			if resp == nil || len(resp.Candidates) == 0 {
				continue
			}

			candidate := resp.Candidates[0]
			if candidate.Content != nil {
				for _, part := range candidate.Content.Parts {
					if isEmptyPart(part) {
						continue
					}
					modelParts = append(modelParts, part)
					if frag := toFragment(part); frag != nil {
						if !yield(frag, nil) {
							return
						}
					}
				}
			}

			if err := finishError(candidate.FinishReason); err != nil {
				failed = true
				yield(nil, err)
				return
			}
		}
	}
}

// finishError reports finish reasons that end a turn abnormally.
func finishError(reason genai.FinishReason) error {
	switch reason {
	case genai.FinishReasonSafety:
		return &provider.ProviderError{
			Code:    provider.ErrorCodeContentBlocked,
			Message: "content blocked by safety filters",
		}
	case genai.FinishReasonMaxTokens:
		return &provider.ProviderError{
			Code:    provider.ErrorCodeContextLength,
			Message: "response truncated due to max tokens",
		}
	}
	return nil
}

// Generator produces single non-streamed replies. It implements
// provider.Generator.
type Generator struct {
	client Client
	config config.ModelConfig
}

// NewGenerator creates a Generator.
func NewGenerator(client Client, cfg config.ModelConfig) *Generator {
	if client == nil {
		panic("client is required")
	}
	return &Generator{client: client, config: cfg}
}

// Generate returns the concatenated non-thought text of the first candidate.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{toUserContent([]provider.Part{provider.TextPart(prompt)})}
	resp, err := g.client.GenerateContent(ctx, g.config.Name, contents, toGeminiConfig(g.config, nil))
	if err != nil {
		return "", mapGeminiError(err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", provider.ErrNoCandidates
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", finishError(candidate.FinishReason)
	}

	var text string
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part != nil && !part.Thought {
				text += part.Text
			}
		}
	}
	return text, nil
}

var (
	_ provider.ChatBackend = (*Chat)(nil)
	_ provider.Generator   = (*Generator)(nil)
)
