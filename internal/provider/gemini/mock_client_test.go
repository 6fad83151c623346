package gemini

import (
	"context"
	"errors"
	"iter"

	"google.golang.org/genai"
)

// mockClient is a mock implementation of Client for testing.
type mockClient struct {
	generateContentFunc       func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	generateContentStreamFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

func (m *mockClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if m.generateContentFunc != nil {
		return m.generateContentFunc(ctx, model, contents, config)
	}
	return nil, errors.New("generateContentFunc not set")
}

func (m *mockClient) GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error] {
	if m.generateContentStreamFunc != nil {
		return m.generateContentStreamFunc(ctx, model, contents, config)
	}
	return streamOf(errors.New("generateContentStreamFunc not set"))
}

// streamOf yields each item in order; an error item ends the stream.
func streamOf(items ...any) iter.Seq2[*genai.GenerateContentResponse, error] {
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for _, item := range items {
			switch v := item.(type) {
			case error:
				yield(nil, v)
				return
			case *genai.GenerateContentResponse:
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

func chunk(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Role: roleModel, Parts: parts}}},
	}
}
