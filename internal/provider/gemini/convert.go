package gemini

import (
	"github.com/taeold/gemini-cli-core-codelab/internal/config"
	"github.com/taeold/gemini-cli-core-codelab/internal/provider"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
	"google.golang.org/genai"
)

const (
	roleUser  = "user"
	roleModel = "model"
)

// toUserContent converts turn input parts to a user Content.
func toUserContent(parts []provider.Part) *genai.Content {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		switch {
		case p.FunctionResponse != nil:
			out = append(out, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					ID:       p.FunctionResponse.ID,
					Name:     p.FunctionResponse.Name,
					Response: p.FunctionResponse.Response,
				},
			})
		case p.Text != "":
			out = append(out, genai.NewPartFromText(p.Text))
		}
	}
	return &genai.Content{Role: roleUser, Parts: out}
}

// toFragment converts a streamed part. Parts carrying neither text nor a
// function call (e.g. a bare thought signature) yield nil.
func toFragment(part *genai.Part) *provider.Fragment {
	switch {
	case part == nil:
		return nil
	case part.FunctionCall != nil:
		return &provider.Fragment{
			ToolCall: &provider.ToolCallRequest{
				ID:   part.FunctionCall.ID,
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			},
		}
	case part.Text != "":
		return &provider.Fragment{Text: part.Text, Thought: part.Thought}
	}
	return nil
}

// isEmptyPart reports whether a part carries nothing worth keeping in history.
func isEmptyPart(part *genai.Part) bool {
	return part == nil || (part.Text == "" && part.FunctionCall == nil && len(part.ThoughtSignature) == 0)
}

// toGeminiConfig builds the request config from model settings and tools.
func toGeminiConfig(cfg config.ModelConfig, decls []tool.Declaration) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{
		SafetySettings: defaultSafetySettings(),
		Temperature:    cfg.Temperature,
	}
	if cfg.SystemInstruction != "" {
		gc.SystemInstruction = &genai.Content{
			Role:  roleUser,
			Parts: []*genai.Part{genai.NewPartFromText(cfg.SystemInstruction)},
		}
	}
	if cfg.IncludeThoughts {
		gc.ThinkingConfig = &genai.ThinkingConfig{IncludeThoughts: true}
	}
	if tools := toGeminiTools(decls); tools != nil {
		gc.Tools = tools
	}
	return gc
}

// defaultSafetySettings turns safety filtering off for all categories.
func defaultSafetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdOff},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdOff},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdOff},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdOff},
	}
}

// toGeminiTools maps declarations to one Tool; the reflected JSON Schema is
// passed through as ParametersJsonSchema.
func toGeminiTools(decls []tool.Declaration) []*genai.Tool {
	if len(decls) == 0 {
		return nil
	}
	fds := make([]*genai.FunctionDeclaration, 0, len(decls))
	for _, d := range decls {
		fd := &genai.FunctionDeclaration{
			Name:        d.Name,
			Description: d.Description,
		}
		if d.Parameters != nil {
			fd.ParametersJsonSchema = d.Parameters
		}
		fds = append(fds, fd)
	}
	return []*genai.Tool{{FunctionDeclarations: fds}}
}
