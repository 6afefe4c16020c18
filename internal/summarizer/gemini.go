package summarizer

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/audio-summarizer/internal/gemini"
)

type geminiModel struct {
	client      *gemini.Client
	model       string
	instruction string
}

// NewGeminiModel summarizes through Gemini, rotating API keys on quota errors.
func NewGeminiModel(client *gemini.Client, model, instruction string) Model {
	return &geminiModel{client: client, model: model, instruction: instruction}
}

func (g *geminiModel) Generate(ctx context.Context, chunk string, b Bounds) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(BuildPrompt(g.instruction, chunk, b), genai.RoleUser),
	}

	text, err := g.client.Generate(ctx, g.model, contents, generationConfig(g.model, b))
	if errors.Is(err, gemini.ErrEmptyResponse) {
		return "", errors.Join(ErrEmptyResponse, err)
	}
	return text, err
}

// generationConfig caps output only where thinking can be switched off:
// thinking tokens count against maxOutputTokens and would consume the whole cap.
func generationConfig(model string, b Bounds) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	}
	if canDisableThinking(model) {
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)}
		cfg.MaxOutputTokens = int32(maxTokens(b))
	}
	return cfg
}

// canDisableThinking reports whether model accepts a zero thinking budget. 2.5 Pro does not.
func canDisableThinking(model string) bool {
	return strings.HasPrefix(strings.TrimPrefix(model, "models/"), "gemini-2.5-flash")
}
