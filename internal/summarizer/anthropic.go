package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicModel struct {
	client      anthropic.Client
	model       string
	instruction string
}

// NewAnthropicModel summarizes through the Anthropic Messages API. baseURL may be empty.
func NewAnthropicModel(apiKey, baseURL, model, instruction string) Model {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &anthropicModel{
		client:      anthropic.NewClient(opts...),
		model:       model,
		instruction: instruction,
	}
}

func (a *anthropicModel) Generate(ctx context.Context, chunk string, b Bounds) (string, error) {
	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   int64(maxTokens(b)),
		Temperature: anthropic.Float(0),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildPrompt(a.instruction, chunk, b))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("create message: %w", err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}
