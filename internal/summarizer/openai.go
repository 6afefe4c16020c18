package summarizer

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type openAIModel struct {
	client      *openai.Client
	model       string
	instruction string
}

// NewOpenAIModel summarizes through an OpenAI-compatible chat completion endpoint.
func NewOpenAIModel(apiKey, baseURL, model, instruction string) Model {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAIModel{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		instruction: instruction,
	}
}

func (o *openAIModel) Generate(ctx context.Context, chunk string, b Bounds) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(o.instruction, chunk, b)},
		},
		MaxTokens:   maxTokens(b),
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
