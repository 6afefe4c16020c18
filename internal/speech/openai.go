package speech

import (
	"bytes"
	"context"

	"github.com/sashabaranov/go-openai"
)

// OpenAI speech-to-text via audio.transcriptions. Works against any OpenAI-compatible server.
type openAIRecognizer struct {
	client   *openai.Client
	model    string
	language string
}

func NewOpenAIRecognizer(apiKey, baseURL, model, language string) Recognizer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAIRecognizer{
		client:   openai.NewClientWithConfig(cfg),
		model:    model,
		language: language,
	}
}

func (o *openAIRecognizer) Recognize(ctx context.Context, clip Clip) Result {
	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.model,
		FilePath: clip.Name(),
		Reader:   bytes.NewReader(clip.Data),
		Language: o.language,
	})
	if err != nil {
		return Unreachable(err)
	}
	return Recognized(resp.Text)
}
