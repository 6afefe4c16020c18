package speech

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/audio-summarizer/internal/gemini"
)

const transcribePrompt = `Transcribe the speech in this audio clip verbatim (language: %s).
Reply with the transcript only, without timestamps or speaker labels.
If the clip contains no intelligible speech, reply with exactly NO_SPEECH.`

type geminiRecognizer struct {
	client   *gemini.Client
	model    string
	language string
}

func NewGeminiRecognizer(client *gemini.Client, model, language string) Recognizer {
	return &geminiRecognizer{client: client, model: model, language: language}
}

func (g *geminiRecognizer) Recognize(ctx context.Context, clip Clip) Result {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(fmt.Sprintf(transcribePrompt, g.language)),
			genai.NewPartFromBytes(clip.Data, "audio/wav"),
		}, genai.RoleUser),
	}

	text, err := g.client.Generate(ctx, g.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if errors.Is(err, gemini.ErrEmptyResponse) {
		return Recognized("")
	}
	if err != nil {
		return Unreachable(err)
	}
	return Recognized(text)
}
