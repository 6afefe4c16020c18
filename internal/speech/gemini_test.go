package speech

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/audio-summarizer/internal/gemini"
	"github.com/nguyentantai21042004/audio-summarizer/internal/gemini/geminitest"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

func TestGeminiRecognizer(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus Status
		wantText   string
	}{
		{"speech", http.StatusOK, geminitest.TextReply("  good morning everyone \n"), StatusOK, "good morning everyone"},
		{"no speech marker", http.StatusOK, geminitest.TextReply("NO_SPEECH"), StatusUnintelligible, ""},
		{"empty reply", http.StatusOK, geminitest.EmptyReply("STOP"), StatusUnintelligible, ""},
		{"server error", http.StatusInternalServerError, `{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`, StatusUnreachable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := geminitest.NewServer(t, func(string) (int, string) { return tt.status, tt.body })

			client, err := gemini.New([]string{"key-a"}, logger.NewNop())
			require.NoError(t, err)
			r := NewGeminiRecognizer(client, "gemini-2.5-flash", "en")

			res := r.Recognize(context.Background(), Clip{Index: 0, Data: []byte("RIFF-wav-bytes")})
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantText, res.Text)
			switch tt.wantStatus {
			case StatusUnintelligible:
				assert.ErrorIs(t, res.Err, ErrEmptyResponse)
			case StatusUnreachable:
				assert.Error(t, res.Err)
			}

			reqs := srv.Requests()
			require.Len(t, reqs, 1)
			assert.Equal(t, "gemini-2.5-flash", reqs[0].Model)
			assert.Contains(t, requestMIMETypes(reqs[0]), "audio/wav")
		})
	}
}

// requestMIMETypes lists the inline data types sent in the first content.
func requestMIMETypes(r geminitest.Request) []string {
	var out []string
	contents, _ := r.Body["contents"].([]any)
	if len(contents) == 0 {
		return nil
	}
	content, _ := contents[0].(map[string]any)
	parts, _ := content["parts"].([]any)
	for _, p := range parts {
		part, _ := p.(map[string]any)
		if inline, ok := part["inlineData"].(map[string]any); ok {
			if mt, ok := inline["mimeType"].(string); ok {
				out = append(out, mt)
			}
		}
	}
	return out
}
