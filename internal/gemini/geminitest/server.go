// Package geminitest serves canned Gemini generateContent replies for tests.
package geminitest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// RateLimited is the body Gemini sends with a 429.
const RateLimited = `{"error":{"code":429,"message":"Resource has been exhausted (e.g. check quota).","status":"RESOURCE_EXHAUSTED"}}`

// Request is one generateContent call as the server saw it.
type Request struct {
	Key   string
	Model string
	Body  map[string]any
}

// GenerationConfig returns the request's generationConfig object, or nil.
func (r Request) GenerationConfig() map[string]any {
	cfg, _ := r.Body["generationConfig"].(map[string]any)
	return cfg
}

// Responder picks the status and body for a call made with key.
type Responder func(key string) (status int, body string)

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
}

// NewServer starts a server and points genai clients at it through GOOGLE_GEMINI_BASE_URL.
func NewServer(t testing.TB, respond Responder) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{Key: r.Header.Get("x-goog-api-key"), Model: modelFromPath(r.URL.Path)}
		if data, err := io.ReadAll(r.Body); err == nil {
			_ = json.Unmarshal(data, &req.Body)
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		s.mu.Unlock()

		status, body := respond(req.Key)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(s.Close)
	t.Setenv("GOOGLE_GEMINI_BASE_URL", s.URL)
	return s
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Text always answers 200 with text.
func Text(text string) Responder {
	return func(string) (int, string) { return http.StatusOK, TextReply(text) }
}

// TextReply is a finished candidate holding text.
func TextReply(text string) string {
	quoted, _ := json.Marshal(text)
	return fmt.Sprintf(`{"candidates":[{"content":{"role":"model","parts":[{"text":%s}]},"finishReason":"STOP","index":0}]}`, quoted)
}

// EmptyReply is a candidate with no parts, as sent when output is cut off before any text.
func EmptyReply(finishReason string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"role":"model"},"finishReason":%q,"index":0}]}`, finishReason)
}

// ThoughtReply is a candidate whose only part is model thinking.
func ThoughtReply() string {
	return `{"candidates":[{"content":{"role":"model","parts":[{"text":"considering the passage","thought":true}]},"finishReason":"MAX_TOKENS","index":0}]}`
}

func modelFromPath(path string) string {
	_, rest, ok := strings.Cut(path, "models/")
	if !ok {
		return ""
	}
	model, _, _ := strings.Cut(rest, ":")
	return model
}
