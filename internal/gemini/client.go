package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

var (
	// ErrNoAPIKeys is returned by New when no key is configured.
	ErrNoAPIKeys = errors.New("no Gemini API keys configured: set GEMINI_API_KEYS or gemini.api_keys")
	// ErrEmptyResponse is returned when a call succeeds but carries no text.
	ErrEmptyResponse = errors.New("empty response from Gemini")
)

// Client calls Gemini and rotates through the supplied API keys on 429 / quota errors.
type Client struct {
	apiKeys    []string
	currentKey int
	clients    map[int]*genai.Client
	logger     logger.Logger
	mu         sync.Mutex
}

func New(apiKeys []string, log logger.Logger) (*Client, error) {
	if len(apiKeys) == 0 {
		return nil, ErrNoAPIKeys
	}
	return &Client{
		apiKeys: apiKeys,
		clients: make(map[int]*genai.Client),
		logger:  log,
	}, nil
}

// Generate sends contents to model and returns the concatenated text of the first candidate.
func (c *Client) Generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		idx, client, err := c.client(ctx)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, model, contents, cfg)
		if err != nil {
			if isRateLimited(err) {
				c.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", idx+1)
				c.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		return firstCandidateText(result)
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *Client) client(ctx context.Context) (int, *genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.currentKey
	if cl, ok := c.clients[idx]; ok {
		return idx, cl, nil
	}

	cl, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKeys[idx],
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return idx, nil, err
	}
	c.clients[idx] = cl
	return idx, cl, nil
}

// rotateKey moves past idx unless another caller already did.
func (c *Client) rotateKey(idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentKey == idx {
		c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
	}
}

func isRateLimited(err error) bool {
	errMsg := err.Error()
	return strings.Contains(errMsg, "429") ||
		strings.Contains(errMsg, "quota") ||
		strings.Contains(errMsg, "RESOURCE_EXHAUSTED")
}

// firstCandidateText joins the text parts of the first candidate. A reply without text,
// such as one cut off at MAX_TOKENS before any output, is ErrEmptyResponse.
func firstCandidateText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	candidate := result.Candidates[0]
	var text strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part != nil && !part.Thought && part.Text != "" {
				text.WriteString(part.Text)
			}
		}
	}

	if strings.TrimSpace(text.String()) == "" {
		if candidate.FinishReason != "" {
			return "", fmt.Errorf("%w (finish reason %s)", ErrEmptyResponse, candidate.FinishReason)
		}
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}
