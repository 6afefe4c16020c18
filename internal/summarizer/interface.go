package summarizer

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned by a Model whose service answered without text.
var ErrEmptyResponse = errors.New("empty response from summarization model")

// Summarizer condenses a transcript of any length.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Bounds are the target summary length per chunk, in words.
type Bounds struct {
	MinLength int
	MaxLength int
}

// Model summarizes a single chunk that fits the model's input limit.
type Model interface {
	Generate(ctx context.Context, chunk string, bounds Bounds) (string, error)
}
