package summarizer

import (
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

// Options configures a Summarizer.
type Options struct {
	// ChunkSize is the number of characters sent to the model per call.
	ChunkSize int
	Bounds    Bounds
}

type implSummarizer struct {
	model     Model
	logger    logger.Logger
	chunkSize int
	bounds    Bounds
}

// New creates a Summarizer that feeds fixed-size chunks of text to model.
func New(model Model, log logger.Logger, opts Options) Summarizer {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 1024
	}
	if opts.Bounds.MaxLength <= 0 {
		opts.Bounds.MaxLength = 130
	}
	if opts.Bounds.MinLength <= 0 {
		opts.Bounds.MinLength = 30
	}

	return &implSummarizer{
		model:     model,
		logger:    log,
		chunkSize: opts.ChunkSize,
		bounds:    opts.Bounds,
	}
}
