package pipeline

import (
	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/summarizer"
)

// Options toggles optional outputs.
type Options struct {
	Docx bool
}

type implPipeline struct {
	converter  audio.Converter
	summarizer summarizer.Summarizer
	reporter   Reporter
	logger     logger.Logger
	docx       bool
}

// New creates a Pipeline. reporter may be nil.
func New(conv audio.Converter, sum summarizer.Summarizer, reporter Reporter, log logger.Logger, opts Options) Pipeline {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &implPipeline{
		converter:  conv,
		summarizer: sum,
		reporter:   reporter,
		logger:     log,
		docx:       opts.Docx,
	}
}

type nopReporter struct{}

func (nopReporter) Transcribing(string) {}
func (nopReporter) NoSpeech()           {}
func (nopReporter) Transcript(string)   {}
func (nopReporter) Summarizing()        {}
func (nopReporter) Summary(string)      {}
func (nopReporter) Saved(string)        {}
func (nopReporter) Warning(string)      {}
