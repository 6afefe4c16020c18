package pipeline

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the audio path does not exist.
var ErrNotFound = errors.New("file does not exist")

// Pipeline turns one audio file into a summary file next to it.
type Pipeline interface {
	Process(ctx context.Context, audioPath string) (Result, error)
}

// Reporter receives user-facing progress. output.Formatter implements it.
type Reporter interface {
	Transcribing(path string)
	NoSpeech()
	Transcript(text string)
	Summarizing()
	Summary(text string)
	Saved(path string)
	Warning(msg string)
}

// Result describes what Process produced.
type Result struct {
	Transcript  string
	Summary     string
	SummaryPath string
	DocxPath    string
	// Skipped is set when no speech was recognized and nothing was summarized.
	Skipped bool
}
