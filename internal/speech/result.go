package speech

import (
	"errors"
	"strings"
)

// ErrEmptyResponse is attached to unintelligible results: the service answered without speech.
var ErrEmptyResponse = errors.New("no speech in response")

type Status int

const (
	StatusOK Status = iota
	// StatusUnintelligible means the service answered but heard no speech.
	StatusUnintelligible
	// StatusUnreachable means the request itself failed.
	StatusUnreachable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnintelligible:
		return "unintelligible"
	case StatusUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

type Result struct {
	Status Status
	Text   string
	Err    error
}

// noSpeechMarkers are answers that services give for silent or noisy audio.
var noSpeechMarkers = []string{
	"[BLANK_AUDIO]",
	"NO_SPEECH",
	"(silence)",
}

// Recognized classifies a text answer. Empty answers and no-speech markers are unintelligible.
func Recognized(text string) Result {
	text = strings.TrimSpace(text)
	for _, m := range noSpeechMarkers {
		text = strings.TrimSpace(strings.ReplaceAll(text, m, ""))
	}
	if text == "" {
		return Result{Status: StatusUnintelligible, Err: ErrEmptyResponse}
	}
	return Result{Status: StatusOK, Text: text}
}

// Unreachable wraps a transport or service error.
func Unreachable(err error) Result {
	return Result{Status: StatusUnreachable, Err: err}
}
