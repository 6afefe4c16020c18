package audio

import (
	"context"
	"errors"
)

var (
	// ErrUnsupportedFormat is returned for files whose container cannot be transcribed.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrInvalidWAV is returned when a WAV file cannot be decoded as PCM.
	ErrInvalidWAV = errors.New("invalid WAV file")
)

// Converter turns an audio file into a transcript.
type Converter interface {
	// Convert returns the transcript of the file at path. An error means no transcript is
	// available; windows that fail recognition are skipped and do not produce an error.
	Convert(ctx context.Context, path string) (string, error)
}
