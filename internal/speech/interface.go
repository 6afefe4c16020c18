package speech

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// Clip is one window of the source audio rendered as a standalone WAV file.
type Clip struct {
	Index int
	Start time.Duration
	End   time.Duration
	Path  string
	Data  []byte
}

// Name is the file name sent to services that expect an upload name.
func (c Clip) Name() string {
	if c.Path == "" {
		return fmt.Sprintf("chunk_%03d.wav", c.Index)
	}
	return filepath.Base(c.Path)
}

// Recognizer turns one clip into text. Per-clip failures are reported in the Result, not as errors.
type Recognizer interface {
	Recognize(ctx context.Context, clip Clip) Result
}
