package audio

import (
	"fmt"
	"time"
)

// Window is a contiguous time slice of the source audio.
type Window struct {
	Index int
	Start time.Duration
	End   time.Duration

	startFrame int
	endFrame   int
}

func (w Window) Duration() time.Duration {
	return w.End - w.Start
}

func (w Window) String() string {
	return fmt.Sprintf("chunk %d: %s-%s", w.Index+1, w.Start, w.End)
}

// Split partitions totalFrames of audio into consecutive windows of size.
// The last window is truncated to whatever remains, so a 65s source with a 30s size
// yields 30s, 30s and 5s windows, and a 60s source yields exactly two.
func Split(totalFrames, sampleRate int, size time.Duration) []Window {
	if totalFrames <= 0 || sampleRate <= 0 {
		return nil
	}

	chunkFrames := int(int64(size) * int64(sampleRate) / int64(time.Second))
	if chunkFrames <= 0 {
		chunkFrames = totalFrames
	}

	windows := make([]Window, 0, (totalFrames+chunkFrames-1)/chunkFrames)
	for start := 0; start < totalFrames; start += chunkFrames {
		end := min(start+chunkFrames, totalFrames)
		windows = append(windows, Window{
			Index:      len(windows),
			Start:      frameTime(start, sampleRate),
			End:        frameTime(end, sampleRate),
			startFrame: start,
			endFrame:   end,
		})
	}
	return windows
}

func frameTime(frame, sampleRate int) time.Duration {
	return time.Duration(int64(frame) * int64(time.Second) / int64(sampleRate))
}
