package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/nguyentantai21042004/audio-summarizer/internal/speech"
)

// Convert transcribes the file at path window by window.
func (c *implConverter) Convert(ctx context.Context, path string) (string, error) {
	startTime := time.Now()

	src, err := c.prepare(ctx, path)
	if err != nil {
		return "", fmt.Errorf("prepare audio: %w", err)
	}
	defer c.cleanupSource(ctx, src)

	stream, err := openWAV(src.path)
	if err != nil {
		return "", fmt.Errorf("decode audio: %w", err)
	}
	defer stream.Close()

	windows := Split(stream.totalFrames, stream.sampleRate, c.chunkDuration)
	total := frameTime(stream.totalFrames, stream.sampleRate)
	c.logger.Info(ctx, "Processing audio in %d chunks (%s, format %s)...", len(windows), total, src.format)
	if len(windows) == 0 {
		return "", nil
	}

	clipDir, err := os.MkdirTemp(c.tempDir, "clips-*")
	if err != nil {
		return "", fmt.Errorf("create clip dir: %w", err)
	}
	defer os.RemoveAll(clipDir)

	bar := progressbar.NewOptions(len(windows),
		progressbar.OptionSetWriter(c.progress),
		progressbar.OptionSetDescription("transcribing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var (
		parts      []string
		recognized int
	)
	for _, w := range windows {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("transcription interrupted at %s: %w", w, err)
		}

		clip, err := c.renderClip(clipDir, stream, w)
		if err != nil {
			return "", fmt.Errorf("render %s: %w", w, err)
		}

		res := c.recognizer.Recognize(ctx, clip)
		c.cleanupTempFile(ctx, clip.Path)

		switch res.Status {
		case speech.StatusOK:
			parts = append(parts, res.Text)
			recognized++
			c.logger.Debug(ctx, "Recognized %s: %d characters", w, len(res.Text))
		case speech.StatusUnintelligible:
			c.logger.Warn(ctx, "Could not understand audio in chunk %d", w.Index+1)
			parts = c.markGap(parts)
		default:
			c.logger.Warn(ctx, "Could not request results for chunk %d: %v", w.Index+1, res.Err)
			parts = c.markGap(parts)
		}

		_ = bar.Add(1)
	}
	_ = bar.Finish()

	c.logger.Info(ctx, "Recognized %d/%d chunks in %s", recognized, len(windows), time.Since(startTime).Round(time.Millisecond))
	if recognized == 0 {
		// gap markers alone are not a transcript
		return "", nil
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

// renderClip reads the window's samples from the stream and writes them as a clip.
// Windows must be rendered in order.
func (c *implConverter) renderClip(dir string, stream *pcmStream, w Window) (speech.Clip, error) {
	samples, err := stream.next(w.endFrame - w.startFrame)
	if err != nil {
		return speech.Clip{}, err
	}

	path := filepath.Join(dir, fmt.Sprintf("chunk_%03d.wav", w.Index))
	if err := writeClip(path, stream, samples); err != nil {
		return speech.Clip{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return speech.Clip{}, fmt.Errorf("read clip: %w", err)
	}

	return speech.Clip{
		Index: w.Index,
		Start: w.Start,
		End:   w.End,
		Path:  path,
		Data:  data,
	}, nil
}

func (c *implConverter) markGap(parts []string) []string {
	if c.gapMarker == "" {
		return parts
	}
	return append(parts, c.gapMarker)
}
