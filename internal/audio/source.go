package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
	"github.com/go-audio/wav"
)

// supportedFormats lists the containers ffmpeg is asked to convert, keyed by extension.
var supportedFormats = map[string]bool{
	"wav":  true,
	"mp3":  true,
	"flac": true,
	"ogg":  true,
	"opus": true,
	"m4a":  true,
	"aac":  true,
	"webm": true,
}

// IsAudioFile reports whether path has an extension the converter accepts.
func IsAudioFile(path string) bool {
	return supportedFormats[extension(path)]
}

// source is the file actually decoded, plus the scratch directory to remove afterwards.
type source struct {
	path    string
	format  string
	tempDir string
}

// DetectFormat identifies the container from the stream and falls back to the file extension.
func DetectFormat(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	if _, fileType, err := tag.Identify(f); err == nil {
		if format := formatFromFileType(fileType); format != "" {
			return format, nil
		}
	}

	ext := extension(path)
	if !supportedFormats[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return ext, nil
}

func formatFromFileType(ft tag.FileType) string {
	switch ft {
	case tag.MP3:
		return "mp3"
	case tag.FLAC:
		return "flac"
	case tag.OGG:
		return "ogg"
	case tag.M4A, tag.M4B, tag.M4P, tag.ALAC:
		return "m4a"
	default:
		return ""
	}
}

func extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// isCanonicalWAV reports whether path is already mono 16-bit PCM at sampleRate.
func isCanonicalWAV(path string, sampleRate int) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return false
	}
	return dec.BitDepth == 16 && dec.NumChans == 1 && int(dec.SampleRate) == sampleRate && dec.WavAudioFormat == 1
}

// prepare returns a decodable canonical WAV for path, converting it with ffmpeg when needed.
func (c *implConverter) prepare(ctx context.Context, path string) (*source, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	if format == "wav" && isCanonicalWAV(path, c.sampleRate) {
		return &source{path: path, format: format}, nil
	}

	tempDir, err := os.MkdirTemp(c.tempDir, "audio-summarizer-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	wavPath := filepath.Join(tempDir, base+".wav")

	if err := c.toCanonicalWAV(ctx, path, wavPath); err != nil {
		os.RemoveAll(tempDir)
		return nil, err
	}

	return &source{path: wavPath, format: format, tempDir: tempDir}, nil
}

// toCanonicalWAV converts src to mono 16-bit PCM WAV at the configured sample rate.
func (c *implConverter) toCanonicalWAV(ctx context.Context, src, dst string) error {
	c.logger.Info(ctx, "Converting %s to WAV (%d Hz mono)", src, c.sampleRate)

	// -vn: drop any video stream, -ac 1: mono, -c:a pcm_s16le: 16-bit little-endian PCM
	args := []string{
		"-y",
		"-i", src,
		"-vn",
		"-ar", strconv.Itoa(c.sampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		dst,
	}

	if _, err := c.executor.Execute(ctx, c.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg convert: %w", err)
	}

	c.logger.Debug(ctx, "Converted audio written to %s", dst)
	return nil
}
