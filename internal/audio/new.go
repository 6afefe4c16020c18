package audio

import (
	"io"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/speech"
	"github.com/nguyentantai21042004/audio-summarizer/pkg/executor"
)

// Options configures a Converter.
type Options struct {
	ChunkDuration time.Duration
	// GapMarker replaces windows that could not be recognized. Empty omits them.
	GapMarker  string
	TempDir    string
	FFmpegPath string
	SampleRate int
	// Progress receives the per-window progress bar. Nil disables it.
	Progress io.Writer
}

type implConverter struct {
	recognizer    speech.Recognizer
	executor      executor.Executor
	logger        logger.Logger
	chunkDuration time.Duration
	gapMarker     string
	tempDir       string
	ffmpegPath    string
	sampleRate    int
	progress      io.Writer
}

// New creates a new Converter instance
func New(recognizer speech.Recognizer, exec executor.Executor, log logger.Logger, opts Options) Converter {
	if opts.ChunkDuration <= 0 {
		opts.ChunkDuration = 30 * time.Second
	}
	if opts.FFmpegPath == "" {
		opts.FFmpegPath = "ffmpeg"
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = 16000
	}
	if opts.Progress == nil {
		opts.Progress = io.Discard
	}

	return &implConverter{
		recognizer:    recognizer,
		executor:      exec,
		logger:        log,
		chunkDuration: opts.ChunkDuration,
		gapMarker:     opts.GapMarker,
		tempDir:       opts.TempDir,
		ffmpegPath:    opts.FFmpegPath,
		sampleRate:    opts.SampleRate,
		progress:      opts.Progress,
	}
}
