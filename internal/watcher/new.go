package watcher

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

type Options struct {
	// MaxConcurrent bounds in-flight handlers. Defaults to 1.
	MaxConcurrent int
	// SettleDelay is waited after a create event so the writer can finish.
	SettleDelay time.Duration
	// Match selects files to handle. Defaults to audio.IsAudioFile.
	Match func(path string) bool
}

// New watches inputDir, creating it if needed.
func New(inputDir string, handler EventHandler, log logger.Logger, opts Options) (Watcher, error) {
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		return nil, fmt.Errorf("create input dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	if opts.SettleDelay < 0 {
		opts.SettleDelay = 0
	}
	if opts.Match == nil {
		opts.Match = audio.IsAudioFile
	}

	return &implWatcher{
		inputDir:      inputDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: opts.MaxConcurrent,
		settleDelay:   opts.SettleDelay,
		match:         opts.Match,
		sem:           newSemaphore(opts.MaxConcurrent),
		inFlight:      make(map[string]struct{}),
	}, nil
}
