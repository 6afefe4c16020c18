package watcher

import "context"

// Watcher feeds new audio files in a directory to a handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one detected file.
type EventHandler func(ctx context.Context, filePath string) error
