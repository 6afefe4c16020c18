package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

func startWatcher(t *testing.T, dir string, handler EventHandler, opts Options) (context.CancelFunc, <-chan error) {
	t.Helper()
	w, err := New(dir, handler, logger.NewNop(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()
	return cancel, done
}

func TestWatcherHandlesNewAudioFiles(t *testing.T) {
	dir := t.TempDir()
	seen := make(chan string, 4)
	handler := func(ctx context.Context, path string) error {
		seen <- path
		return nil
	}

	cancel, done := startWatcher(t, dir, handler, Options{})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	audioPath := filepath.Join(dir, "talk.wav")
	require.NoError(t, os.WriteFile(audioPath, []byte("x"), 0644))

	select {
	case got := <-seen:
		assert.Equal(t, audioPath, got)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called for the audio file")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.Empty(t, seen)
}

func TestWatcherHandlerErrorIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	handler := func(ctx context.Context, path string) error {
		calls.Add(1)
		return errors.New("transcription failed")
	}

	cancel, done := startWatcher(t, dir, handler, Options{})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.mp3"), []byte("x"), 0644))
	require.Eventually(t, func() bool { return calls.Load() == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.mp3"), []byte("x"), 0644))
	require.Eventually(t, func() bool { return calls.Load() == 2 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcherCustomMatch(t *testing.T) {
	dir := t.TempDir()
	seen := make(chan string, 4)
	handler := func(ctx context.Context, path string) error {
		seen <- filepath.Base(path)
		return nil
	}
	match := func(path string) bool { return filepath.Ext(path) == ".raw" }

	cancel, done := startWatcher(t, dir, handler, Options{Match: match, SettleDelay: time.Millisecond})
	defer func() {
		cancel()
		<-done
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.wav"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "take.raw"), []byte("x"), 0644))

	select {
	case got := <-seen:
		assert.Equal(t, "take.raw", got)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}
}

func TestNewCreatesInputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "input")
	w, err := New(dir, func(context.Context, string) error { return nil }, logger.NewNop(), Options{})
	require.NoError(t, err)
	defer w.Stop()

	assert.DirExists(t, dir)
}

func TestSemaphore(t *testing.T) {
	s := newSemaphore(1)
	require.NoError(t, s.acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.acquire(ctx), context.Canceled)

	s.release()
	assert.NoError(t, s.acquire(context.Background()))
}
