package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExecutor struct {
	out  string
	err  error
	name string
	args []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	return f.out, f.err
}

func (f *fakeExecutor) LookPath(name string) (string, error) { return name, nil }

func TestWhisperRecognizer(t *testing.T) {
	exec := &fakeExecutor{out: "\n Hello there.\n General Kenobi.\n"}
	rec := NewWhisperRecognizer(exec, "whisper-cli", "models/base.bin", "en", 4)

	res := rec.Recognize(context.Background(), Clip{Path: "/tmp/chunk_000.wav"})

	assert.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "Hello there. General Kenobi.", res.Text)
	assert.Equal(t, "whisper-cli", exec.name)
	assert.Contains(t, exec.args, "/tmp/chunk_000.wav")
	assert.Contains(t, exec.args, "models/base.bin")
	assert.Contains(t, exec.args, "-nt")
}

func TestWhisperRecognizerBlank(t *testing.T) {
	rec := NewWhisperRecognizer(&fakeExecutor{out: " [BLANK_AUDIO]\n"}, "whisper-cli", "m", "en", 1)
	res := rec.Recognize(context.Background(), Clip{Path: "c.wav"})
	assert.Equal(t, StatusUnintelligible, res.Status)
}

func TestWhisperRecognizerFailure(t *testing.T) {
	rec := NewWhisperRecognizer(&fakeExecutor{err: errors.New("exit status 1")}, "whisper-cli", "m", "en", 1)
	res := rec.Recognize(context.Background(), Clip{Path: "c.wav"})
	assert.Equal(t, StatusUnreachable, res.Status)
	assert.Error(t, res.Err)
}
