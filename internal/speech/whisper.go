package speech

import (
	"context"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/pkg/executor"
)

// whisperRecognizer runs a local whisper.cpp binary on each clip.
type whisperRecognizer struct {
	executor   executor.Executor
	binaryPath string
	modelPath  string
	language   string
	threads    int
}

func NewWhisperRecognizer(exec executor.Executor, binaryPath, modelPath, language string, threads int) Recognizer {
	return &whisperRecognizer{
		executor:   exec,
		binaryPath: binaryPath,
		modelPath:  modelPath,
		language:   language,
		threads:    threads,
	}
}

func (w *whisperRecognizer) Recognize(ctx context.Context, clip Clip) Result {
	// -nt: no timestamps, -np: no progress/system prints, so stdout is the bare text
	args := []string{
		"-m", w.modelPath,
		"-f", clip.Path,
		"-l", w.language,
		"-t", strconv.Itoa(w.threads),
		"-nt",
		"-np",
	}

	out, err := w.executor.Execute(ctx, w.binaryPath, args...)
	if err != nil {
		return Unreachable(err)
	}

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return Recognized(strings.Join(lines, " "))
}
