package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/internal/output"
	"github.com/nguyentantai21042004/audio-summarizer/internal/pipeline"
)

// runInteractive shows the menu until the user exits, stdin closes or ctx is cancelled.
func runInteractive(ctx context.Context, deps *Dependencies, in io.Reader, out, progress io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	f := output.NewFormatter(out)
	lines := readLines(ctx, in)
	var p pipeline.Pipeline

	f.Banner()
	for {
		f.Menu()
		f.PromptChoice()
		choice, ok := nextLine(ctx, lines)
		if !ok {
			f.Goodbye()
			return ctx.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			f.PromptPath()
			line, ok := nextLine(ctx, lines)
			if !ok {
				f.Goodbye()
				return ctx.Err()
			}
			path := cleanPath(line)
			if !isFile(path) {
				f.FileNotFound()
				continue
			}

			if p == nil {
				built, err := deps.NewPipeline(f, progress)
				if err != nil {
					f.Error(err.Error())
					continue
				}
				p = built
			}

			if _, err := p.Process(ctx, path); err != nil {
				f.Error(err.Error())
				if ctx.Err() != nil {
					return ctx.Err()
				}
			}
		case "2":
			f.Goodbye()
			return nil
		default:
			f.InvalidChoice()
		}
	}
}

// readLines feeds lines from in to the returned channel, closing it on EOF.
// It stops sending once ctx is done.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func nextLine(ctx context.Context, lines <-chan string) (string, bool) {
	select {
	case line, ok := <-lines:
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}

// cleanPath strips whitespace and the quotes terminals add to dropped files.
func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return s
}

func isFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
