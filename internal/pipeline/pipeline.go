package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/output"
)

// Process transcribes, summarizes and writes the summary for audioPath.
func (p *implPipeline) Process(ctx context.Context, audioPath string) (Result, error) {
	startTime := time.Now()

	info, err := os.Stat(audioPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Result{}, fmt.Errorf("%s: %w", audioPath, ErrNotFound)
	}
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", audioPath, err)
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("%s is a directory: %w", audioPath, ErrNotFound)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting audio processing: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Transcribe
	p.reporter.Transcribing(audioPath)
	transcript, err := p.converter.Convert(ctx, audioPath)
	if err != nil {
		return Result{}, fmt.Errorf("transcribe: %w", err)
	}
	if transcript == "" {
		p.logger.Warn(ctx, "No speech recognized in %s, skipping summary", audioPath)
		p.reporter.NoSpeech()
		return Result{Skipped: true}, nil
	}
	p.reporter.Transcript(transcript)

	// Step 2: Summarize
	p.reporter.Summarizing()
	summary, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return Result{Transcript: transcript}, fmt.Errorf("summarize: %w", err)
	}
	res := Result{Transcript: transcript, Summary: summary}
	if summary == "" {
		p.logger.Warn(ctx, "Summarizer returned nothing for %s", audioPath)
		p.reporter.Warning("The summary is empty, nothing was saved.")
		return res, nil
	}
	p.reporter.Summary(summary)

	// Step 3: Write outputs
	res.SummaryPath = SummaryPath(audioPath)
	if err := os.WriteFile(res.SummaryPath, []byte(summary), 0644); err != nil {
		return res, fmt.Errorf("write summary: %w", err)
	}
	p.reporter.Saved(res.SummaryPath)

	if p.docx {
		docxPath := DocxPath(audioPath)
		report := output.Report{
			Title:      filepath.Base(basePath(audioPath)),
			Summary:    summary,
			Transcript: transcript,
		}
		if err := output.WriteDocx(docxPath, report); err != nil {
			p.logger.Warn(ctx, "Failed to write docx summary: %v", err)
			p.reporter.Warning(fmt.Sprintf("Could not write %s: %v", docxPath, err))
		} else {
			res.DocxPath = docxPath
			p.reporter.Saved(docxPath)
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Output summary: %s", res.SummaryPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return res, nil
}
