package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Summarize splits text into chunks, summarizes each in order and joins the results with a space.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	startTime := time.Now()
	chunks := SplitText(text, s.chunkSize)
	if len(chunks) == 0 {
		return "", nil
	}

	s.logger.Info(ctx, "Summarizing %d characters in %d chunks", len([]rune(text)), len(chunks))

	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		s.logger.Debug(ctx, "[%d/%d] Summarizing chunk of %d characters", i+1, len(chunks), len([]rune(chunk)))

		summary, err := s.model.Generate(ctx, chunk, s.bounds)
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}

		summary = strings.TrimSpace(summary)
		if summary == "" {
			s.logger.Warn(ctx, "Chunk %d/%d produced an empty summary", i+1, len(chunks))
			continue
		}
		summaries = append(summaries, summary)
	}

	s.logger.Info(ctx, "Summary complete: %d chunks in %s", len(chunks), time.Since(startTime).Round(time.Millisecond))
	return strings.Join(summaries, " "), nil
}
