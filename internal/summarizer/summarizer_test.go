package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

type fakeModel struct {
	chunks []string
	bounds []Bounds
	failAt int
	empty  map[int]bool
}

func (m *fakeModel) Generate(_ context.Context, chunk string, b Bounds) (string, error) {
	n := len(m.chunks)
	m.chunks = append(m.chunks, chunk)
	m.bounds = append(m.bounds, b)
	if m.failAt > 0 && n+1 == m.failAt {
		return "", errors.New("model overloaded")
	}
	if m.empty[n] {
		return "  ", nil
	}
	return fmt.Sprintf(" summary %d ", n+1), nil
}

func TestSummarizeJoinsChunkSummaries(t *testing.T) {
	model := &fakeModel{}
	s := New(model, logger.NewNop(), Options{ChunkSize: 1024, Bounds: Bounds{MinLength: 30, MaxLength: 130}})

	got, err := s.Summarize(context.Background(), strings.Repeat("x", 2500))
	require.NoError(t, err)

	assert.Equal(t, "summary 1 summary 2 summary 3", got)
	require.Len(t, model.chunks, 3)
	assert.Len(t, model.chunks[0], 1024)
	assert.Len(t, model.chunks[1], 1024)
	assert.Len(t, model.chunks[2], 452)
	for _, b := range model.bounds {
		assert.Equal(t, Bounds{MinLength: 30, MaxLength: 130}, b)
	}
}

func TestSummarizeEmptyText(t *testing.T) {
	model := &fakeModel{}
	s := New(model, logger.NewNop(), Options{})

	got, err := s.Summarize(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, model.chunks)
}

func TestSummarizeModelErrorAborts(t *testing.T) {
	model := &fakeModel{failAt: 2}
	s := New(model, logger.NewNop(), Options{ChunkSize: 10})

	_, err := s.Summarize(context.Background(), strings.Repeat("y", 35))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk 2/4")
	assert.Len(t, model.chunks, 2)
}

func TestSummarizeSkipsEmptyChunkSummaries(t *testing.T) {
	model := &fakeModel{empty: map[int]bool{1: true}}
	s := New(model, logger.NewNop(), Options{ChunkSize: 10})

	got, err := s.Summarize(context.Background(), strings.Repeat("z", 30))
	require.NoError(t, err)
	assert.Equal(t, "summary 1 summary 3", got)
}

func TestNewDefaults(t *testing.T) {
	s := New(&fakeModel{}, logger.NewNop(), Options{}).(*implSummarizer)
	assert.Equal(t, 1024, s.chunkSize)
	assert.Equal(t, Bounds{MinLength: 30, MaxLength: 130}, s.bounds)
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("", "the passage", Bounds{MinLength: 30, MaxLength: 130})
	assert.True(t, strings.HasPrefix(p, DefaultInstruction))
	assert.Contains(t, p, "between 30 and 130 words")
	assert.Contains(t, p, "---\nthe passage\n---")

	custom := BuildPrompt("Summarize in French.", "texte", Bounds{MinLength: 5, MaxLength: 10})
	assert.True(t, strings.HasPrefix(custom, "Summarize in French."))
}
