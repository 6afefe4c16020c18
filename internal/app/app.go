package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nguyentantai21042004/audio-summarizer/internal/audio"
	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/gemini"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/audio-summarizer/internal/speech"
	"github.com/nguyentantai21042004/audio-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/audio-summarizer/pkg/executor"
)

var (
	ErrMissingOpenAIKey    = errors.New("missing OpenAI API key: set OPENAI_API_KEY or openai.api_key")
	ErrMissingAnthropicKey = errors.New("missing Anthropic API key: set ANTHROPIC_API_KEY or anthropic.api_key")
)

// App holds the backends selected by the configuration.
type App struct {
	Config     *config.Config
	Logger     logger.Logger
	Executor   executor.Executor
	Recognizer speech.Recognizer
	Model      summarizer.Model
}

func New(cfg *config.Config, log logger.Logger) (*App, error) {
	exec := executor.New()

	var geminiClient *gemini.Client
	if cfg.Speech.Backend == config.SpeechGemini || cfg.Summary.Backend == config.SummaryGemini {
		c, err := gemini.New(cfg.Gemini.APIKeys, log)
		if err != nil {
			return nil, err
		}
		geminiClient = c
	}

	recognizer, err := newRecognizer(cfg, exec, geminiClient)
	if err != nil {
		return nil, fmt.Errorf("speech backend: %w", err)
	}

	model, err := newModel(cfg, geminiClient)
	if err != nil {
		return nil, fmt.Errorf("summary backend: %w", err)
	}

	return &App{
		Config:     cfg,
		Logger:     log,
		Executor:   exec,
		Recognizer: recognizer,
		Model:      model,
	}, nil
}

// Pipeline assembles the converter, summarizer and pipeline. progress receives the per-window bar.
func (a *App) Pipeline(reporter pipeline.Reporter, progress io.Writer) pipeline.Pipeline {
	cfg := a.Config

	conv := audio.New(a.Recognizer, a.Executor, a.Logger, audio.Options{
		ChunkDuration: time.Duration(cfg.Speech.ChunkSeconds) * time.Second,
		GapMarker:     cfg.Speech.GapMarker,
		TempDir:       cfg.Paths.Temp,
		FFmpegPath:    cfg.FFmpeg.BinaryPath,
		SampleRate:    cfg.FFmpeg.SampleRate,
		Progress:      progress,
	})

	sum := summarizer.New(a.Model, a.Logger, summarizer.Options{
		ChunkSize: cfg.Summary.ChunkSize,
		Bounds: summarizer.Bounds{
			MinLength: cfg.Summary.MinLength,
			MaxLength: cfg.Summary.MaxLength,
		},
	})

	return pipeline.New(conv, sum, reporter, a.Logger, pipeline.Options{Docx: cfg.Output.Docx})
}

func newRecognizer(cfg *config.Config, exec executor.Executor, gc *gemini.Client) (speech.Recognizer, error) {
	switch cfg.Speech.Backend {
	case config.SpeechGemini:
		return speech.NewGeminiRecognizer(gc, cfg.Speech.Model, cfg.Speech.Language), nil
	case config.SpeechWhisper:
		return speech.NewWhisperRecognizer(exec, cfg.Whisper.BinaryPath, cfg.Whisper.ModelPath,
			cfg.Speech.Language, cfg.Whisper.Threads), nil
	default:
		if cfg.OpenAI.APIKey == "" && cfg.OpenAI.BaseURL == "" {
			return nil, ErrMissingOpenAIKey
		}
		return speech.NewOpenAIRecognizer(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL,
			cfg.Speech.Model, cfg.Speech.Language), nil
	}
}

func newModel(cfg *config.Config, gc *gemini.Client) (summarizer.Model, error) {
	switch cfg.Summary.Backend {
	case config.SummaryOpenAI:
		if cfg.OpenAI.APIKey == "" && cfg.OpenAI.BaseURL == "" {
			return nil, ErrMissingOpenAIKey
		}
		return summarizer.NewOpenAIModel(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL,
			cfg.Summary.Model, cfg.Summary.Prompt), nil
	case config.SummaryAnthropic:
		if cfg.Anthropic.APIKey == "" {
			return nil, ErrMissingAnthropicKey
		}
		return summarizer.NewAnthropicModel(cfg.Anthropic.APIKey, "", cfg.Summary.Model, cfg.Summary.Prompt), nil
	default:
		return summarizer.NewGeminiModel(gc, cfg.Summary.Model, cfg.Summary.Prompt), nil
	}
}
