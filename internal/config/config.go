package config

import (
	"fmt"
	"os"
)

// Speech backends.
const (
	SpeechOpenAI  = "openai"
	SpeechGemini  = "gemini"
	SpeechWhisper = "whisper"
)

// Summary backends.
const (
	SummaryGemini    = "gemini"
	SummaryOpenAI    = "openai"
	SummaryAnthropic = "anthropic"
)

type Config struct {
	Speech      SpeechConfig      `yaml:"speech"`
	Summary     SummaryConfig     `yaml:"summary"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Anthropic   AnthropicConfig   `yaml:"anthropic"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
}

type SpeechConfig struct {
	Backend      string `yaml:"backend"`
	Model        string `yaml:"model"`
	Language     string `yaml:"language"`
	ChunkSeconds int    `yaml:"chunk_seconds"`
	// GapMarker replaces windows that could not be recognized. Empty omits them.
	GapMarker string `yaml:"gap_marker"`
}

type SummaryConfig struct {
	Backend   string `yaml:"backend"`
	Model     string `yaml:"model"`
	ChunkSize int    `yaml:"chunk_size"`
	MaxLength int    `yaml:"max_length"`
	MinLength int    `yaml:"min_length"`
	Prompt    string `yaml:"prompt"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type PathsConfig struct {
	Input string `yaml:"input"`
	Temp  string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

func (c *Config) Validate() error {
	if c.Speech.Backend == "" {
		c.Speech.Backend = SpeechOpenAI
	}
	switch c.Speech.Backend {
	case SpeechOpenAI, SpeechGemini, SpeechWhisper:
	default:
		return fmt.Errorf("speech.backend %q is not supported", c.Speech.Backend)
	}

	if c.Summary.Backend == "" {
		c.Summary.Backend = SummaryGemini
	}
	switch c.Summary.Backend {
	case SummaryGemini, SummaryOpenAI, SummaryAnthropic:
	default:
		return fmt.Errorf("summary.backend %q is not supported", c.Summary.Backend)
	}

	if c.Speech.ChunkSeconds < 0 {
		return fmt.Errorf("speech.chunk_seconds must be positive")
	}
	if c.Summary.ChunkSize < 0 {
		return fmt.Errorf("summary.chunk_size must be positive")
	}
	if c.Speech.Backend == SpeechWhisper && c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required for the whisper backend")
	}

	if c.Speech.ChunkSeconds == 0 {
		c.Speech.ChunkSeconds = 30
	}
	if c.Speech.Language == "" {
		c.Speech.Language = "en"
	}
	if c.Speech.Model == "" {
		c.Speech.Model = defaultSpeechModel(c.Speech.Backend)
	}
	if c.Summary.ChunkSize == 0 {
		c.Summary.ChunkSize = 1024
	}
	if c.Summary.MaxLength == 0 {
		c.Summary.MaxLength = 130
	}
	if c.Summary.MinLength == 0 {
		c.Summary.MinLength = 30
	}
	if c.Summary.MinLength > c.Summary.MaxLength {
		return fmt.Errorf("summary.min_length (%d) exceeds summary.max_length (%d)",
			c.Summary.MinLength, c.Summary.MaxLength)
	}
	if c.Summary.Model == "" {
		c.Summary.Model = defaultSummaryModel(c.Summary.Backend)
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}

func defaultSpeechModel(backend string) string {
	switch backend {
	case SpeechGemini:
		return "gemini-2.5-flash"
	case SpeechWhisper:
		return ""
	default:
		return "whisper-1"
	}
}

func defaultSummaryModel(backend string) string {
	switch backend {
	case SummaryOpenAI:
		return "gpt-4o-mini"
	case SummaryAnthropic:
		return "claude-haiku-4-5"
	default:
		return "gemini-2.5-flash"
	}
}
