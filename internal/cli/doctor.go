package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(cmd.OutOrStdout())
			cfg := deps.Config
			lookPath := deps.LookPath
			if lookPath == nil {
				lookPath = exec.LookPath
			}
			ok := true

			if path, err := lookPath(cfg.FFmpeg.BinaryPath); err != nil {
				f.SetupCheck("ffmpeg", false, "not found, needed for formats other than 16 kHz mono WAV")
				ok = false
			} else {
				f.SetupCheck("ffmpeg", true, path)
			}

			switch cfg.Speech.Backend {
			case config.SpeechWhisper:
				if path, err := lookPath(cfg.Whisper.BinaryPath); err != nil {
					f.SetupCheck("whisper binary", false, fmt.Sprintf("%s not found", cfg.Whisper.BinaryPath))
					ok = false
				} else {
					f.SetupCheck("whisper binary", true, path)
				}
				if _, err := os.Stat(cfg.Whisper.ModelPath); err != nil {
					f.SetupCheck("whisper model", false, fmt.Sprintf("%s not readable", cfg.Whisper.ModelPath))
					ok = false
				} else {
					f.SetupCheck("whisper model", true, cfg.Whisper.ModelPath)
				}
			case config.SpeechGemini:
				ok = checkGemini(f, cfg) && ok
			default:
				ok = checkOpenAI(f, cfg) && ok
			}

			switch cfg.Summary.Backend {
			case config.SummaryOpenAI:
				if cfg.Speech.Backend != config.SpeechOpenAI {
					ok = checkOpenAI(f, cfg) && ok
				}
			case config.SummaryAnthropic:
				if cfg.Anthropic.APIKey != "" {
					f.SetupCheck("Anthropic API key", true, "configured")
				} else {
					f.SetupCheck("Anthropic API key", false, "not set. Set ANTHROPIC_API_KEY or add to config")
					ok = false
				}
			default:
				if cfg.Speech.Backend != config.SpeechGemini {
					ok = checkGemini(f, cfg) && ok
				}
			}

			f.SetupCheck("Speech backend", true, fmt.Sprintf("%s (%s)", cfg.Speech.Backend, cfg.Speech.Model))
			f.SetupCheck("Summary backend", true, fmt.Sprintf("%s (%s)", cfg.Summary.Backend, cfg.Summary.Model))
			f.SetupCheck("Watch directory", true, cfg.Paths.Input)

			if ok {
				f.Success("\nAll prerequisites met. Ready to summarize!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}

func checkOpenAI(f *output.Formatter, cfg *config.Config) bool {
	switch {
	case cfg.OpenAI.APIKey != "":
		f.SetupCheck("OpenAI API key", true, "configured")
	case cfg.OpenAI.BaseURL != "":
		f.SetupCheck("OpenAI API key", true, "not needed for "+cfg.OpenAI.BaseURL)
	default:
		f.SetupCheck("OpenAI API key", false, "not set. Set OPENAI_API_KEY or add to config")
		return false
	}
	return true
}

func checkGemini(f *output.Formatter, cfg *config.Config) bool {
	if n := len(cfg.Gemini.APIKeys); n > 0 {
		f.SetupCheck("Gemini API keys", true, fmt.Sprintf("%d configured", n))
		return true
	}
	f.SetupCheck("Gemini API keys", false, "not set. Set GEMINI_API_KEYS or add to config")
	return false
}
