package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/audio-summarizer/internal/version"
)

type Dependencies struct {
	// Load fills Config and Logger from the --config path. Empty path means defaults.
	Load        func(configPath string) error
	Config      *config.Config
	Logger      logger.Logger
	NewPipeline func(reporter pipeline.Reporter, progress io.Writer) (pipeline.Pipeline, error)
	LookPath    func(file string) (string, error)
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "audio-summarizer",
		Short: "Transcribe audio files and summarize them",
		Long: "Splits an audio file into 30 second windows, transcribes each through a speech recognition " +
			"service and writes a summary of the transcript next to the audio file.\n\n" +
			"Run without a subcommand for the interactive menu.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Load == nil {
				return nil
			}
			return deps.Load(configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runInteractive(cmd.Context(), deps, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if errors.Is(err, context.Canceled) {
				// Ctrl+C ends the session like choosing Exit
				return nil
			}
			return err
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (default ./config.yaml if present)")

	rootCmd.AddCommand(NewProcessCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
