package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summarizer/internal/output"
	"github.com/nguyentantai21042004/audio-summarizer/internal/watcher"
)

const settleDelay = 500 * time.Millisecond

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Summarize audio files as they appear in paths.input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f := output.NewFormatter(cmd.OutOrStdout())

			p, err := deps.NewPipeline(f, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			handler := func(ctx context.Context, path string) error {
				_, err := p.Process(ctx, path)
				return err
			}

			w, err := watcher.New(deps.Config.Paths.Input, handler, deps.Logger, watcher.Options{
				MaxConcurrent: deps.Config.Performance.MaxConcurrent,
				SettleDelay:   settleDelay,
			})
			if err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			defer w.Stop()

			f.Info(fmt.Sprintf("Watching %s for new audio files. Press Ctrl+C to stop.", deps.Config.Paths.Input))
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
