package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/audio-summarizer/internal/output"
)

func NewProcessCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "process <file>...",
		Short: "Summarize one or more audio files without the menu",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f := output.NewFormatter(cmd.OutOrStdout())

			p, err := deps.NewPipeline(f, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			start := time.Now()
			failed := 0
			for _, path := range args {
				if _, err := p.Process(ctx, path); err != nil {
					f.Error(fmt.Sprintf("%s: %v", path, err))
					failed++
					if ctx.Err() != nil {
						return ctx.Err()
					}
				}
			}
			f.Finished(len(args)-failed, time.Since(start))

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}
