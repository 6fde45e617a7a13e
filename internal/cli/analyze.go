package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/report"
	"github.com/Sillem/zone2-polar-flow-analyzer/internal/service"
	"github.com/Sillem/zone2-polar-flow-analyzer/internal/workout"
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a workout export and record the decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, history, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer history.Close()

			svc := service.NewAnalyzeService(history, cfg.Analysis.Params(), logger)
			res, err := svc.Analyze(args[0])
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %v", workout.ErrNotPolarCSV, err)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Changes were saved to %s\n", cfg.History.Path)
			if err := report.RenderDiagnostics(out, res.Diagnostics); err != nil {
				return err
			}
			return report.Render(out, res.Decision, res.Table)
		},
	}
}
