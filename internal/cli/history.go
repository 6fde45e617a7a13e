package cli

import (
	"github.com/spf13/cobra"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/report"
)

func newHistoryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recorded workout decisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, history, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer history.Close()

			decisions, err := history.List()
			if err != nil {
				return err
			}
			return report.RenderHistory(cmd.OutOrStdout(), decisions)
		},
	}
}
