package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/config"
)

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write an example config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}

			created, err := config.CreateExample(path)
			if err != nil {
				return fmt.Errorf("creating config: %w", err)
			}

			out := cmd.OutOrStdout()
			if !created {
				fmt.Fprintf(out, "Config already exists at %s\n", path)
				return nil
			}
			fmt.Fprintf(out, "Created example config at %s\n", path)
			return nil
		},
	}
}
