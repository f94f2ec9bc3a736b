package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/render"
)

func (c *CLI) generateCommand() *cobra.Command {
	var flags mazeFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and print a maze",
		Long: `Generate a random perfect maze with Wilson's algorithm and print it.
Use --costs to show edge costs between cells.`,
		Example: `  labyrinth generate --rows 8 --cols 16 --seed 42
  labyrinth generate --costs --directional`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd.Flags(), &flags, nil)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			m, err := newMaze(cfg, logger)
			if err != nil {
				return err
			}

			var opts []render.Option
			if cfg.ShowCosts {
				opts = append(opts, render.WithCosts())
			}
			return render.Text(cmd.OutOrStdout(), m, nil, opts...)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
