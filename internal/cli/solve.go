package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/solve"
)

func (c *CLI) solveCommand() *cobra.Command {
	var (
		flags   mazeFlags
		format  string
		hand    string
		hopTour bool
	)

	cmd := &cobra.Command{
		Use:   "solve [left|dfs|bfs|dijkstra|tour|basic|advanced]",
		Short: "Generate a maze and solve it",
		Long: `Generate a random maze and solve it with one strategy, or with a mode:

  basic     dfs, bfs and dijkstra
  advanced  basic plus the all-corners tour

Without an argument the configured algorithm is used (default: advanced).`,
		Example: `  labyrinth solve bfs --rows 12 --cols 20
  labyrinth solve tour --seed 7 --color
  labyrinth solve basic --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd.Flags(), &flags, func(cfg *config.Config) {
				if len(args) == 1 {
					cfg.Algorithm = args[0]
				}
				if cmd.Flags().Changed("format") {
					cfg.Format = strings.ToLower(format)
				}
			})
			if err != nil {
				return err
			}
			algos, err := cfg.Selection()
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			m, err := newMaze(cfg, logger)
			if err != nil {
				return err
			}

			opts := []solve.Option{solve.WithContext(cmd.Context()), solve.WithLogger(logger)}
			switch strings.ToLower(hand) {
			case "left":
			case "right":
				opts = append(opts, solve.WithHand(solve.HandRight))
			default:
				return fmt.Errorf("%w: unknown hand %q", config.ErrInvalidConfig, hand)
			}
			if hopTour {
				opts = append(opts, solve.WithHopMetric())
			}

			r := &runner{out: cmd.OutOrStdout(), cfg: cfg, maze: m, logger: logger, opts: opts}
			return r.run(algos)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", config.FormatText, "output format: text or json")
	cmd.Flags().StringVar(&hand, "hand", "left", "wall follower hand: left or right")
	cmd.Flags().BoolVar(&hopTour, "hop-tour", false, "weigh tour legs by steps instead of cost")
	return cmd
}

// runner solves one maze with a list of strategies and reports each.
type runner struct {
	out    io.Writer
	cfg    config.Config
	maze   *grid.Maze
	logger *log.Logger
	opts   []solve.Option
}

func (r *runner) run(algos []solve.Algorithm) error {
	var rep *report
	if r.cfg.Format == config.FormatJSON {
		rep = newReport(r.cfg)
	} else {
		printTitle(r.out, "Maze %dx%d (seed %d)", r.cfg.Rows, r.cfg.Cols, r.cfg.Seed)
		if err := render.Text(r.out, r.maze, nil, r.renderOptions(anyHasCost(algos))...); err != nil {
			return err
		}
	}

	for _, algo := range algos {
		prog := newProgress(r.logger)
		out, err := solve.Run(r.maze, algo, r.opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", algo, err)
		}
		prog.done("solved", "algorithm", algo, "length", len(out.Path))

		if rep != nil {
			rep.add(out)
			continue
		}
		if err = r.print(out); err != nil {
			return err
		}
	}

	if rep != nil {
		r.logger.Debug("writing report", "run_id", rep.RunID)
		return rep.write(r.out)
	}
	return nil
}

// print renders one outcome with its checks.
func (r *runner) print(out solve.Outcome) error {
	fmt.Fprintln(r.out)
	printTitle(r.out, "Solving %s", out.Algorithm)

	opts := r.renderOptions(out.HasCost)
	if out.Tour != nil {
		opts = append(opts, render.WithWaypoints(out.Tour.Waypoints[:]...))
	}
	if err := render.Text(r.out, r.maze, out.Path, opts...); err != nil {
		return err
	}

	printKeyValue(r.out, "length", len(out.Path))
	if out.HasCost {
		printKeyValue(r.out, "cost", out.Cost)
	}
	if out.Tour != nil {
		printDetail(r.out, "corner order %v", out.Tour.Order)
	}
	printCheck(r.out, grid.ValidateSteps(r.maze, out.Path), "valid steps")
	if out.HasCost {
		printCheck(r.out, checkCost(r.maze, out), "cost matches route")
	}
	return nil
}

func (r *runner) renderOptions(costs bool) []render.Option {
	var opts []render.Option
	if costs || r.cfg.ShowCosts {
		opts = append(opts, render.WithCosts())
	}
	if r.cfg.Color {
		opts = append(opts, render.WithColor())
	}
	return opts
}

func anyHasCost(algos []solve.Algorithm) bool {
	for _, a := range algos {
		if a.HasCost() {
			return true
		}
	}
	return false
}

// checkCost recomputes the route cost from the grid.
func checkCost(g grid.Grid, out solve.Outcome) error {
	cost, err := grid.PathCost(g, out.Path)
	if err != nil {
		return err
	}
	if cost != out.Cost {
		return fmt.Errorf("route costs %d, reported %d", cost, out.Cost)
	}
	return nil
}
