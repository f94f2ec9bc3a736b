// Package cli implements the labyrinth command-line interface.
//
// Commands:
//   - solve:    generate a maze and run one strategy, or a mode of several
//   - generate: print a generated maze
//   - version:  print build information
//
// Every command accepts --verbose (-v) for debug logging and --config for a
// TOML settings file. The logger travels through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/grid"
)

const appName = "labyrinth"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Labyrinth generates weighted mazes and solves them",
		Long:         `Labyrinth generates random perfect mazes with weighted edges and solves them with a wall follower, depth-first and breadth-first search, Dijkstra, or an all-corners tour.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.SetVersionTemplate(versionTemplate())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML settings file")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.versionCommand())
	return root
}

// mazeFlags are the generator flags shared by solve and generate.
type mazeFlags struct {
	rows, cols       int
	seed             int64
	minCost, maxCost int
	directional      bool
	costs            bool
	color            bool
}

func (f *mazeFlags) register(fs *pflag.FlagSet) {
	def := config.Default()
	fs.IntVar(&f.rows, "rows", def.Rows, "maze height in cells")
	fs.IntVar(&f.cols, "cols", def.Cols, "maze width in cells")
	fs.Int64Var(&f.seed, "seed", def.Seed, "generator seed (0 = fixed default)")
	fs.IntVar(&f.minCost, "min-cost", def.MinCost, "lowest edge cost")
	fs.IntVar(&f.maxCost, "max-cost", def.MaxCost, "highest edge cost")
	fs.BoolVar(&f.directional, "directional", def.Directional, "draw a separate cost for each edge direction")
	fs.BoolVar(&f.costs, "costs", def.ShowCosts, "print edge costs in the maze")
	fs.BoolVar(&f.color, "color", def.Color, "colour the route overlay")
}

// apply copies explicitly set flags over cfg.
func (f *mazeFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("rows") {
		cfg.Rows = f.rows
	}
	if fs.Changed("cols") {
		cfg.Cols = f.cols
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("min-cost") {
		cfg.MinCost = f.minCost
	}
	if fs.Changed("max-cost") {
		cfg.MaxCost = f.maxCost
	}
	if fs.Changed("directional") {
		cfg.Directional = f.directional
	}
	if fs.Changed("costs") {
		cfg.ShowCosts = f.costs
	}
	if fs.Changed("color") {
		cfg.Color = f.color
	}
}

// loadConfig layers the config sources and the command's flags.
func (c *CLI) loadConfig(fs *pflag.FlagSet, f *mazeFlags, extra func(*config.Config)) (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	f.apply(fs, &cfg)
	if extra != nil {
		extra(&cfg)
	}
	return cfg, cfg.Validate()
}

// newMaze generates the maze described by cfg.
func newMaze(cfg config.Config, logger *log.Logger) (*grid.Maze, error) {
	opts := []generate.Option{
		generate.WithSeed(cfg.Seed),
		generate.WithCostRange(cfg.MinCost, cfg.MaxCost),
		generate.WithLogger(logger),
	}
	if cfg.Directional {
		opts = append(opts, generate.WithDirectionalCosts())
	}
	return generate.Wilson(cfg.Rows, cfg.Cols, opts...)
}
