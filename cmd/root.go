// Package cmd implements the maze-projector command line.
package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"maze-projector/config"
	"maze-projector/maze"
)

// ViewOptions configures the live window
type ViewOptions struct {
	Title    string
	CellSize int
	Stroke   int
	Labels   bool
	Verbose  bool
}

// Viewer opens a window showing grid and blocks until it is closed
type Viewer func(grid *maze.Grid, opts ViewOptions) error

// app carries the state shared by all subcommands
type app struct {
	cfgFile string
	verbose bool
	viewer  Viewer
	cfg     *config.Config
}

// Execute runs the command line with the given window implementation
func Execute(viewer Viewer) error {
	return NewRootCommand(viewer).Execute()
}

// NewRootCommand builds the command tree
func NewRootCommand(viewer Viewer) *cobra.Command {
	a := &app{viewer: viewer}

	rootCmd := &cobra.Command{
		Use:   "maze-projector",
		Short: "Draw ASCII mazes as images or in a window",
		Long: `maze-projector reads a maze drawn with 'o' vertices, '---' horizontal walls
and '|' vertical walls, with 'S' and 'G' marking the start and goal cells.

Run without a subcommand to be prompted for the maze file, cell size and
wall thickness; the maze is then saved as an image.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		a.newDrawCommand(),
		a.newViewCommand(),
		a.newPrintCommand(),
	)

	return rootCmd
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.infof("configuration loaded (cell size %d, wall thickness %d)", cfg.Render.CellSize, cfg.Render.WallThickness)
	return nil
}

// infof logs a diagnostic line when --verbose is set
func (a *app) infof(format string, args ...any) {
	if a.verbose {
		log.Printf("[MAZE] [INFO] "+format, args...)
	}
}

// loadGrid parses a maze file and reports its size
func (a *app) loadGrid(out io.Writer, path string, opts ...maze.Option) (*maze.Grid, error) {
	a.infof("parsing %s", path)
	grid, err := maze.LoadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	rows, cols := grid.Dimensions()
	fmt.Fprintf(out, "Maze parsed: %d rows x %d columns.\n", rows, cols)
	return grid, nil
}

func parseOptions(strict bool, fixed int) []maze.Option {
	var opts []maze.Option
	if strict {
		opts = append(opts, maze.WithStrictMarkers())
	}
	if fixed > 0 {
		opts = append(opts, maze.WithExpectedSize(fixed, fixed))
	}
	return opts
}
