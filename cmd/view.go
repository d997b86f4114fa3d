package cmd

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"
)

var errNoViewer = errors.New("no window support in this build")

func (a *app) newViewCommand() *cobra.Command {
	var (
		cellSize int
		fixed    int
		strict   bool
		noLabels bool
	)

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Show a maze in a window until it is closed",
		Long: `Show a maze in a window. Press F1 for maze details and the status log,
H for key help, F for fullscreen, Escape or Q to quit.

--fixed N requires the maze to be exactly N x N cells.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.viewer == nil {
				return errNoViewer
			}
			if !cmd.Flags().Changed("cell-size") {
				cellSize = a.cfg.Window.CellSize
			}
			if !cmd.Flags().Changed("fixed") {
				fixed = a.cfg.Window.FixedSize
			}

			grid, err := a.loadGrid(cmd.OutOrStdout(), args[0], parseOptions(strict, fixed)...)
			if err != nil {
				return err
			}

			return a.viewer(grid, ViewOptions{
				Title:    a.cfg.Window.Title + " - " + filepath.Base(args[0]),
				CellSize: cellSize,
				Stroke:   a.cfg.Window.Stroke,
				Labels:   !noLabels,
				Verbose:  a.verbose,
			})
		},
	}

	cmd.Flags().IntVar(&cellSize, "cell-size", 0, "cell side length in pixels")
	cmd.Flags().IntVar(&fixed, "fixed", 0, "require an N x N maze (e.g. 16)")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject unrecognized cell contents")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "do not draw S/G letters")

	return cmd
}
