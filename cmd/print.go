package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"maze-projector/render"
)

func (a *app) newPrintCommand() *cobra.Command {
	var (
		plain  bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print a normalized, colored copy of a maze",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Status goes to stderr so stdout holds only maze text
			out := cmd.OutOrStdout()
			grid, err := a.loadGrid(cmd.ErrOrStderr(), args[0], parseOptions(strict, 0)...)
			if err != nil {
				return err
			}

			if plain {
				_, err = fmt.Fprint(out, grid.String())
				return err
			}
			_, err = fmt.Fprintln(out, render.RenderText(grid, render.DefaultTerminalStyles()))
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print without colors")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject unrecognized cell contents")

	return cmd
}
