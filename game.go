package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"maze-projector/cmd"
	"maze-projector/config"
	"maze-projector/maze"
	"maze-projector/screens"
	"maze-projector/systems"
)

// runViewer opens a window showing grid and returns once it is closed
func runViewer(grid *maze.Grid, opts cmd.ViewOptions) error {
	renderSystem, err := systems.NewRenderSystem(grid, opts.CellSize, opts.Stroke, opts.Labels)
	if err != nil {
		return err
	}

	messageLog := systems.GetMessageLog()
	messageLog.Echo = opts.Verbose
	logMazeFacts(messageLog, grid)

	stack := screens.NewScreenStack(screens.NewMazeScreen(opts.Title, renderSystem, messageLog))

	width, height := config.GetWindowSize(renderSystem.CanvasSize())
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(stack); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window closed with error: %w", err)
	}
	return nil
}

func logMazeFacts(messageLog *systems.MessageLog, grid *maze.Grid) {
	rows, cols := grid.Dimensions()
	messageLog.Addf(systems.MessageTypeSystem, "Loaded maze with %d rows and %d columns", rows, cols)

	markers := grid.Markers()
	for _, marker := range []maze.Marker{maze.MarkerStart, maze.MarkerGoal} {
		positions := markers[marker]
		if len(positions) == 0 {
			messageLog.Addf(systems.MessageTypeAlert, "No %s cell marked", marker)
			continue
		}
		for _, pos := range positions {
			messageLog.Addf(systems.MessageTypeMaze, "%s at row %d, column %d", marker, pos.Row, pos.Col)
		}
	}
	messageLog.Add("F1 details, F fullscreen, Esc or Q to quit")
}
