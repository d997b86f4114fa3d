package config

import "image/color"

// Drawing defaults
const (
	// Cell side length in pixels
	CellSize = 40

	// Wall thickness in pixels for saved images
	WallThickness = 4

	// Wall stroke in pixels for the live window
	WindowStroke = 2

	// Name of the image written when no output is given
	OutputFile = "maze_output.png"

	// Window title used by the viewer
	WindowTitle = "Maze Projector"

	// Largest window the viewer will open, in pixels
	MaxWindowWidth  = 1600
	MaxWindowHeight = 1000

	// Small mazes are scaled up until their longest side reaches this
	MinWindowSide = 320

	// Label font size relative to the cell size
	LabelScale = 0.5
)

// Palette
var (
	BackgroundColor = color.RGBA{255, 255, 255, 255} // White
	WallColor       = color.RGBA{0, 0, 0, 255}       // Black
	StartColor      = color.RGBA{144, 238, 144, 255} // Light green
	GoalColor       = color.RGBA{240, 128, 128, 255} // Light coral
	LabelColor      = color.RGBA{40, 40, 40, 255}    // Dark gray
)

// GetWindowSize returns the window size for a canvas. Small canvases are
// scaled up by a whole factor, large ones scaled down to the largest allowed
// window, keeping the aspect ratio.
func GetWindowSize(canvasWidth, canvasHeight int) (width, height int) {
	width, height = canvasWidth, canvasHeight
	if width <= 0 || height <= 0 {
		return 1, 1
	}
	if longest := max(width, height); longest < MinWindowSide {
		scale := (MinWindowSide + longest - 1) / longest
		width, height = width*scale, height*scale
	}
	if width > MaxWindowWidth {
		height = height * MaxWindowWidth / width
		width = MaxWindowWidth
	}
	if height > MaxWindowHeight {
		width = width * MaxWindowHeight / height
		height = MaxWindowHeight
	}
	return max(width, 1), max(height, 1)
}
