package systems

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"maze-projector/maze"
	"maze-projector/render"
)

// RenderSystem draws a maze grid onto ebiten images
type RenderSystem struct {
	grid      *maze.Grid
	scene     *render.Scene
	palette   render.Palette
	labels    bool
	labelFace *text.GoTextFace
	cached    *ebiten.Image // the maze at canvas resolution
}

// NewRenderSystem lays out the grid for a window of cellSize pixels per cell
// and stroke pixel walls
func NewRenderSystem(grid *maze.Grid, cellSize, stroke int, labels bool) (*RenderSystem, error) {
	scene, err := render.Layout(grid, cellSize, stroke)
	if err != nil {
		return nil, err
	}

	s := &RenderSystem{
		grid:    grid,
		scene:   scene,
		palette: render.DefaultPalette(),
		labels:  labels,
	}

	if labels {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to load label font: %w", err)
		}
		s.labelFace = &text.GoTextFace{
			Source: source,
			Size:   render.LabelSize(cellSize),
		}
	}

	return s, nil
}

// Grid returns the grid being drawn
func (s *RenderSystem) Grid() *maze.Grid {
	return s.grid
}

// CanvasSize returns the maze size in canvas pixels
func (s *RenderSystem) CanvasSize() (width, height int) {
	return s.scene.Width, s.scene.Height
}

// Draw renders the maze scaled to fit and centered on screen
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(s.palette.Background)

	if s.cached == nil {
		s.cached = ebiten.NewImage(s.scene.Width, s.scene.Height)
		s.drawScene(s.cached)
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := min(
		float64(screenWidth)/float64(s.scene.Width),
		float64(screenHeight)/float64(s.scene.Height),
	)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(screenWidth)-float64(s.scene.Width)*scale)/2,
		(float64(screenHeight)-float64(s.scene.Height)*scale)/2,
	)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(s.cached, op)
}

// drawScene paints fills, walls and labels at canvas resolution
func (s *RenderSystem) drawScene(target *ebiten.Image) {
	target.Fill(s.palette.Background)

	for _, fill := range s.scene.Fills {
		clr := s.palette.MarkerColor(fill.Marker)
		if clr == nil {
			continue
		}
		r := fill.Rect
		vector.DrawFilledRect(target, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
	}

	for _, wall := range s.scene.Walls {
		vector.DrawFilledRect(target, float32(wall.Min.X), float32(wall.Min.Y), float32(wall.Dx()), float32(wall.Dy()), s.palette.Wall, false)
	}

	if s.labelFace == nil {
		return
	}
	for _, label := range s.scene.Labels {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(label.Center.X), float64(label.Center.Y))
		op.ColorScale.ScaleWithColor(s.palette.Label)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(target, label.Marker.Glyph(), s.labelFace, op)
	}
}
