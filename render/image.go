package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"maze-projector/config"
	"maze-projector/maze"
)

// Palette holds the colors used to draw a maze
type Palette struct {
	Background color.Color
	Wall       color.Color
	Start      color.Color
	Goal       color.Color
	Label      color.Color
}

// DefaultPalette returns the configured drawing colors
func DefaultPalette() Palette {
	return Palette{
		Background: config.BackgroundColor,
		Wall:       config.WallColor,
		Start:      config.StartColor,
		Goal:       config.GoalColor,
		Label:      config.LabelColor,
	}
}

// MarkerColor returns the fill color for a marker, or nil for an unmarked cell
func (p Palette) MarkerColor(m maze.Marker) color.Color {
	switch m {
	case maze.MarkerStart:
		return p.Start
	case maze.MarkerGoal:
		return p.Goal
	default:
		return nil
	}
}

// ImageOptions controls static image rendering
type ImageOptions struct {
	CellSize      int
	WallThickness int
	Labels        bool // draw S/G glyphs over marked cells
	Palette       Palette
}

// DrawImage renders the grid onto a new RGBA image. Marker fills are drawn
// first so walls always sit on top of them.
func DrawImage(g *maze.Grid, opts ImageOptions) (*image.RGBA, error) {
	scene, err := Layout(g, opts.CellSize, opts.WallThickness)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(scene.Bounds())
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Palette.Background), image.Point{}, draw.Src)

	for _, fill := range scene.Fills {
		if clr := opts.Palette.MarkerColor(fill.Marker); clr != nil {
			draw.Draw(img, fill.Rect, image.NewUniform(clr), image.Point{}, draw.Src)
		}
	}

	for _, wall := range scene.Walls {
		draw.Draw(img, wall, image.NewUniform(opts.Palette.Wall), image.Point{}, draw.Src)
	}

	if opts.Labels && len(scene.Labels) > 0 {
		face, err := LabelFace(LabelSize(opts.CellSize))
		if err != nil {
			return nil, err
		}
		defer face.Close()
		drawLabels(img, face, scene.Labels, opts.Palette.Label)
	}

	return img, nil
}

func drawLabels(img draw.Image, face font.Face, labels []Label, clr color.Color) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: face,
	}
	metrics := face.Metrics()
	for _, label := range labels {
		glyph := label.Marker.Glyph()
		width := drawer.MeasureString(glyph)
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(label.Center.X) - width/2,
			Y: fixed.I(label.Center.Y) + (metrics.Ascent-metrics.Descent)/2,
		}
		drawer.DrawString(glyph)
	}
}

// SavePNG encodes img as PNG at path
func SavePNG(path string, img image.Image) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close image file: %w", cerr)
		}
	}()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
