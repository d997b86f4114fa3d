// Package render turns a parsed maze grid into pixels or styled text.
//
// Layout computes the geometry shared by every pixel target: wall bands,
// marker fills and label anchors in canvas coordinates. The PNG renderer and
// the window's render system both draw from the same Scene.
package render

import (
	"image"
	"strconv"

	"maze-projector/config"
	"maze-projector/maze"
)

// Fill is the interior of a marked cell
type Fill struct {
	Rect   image.Rectangle
	Marker maze.Marker
}

// Label anchors a marker glyph at the center of its cell
type Label struct {
	Center image.Point
	Marker maze.Marker
}

// Scene is the drawable geometry of a grid
type Scene struct {
	Width  int
	Height int
	Walls  []image.Rectangle
	Fills  []Fill
	Labels []Label
}

// Bounds returns the canvas rectangle
func (s *Scene) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// Layout places every wall and marker of g on a canvas of
// cols*cellSize+thickness by rows*cellSize+thickness pixels. Each wall is a
// band thickness pixels wide starting on the cell edge; walls shared by two
// cells appear once.
func Layout(g *maze.Grid, cellSize, thickness int) (*Scene, error) {
	if cellSize <= 0 {
		return nil, &config.ArgumentError{Name: "cell size", Value: strconv.Itoa(cellSize)}
	}
	if thickness <= 0 {
		return nil, &config.ArgumentError{Name: "wall thickness", Value: strconv.Itoa(thickness)}
	}

	rows, cols := g.Dimensions()
	scene := &Scene{
		Width:  cols*cellSize + thickness,
		Height: rows*cellSize + thickness,
	}

	seen := make(map[image.Rectangle]bool)
	addWall := func(rect image.Rectangle) {
		if !seen[rect] {
			seen[rect] = true
			scene.Walls = append(scene.Walls, rect)
		}
	}

	g.Each(func(r, c int, cell maze.Cell) {
		x := c * cellSize
		y := r * cellSize

		if cell.North {
			addWall(image.Rect(x, y, x+cellSize+thickness, y+thickness))
		}
		if cell.South {
			addWall(image.Rect(x, y+cellSize, x+cellSize+thickness, y+cellSize+thickness))
		}
		if cell.West {
			addWall(image.Rect(x, y, x+thickness, y+cellSize+thickness))
		}
		if cell.East {
			addWall(image.Rect(x+cellSize, y, x+cellSize+thickness, y+cellSize+thickness))
		}

		if cell.Marker == maze.MarkerNone {
			return
		}
		interior := image.Rect(x+thickness, y+thickness, x+cellSize, y+cellSize)
		if !interior.Empty() {
			scene.Fills = append(scene.Fills, Fill{Rect: interior, Marker: cell.Marker})
		}
		scene.Labels = append(scene.Labels, Label{
			Center: image.Pt(x+(cellSize+thickness)/2, y+(cellSize+thickness)/2),
			Marker: cell.Marker,
		})
	})

	return scene, nil
}
