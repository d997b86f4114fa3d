package maze

import (
	"bufio"
	"io"
	"strings"
)

// Encode writes the grid in the boundary/content line format that Parse reads.
// Marker interiors are written centered, e.g. " S ".
//
// A row with no vertical walls and no markers encodes to a line of spaces.
// Parse discards whitespace-only lines, so such a grid does not read back.
func Encode(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for _, line := range g.Lines() {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Lines returns the 2*rows+1 text lines describing the grid
func (g *Grid) Lines() []string {
	lines := make([]string, 0, 2*g.rows+1)
	for r := 0; r < g.rows; r++ {
		lines = append(lines, g.boundaryLine(r, false))
		lines = append(lines, g.contentLine(r))
	}
	if g.rows > 0 {
		lines = append(lines, g.boundaryLine(g.rows-1, true))
	} else {
		lines = append(lines, New(1, g.cols).boundaryLine(0, false))
	}
	return lines
}

// String renders the grid as maze text
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n") + "\n"
}

// boundaryLine encodes the north walls of row r, or its south walls when south is set
func (g *Grid) boundaryLine(r int, south bool) string {
	var b strings.Builder
	b.Grow(g.cols*blockWidth + 1)
	b.WriteByte(VertexChar)
	for c := 0; c < g.cols; c++ {
		cell := g.cells[r][c]
		wall := cell.North
		if south {
			wall = cell.South
		}
		if wall {
			b.WriteString(WallSegment)
		} else {
			b.WriteString(OpenSegment)
		}
		b.WriteByte(VertexChar)
	}
	return b.String()
}

func (g *Grid) contentLine(r int) string {
	var b strings.Builder
	b.Grow(g.cols*blockWidth + 1)
	for c := 0; c < g.cols; c++ {
		cell := g.cells[r][c]
		b.WriteByte(wallByte(cell.West))
		if glyph := cell.Marker.Glyph(); glyph != "" {
			b.WriteString(" " + glyph + " ")
		} else {
			b.WriteString(OpenSegment)
		}
	}
	east := false
	if g.cols > 0 {
		east = g.cells[r][g.cols-1].East
	}
	b.WriteByte(wallByte(east))
	return b.String()
}

func wallByte(wall bool) byte {
	if wall {
		return WallChar
	}
	return OpenChar
}
