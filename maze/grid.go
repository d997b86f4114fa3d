package maze

import "fmt"

// Position addresses a cell by row and column
type Position struct {
	Row int
	Col int
}

// Grid is a rectangular, row-major collection of cells.
// Its dimensions are fixed at construction.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// New allocates a rows x cols grid of default cells
func New(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Dimensions returns the row and column counts
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (r, c) addresses a cell of the grid
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// CellAt returns a copy of the cell at (r, c)
func (g *Grid) CellAt(r, c int) (Cell, error) {
	if !g.InBounds(r, c) {
		return Cell{}, fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrOutOfBounds, r, c, g.rows, g.cols)
	}
	return g.cells[r][c], nil
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(r, c int, cell Cell)) {
	for r, row := range g.cells {
		for c, cell := range row {
			fn(r, c, cell)
		}
	}
}

// Markers returns the positions of marked cells in row-major order
func (g *Grid) Markers() map[Marker][]Position {
	found := make(map[Marker][]Position)
	g.Each(func(r, c int, cell Cell) {
		if cell.Marker != MarkerNone {
			found[cell.Marker] = append(found[cell.Marker], Position{Row: r, Col: c})
		}
	})
	return found
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// set is used by the parser while populating a fresh grid
func (g *Grid) set(r, c int, cell Cell) {
	g.cells[r][c] = cell
}
