package maze

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleCell = `o---o
|S  |
o---o
`

// 2x2 with every wall present except between (0,0) and (0,1)
const twoByTwo = `o---o---o
|S   G  |
o---o---o
|   |   |
o---o---o
`

func TestParseSingleCell(t *testing.T) {
	grid, err := ParseString(singleCell)
	require.NoError(t, err)

	rows, cols := grid.Dimensions()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 1, cols)

	cell, err := grid.CellAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Cell{North: true, East: true, South: true, West: true, Marker: MarkerStart}, cell)
}

func TestParseSharedVerticalWall(t *testing.T) {
	grid, err := ParseString(twoByTwo)
	require.NoError(t, err)

	left, err := grid.CellAt(0, 0)
	require.NoError(t, err)
	right, err := grid.CellAt(0, 1)
	require.NoError(t, err)

	assert.False(t, left.East)
	assert.False(t, right.West)
	assert.True(t, left.West)
	assert.True(t, right.East)
	assert.Equal(t, MarkerStart, left.Marker)
	assert.Equal(t, MarkerGoal, right.Marker)

	for r := 1; r < 2; r++ {
		for c := 0; c < 2; c++ {
			cell, err := grid.CellAt(r, c)
			require.NoError(t, err)
			assert.Equal(t, 4, cell.Walls(), "cell (%d, %d)", r, c)
		}
	}
}

func TestParseNoWalls(t *testing.T) {
	text := strings.Join([]string{
		"o   o   o   o",
		"  S       G  ",
		"o   o   o   o",
		"      G      ",
		"o   o   o   o",
	}, "\n")

	grid, err := ParseString(text)
	require.NoError(t, err)

	rows, cols := grid.Dimensions()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)

	grid.Each(func(r, c int, cell Cell) {
		assert.Zero(t, cell.Walls(), "cell (%d, %d)", r, c)
	})
}

func TestParseInfersDimensions(t *testing.T) {
	cases := []struct {
		name string
		rows int
		cols int
	}{
		{name: "1x1", rows: 1, cols: 1},
		{name: "3x5", rows: 3, cols: 5},
		{name: "16x16", rows: 16, cols: 16},
		{name: "2x9", rows: 2, cols: 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text := closedMaze(tc.rows, tc.cols)
			lines := strings.Split(strings.TrimSpace(text), "\n")
			require.Len(t, lines, 2*tc.rows+1)

			grid, err := ParseString(text)
			require.NoError(t, err)

			rows, cols := grid.Dimensions()
			assert.Equal(t, (len(lines)-1)/2, rows)
			assert.Equal(t, (len(lines[0])-1)/4, cols)
			assert.Equal(t, tc.rows, rows)
			assert.Equal(t, tc.cols, cols)
		})
	}
}

func TestParseRejectsEvenLineCount(t *testing.T) {
	_, err := ParseString("o---o\n|S  |\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Reason, "odd line count")
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := ParseString("\n  \n\n")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseRejectsBadColumnInference(t *testing.T) {
	_, err := ParseString("o---o-\n|S   |\no---o-\n")
	require.ErrorIs(t, err, ErrFormat)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 1, formatErr.Line)
	assert.Contains(t, formatErr.Reason, "column inference")
}

func TestParseRejectsShortLine(t *testing.T) {
	text := "o---o---o\n|S   G\no---o---o\n"

	_, err := ParseString(text)
	require.ErrorIs(t, err, ErrFormat)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 2, formatErr.Line)
	assert.Contains(t, formatErr.Reason, "content line")
}

func TestParseRejectsLongLine(t *testing.T) {
	text := "o---o\n|S  |\no---o---o\n"

	_, err := ParseString(text)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 3, formatErr.Line)
}

func TestParseSkipsBlankLines(t *testing.T) {
	text := "\n\no---o\r\n\n|  G|\r\n   \no---o\r\n\n"

	grid, err := ParseString(text)
	require.NoError(t, err)

	cell, err := grid.CellAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, MarkerGoal, cell.Marker)
}

func TestParseReportsSourceLineNumbers(t *testing.T) {
	text := "o---o\n\n\n|S  |\n\no---\n"

	_, err := ParseString(text)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 6, formatErr.Line)
}

func TestParseLenientMarkers(t *testing.T) {
	grid, err := ParseString("o---o---o---o\n| x | SG| S |\no---o---o---o\n")
	require.NoError(t, err)

	for c, want := range []Marker{MarkerNone, MarkerNone, MarkerStart} {
		cell, err := grid.CellAt(0, c)
		require.NoError(t, err)
		assert.Equal(t, want, cell.Marker, "column %d", c)
	}
}

func TestParseStrictMarkers(t *testing.T) {
	_, err := ParseString("o---o---o\n| x | S |\no---o---o\n", WithStrictMarkers())
	require.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), `"x"`)

	_, err = ParseString(twoByTwo, WithStrictMarkers())
	assert.NoError(t, err)
}

func TestParseExpectedSize(t *testing.T) {
	_, err := ParseString(closedMaze(16, 16), WithExpectedSize(16, 16))
	assert.NoError(t, err)

	_, err = ParseString(closedMaze(4, 16), WithExpectedSize(16, 16))
	require.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "expected a 16x16 maze, found 4x16")
}

func TestParseIsIdempotent(t *testing.T) {
	first, err := ParseString(twoByTwo)
	require.NoError(t, err)
	second, err := ParseString(twoByTwo)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}

func TestParseWallsConsistentAcrossNeighbours(t *testing.T) {
	text := `o---o---o---o
|S      |   |
o   o---o   o
|   |     G |
o---o---o---o
`
	grid, err := ParseString(text)
	require.NoError(t, err)

	rows, cols := grid.Dimensions()
	grid.Each(func(r, c int, cell Cell) {
		if c+1 < cols {
			right, err := grid.CellAt(r, c+1)
			require.NoError(t, err)
			assert.Equal(t, cell.East, right.West, "east/west at (%d, %d)", r, c)
		}
		if r+1 < rows {
			below, err := grid.CellAt(r+1, c)
			require.NoError(t, err)
			assert.Equal(t, cell.South, below.North, "south/north at (%d, %d)", r, c)
		}
	})

	open, err := grid.CellAt(0, 0)
	require.NoError(t, err)
	assert.False(t, open.South)
	assert.False(t, open.East)
}

func TestParseLines(t *testing.T) {
	grid, err := ParseLines([]string{"o---o", "", "|  G|", "o---o"})
	require.NoError(t, err)
	assert.Equal(t, 1, grid.Rows())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(twoByTwo), 0o644))

	grid, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Cols())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, errors.Is(err, ErrFormat))
}

// closedMaze builds the text of a rows x cols maze with every wall present
func closedMaze(rows, cols int) string {
	boundary := "o" + strings.Repeat("---o", cols)
	content := "|" + strings.Repeat("   |", cols)

	var b strings.Builder
	for r := 0; r < rows; r++ {
		b.WriteString(boundary + "\n")
		b.WriteString(content + "\n")
	}
	b.WriteString(boundary + "\n")
	return b.String()
}
