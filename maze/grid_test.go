package maze

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridDefaults(t *testing.T) {
	grid := New(3, 4)

	rows, cols := grid.Dimensions()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)

	count := 0
	grid.Each(func(r, c int, cell Cell) {
		count++
		assert.Equal(t, Cell{}, cell)
	})
	assert.Equal(t, 12, count)
}

func TestCellAtOutOfBounds(t *testing.T) {
	grid := New(2, 3)

	for _, pos := range []Position{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := grid.CellAt(pos.Row, pos.Col)
		assert.ErrorIs(t, err, ErrOutOfBounds, "position %+v", pos)
	}

	_, err := grid.CellAt(1, 2)
	assert.NoError(t, err)
}

func TestCellAtReturnsCopy(t *testing.T) {
	grid, err := ParseString(singleCell)
	require.NoError(t, err)

	cell, err := grid.CellAt(0, 0)
	require.NoError(t, err)
	cell.North = false
	cell.Marker = MarkerGoal

	again, err := grid.CellAt(0, 0)
	require.NoError(t, err)
	assert.True(t, again.North)
	assert.Equal(t, MarkerStart, again.Marker)
}

func TestMarkers(t *testing.T) {
	grid, err := ParseString(twoByTwo)
	require.NoError(t, err)

	markers := grid.Markers()
	assert.Equal(t, []Position{{Row: 0, Col: 0}}, markers[MarkerStart])
	assert.Equal(t, []Position{{Row: 0, Col: 1}}, markers[MarkerGoal])
	assert.Empty(t, markers[MarkerNone])
}

func TestCellHasWall(t *testing.T) {
	cell := Cell{North: true, West: true}

	assert.True(t, cell.HasWall(North))
	assert.False(t, cell.HasWall(East))
	assert.False(t, cell.HasWall(South))
	assert.True(t, cell.HasWall(West))
	assert.Equal(t, 2, cell.Walls())
}

func TestParseMarker(t *testing.T) {
	cases := []struct {
		interior string
		marker   Marker
		known    bool
	}{
		{"   ", MarkerNone, true},
		{" S ", MarkerStart, true},
		{"S  ", MarkerStart, true},
		{"  G", MarkerGoal, true},
		{" s ", MarkerNone, false},
		{"SG ", MarkerNone, false},
		{" * ", MarkerNone, false},
	}

	for _, tc := range cases {
		marker, known := ParseMarker(tc.interior)
		assert.Equal(t, tc.marker, marker, "interior %q", tc.interior)
		assert.Equal(t, tc.known, known, "interior %q", tc.interior)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	mazes := []string{
		singleCell,
		twoByTwo,
		closedMaze(5, 7),
		"o---o   o---o\n|S      | G |\no   o---o   o\n|       |   |\no---o---o---o\n",
	}

	for _, text := range mazes {
		grid, err := ParseString(text)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, grid))

		again, err := Parse(&buf)
		require.NoError(t, err)
		assert.True(t, grid.Equal(again), "round trip of:\n%s", text)
	}
}

func TestEncodeOpenRowIsBlank(t *testing.T) {
	grid, err := ParseString("o   o\n  x  \no   o\n")
	require.NoError(t, err)

	cell, err := grid.CellAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, MarkerNone, cell.Marker)
	assert.Equal(t, "o   o\n     \no   o\n", grid.String())

	_, err = ParseString(grid.String())
	assert.ErrorIs(t, err, ErrFormat)
}

func TestEncodeWallTokens(t *testing.T) {
	grid, err := ParseString(twoByTwo)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"o---o---o",
		"| S   G |",
		"o---o---o",
		"|   |   |",
		"o---o---o",
	}, grid.Lines())
}
