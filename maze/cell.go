package maze

// Direction names one side of a cell
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Cell represents a single cell in a maze grid.
// The zero value has no walls and no marker.
type Cell struct {
	North  bool   // wall on the north side
	East   bool   // wall on the east side
	South  bool   // wall on the south side
	West   bool   // wall on the west side
	Marker Marker // start/goal designation
}

// HasWall reports whether the cell has a wall on the given side
func (c Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	case West:
		return c.West
	default:
		return false
	}
}

// Walls returns how many of the four sides carry a wall
func (c Cell) Walls() int {
	n := 0
	for _, wall := range [4]bool{c.North, c.East, c.South, c.West} {
		if wall {
			n++
		}
	}
	return n
}
