package maze

import "strings"

// Marker is an optional designation embedded in a cell's interior text
type Marker int

const (
	// MarkerNone is an unmarked cell
	MarkerNone Marker = iota
	// MarkerStart is the cell the maze starts from ('S')
	MarkerStart
	// MarkerGoal is the cell the maze ends at ('G')
	MarkerGoal
)

// Marker glyphs as they appear in a content line
const (
	StartGlyph = "S"
	GoalGlyph  = "G"
)

// String returns the marker name
func (m Marker) String() string {
	switch m {
	case MarkerStart:
		return "start"
	case MarkerGoal:
		return "goal"
	default:
		return "none"
	}
}

// Glyph returns the interior text for the marker, or "" for MarkerNone
func (m Marker) Glyph() string {
	switch m {
	case MarkerStart:
		return StartGlyph
	case MarkerGoal:
		return GoalGlyph
	default:
		return ""
	}
}

// ParseMarker decodes a cell interior. Surrounding blanks are ignored.
// The second result is false when the interior holds non-blank text that is
// neither marker; the marker is MarkerNone in that case.
func ParseMarker(interior string) (Marker, bool) {
	switch strings.TrimSpace(interior) {
	case "":
		return MarkerNone, true
	case StartGlyph:
		return MarkerStart, true
	case GoalGlyph:
		return MarkerGoal, true
	default:
		return MarkerNone, false
	}
}
