package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"maze-projector/maze"
)

// TerminalStyles styles each kind of character in a text preview
type TerminalStyles struct {
	Wall   lipgloss.Style
	Vertex lipgloss.Style
	Start  lipgloss.Style
	Goal   lipgloss.Style
	Plain  lipgloss.Style
}

// DefaultTerminalStyles returns the preview styles used by the print command
func DefaultTerminalStyles() TerminalStyles {
	return TerminalStyles{
		Wall:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Vertex: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Start:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("120")),
		Goal:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("210")),
		Plain:  lipgloss.NewStyle(),
	}
}

// RenderText returns the grid in its text form with each run of characters
// styled by kind
func RenderText(g *maze.Grid, styles TerminalStyles) string {
	lines := g.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = styleLine(line, styles)
	}
	return strings.Join(out, "\n")
}

func styleLine(line string, styles TerminalStyles) string {
	var b strings.Builder
	start := 0
	for start < len(line) {
		style := styleFor(line[start], styles)
		end := start + 1
		for end < len(line) && sameStyle(line[end], line[start]) {
			end++
		}
		b.WriteString(style.Render(line[start:end]))
		start = end
	}
	return b.String()
}

type charKind int

const (
	kindPlain charKind = iota
	kindWall
	kindVertex
	kindStart
	kindGoal
)

func kindOf(ch byte) charKind {
	switch {
	case ch == maze.WallChar || ch == '-':
		return kindWall
	case ch == maze.VertexChar:
		return kindVertex
	case string(ch) == maze.StartGlyph:
		return kindStart
	case string(ch) == maze.GoalGlyph:
		return kindGoal
	default:
		return kindPlain
	}
}

func sameStyle(a, b byte) bool {
	return kindOf(a) == kindOf(b)
}

func styleFor(ch byte, styles TerminalStyles) lipgloss.Style {
	switch kindOf(ch) {
	case kindWall:
		return styles.Wall
	case kindVertex:
		return styles.Vertex
	case kindStart:
		return styles.Start
	case kindGoal:
		return styles.Goal
	default:
		return styles.Plain
	}
}
