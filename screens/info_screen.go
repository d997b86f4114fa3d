package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"maze-projector/maze"
	"maze-projector/systems"
)

const (
	infoLineHeight = 16
	infoPadding    = 10
)

// InfoScreen is an overlay with maze facts and the status log
type InfoScreen struct {
	*BaseScreen
	summary      []string
	messageLog   *systems.MessageLog
	scrollOffset int
	background   color.Color
	textColor    color.Color
	lineImage    *ebiten.Image
}

// NewInfoScreen creates the overlay for a grid
func NewInfoScreen(title string, grid *maze.Grid, messageLog *systems.MessageLog) *InfoScreen {
	return &InfoScreen{
		BaseScreen: NewBaseScreen(),
		summary:    summarize(title, grid),
		messageLog: messageLog,
		background: color.RGBA{0, 0, 0, 220},
		textColor:  color.White,
	}
}

// summarize lists the facts shown at the top of the overlay
func summarize(title string, grid *maze.Grid) []string {
	rows, cols := grid.Dimensions()
	lines := []string{
		title,
		fmt.Sprintf("Size: %d rows x %d columns", rows, cols),
	}

	markers := grid.Markers()
	for _, marker := range []maze.Marker{maze.MarkerStart, maze.MarkerGoal} {
		positions := markers[marker]
		if len(positions) == 0 {
			lines = append(lines, fmt.Sprintf("%s: none", marker))
			continue
		}
		for _, pos := range positions {
			lines = append(lines, fmt.Sprintf("%s: row %d, col %d", marker, pos.Row, pos.Col))
		}
	}
	return lines
}

// Update handles scrolling and closing
func (s *InfoScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < s.messageLog.Len()-1 {
		s.scrollOffset++
	}

	if closeRequested(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	return nil
}

// Draw renders the overlay centered on screen
func (s *InfoScreen) Draw(screen *ebiten.Image) {
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	width := min(420, screenWidth-2*infoPadding)
	height := min(320, screenHeight-2*infoPadding)
	if width <= 0 || height <= 0 {
		return
	}
	x := float32(screenWidth-width) / 2
	y := float32(screenHeight-height) / 2

	vector.DrawFilledRect(screen, x, y, float32(width), float32(height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(width), float32(height), 2, s.textColor, false)

	lineY := int(y) + infoPadding
	for _, line := range s.summary {
		ebitenutil.DebugPrintAt(screen, line, int(x)+infoPadding, lineY)
		lineY += infoLineHeight
	}
	lineY += infoLineHeight / 2

	// Status log, newest first, colored by type
	footerY := int(y) + height - infoLineHeight - infoPadding/2
	maxLines := (footerY - lineY) / infoLineHeight
	messages := s.messageLog.RecentMessages(s.messageLog.Len())
	if s.scrollOffset < len(messages) {
		messages = messages[s.scrollOffset:]
	}
	for i := 0; i < maxLines && i < len(messages); i++ {
		s.drawColoredLine(screen, messages[i], int(x)+infoPadding, lineY+i*infoLineHeight, width-2*infoPadding)
	}

	ebitenutil.DebugPrintAt(screen, "Up/Down: Scroll  ESC/F1: Close", int(x)+infoPadding, footerY)
}

func (s *InfoScreen) drawColoredLine(screen *ebiten.Image, msg systems.ColoredMessage, x, y, width int) {
	if s.lineImage == nil || s.lineImage.Bounds().Dx() != width {
		s.lineImage = ebiten.NewImage(width, infoLineHeight)
	}
	s.lineImage.Clear()
	ebitenutil.DebugPrintAt(s.lineImage, msg.Text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(msg.GetColor())
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(s.lineImage, op)
}
