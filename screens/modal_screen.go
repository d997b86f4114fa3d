package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	modalLineHeight = 16
	modalPadding    = 10
	debugCharWidth  = 6
)

// ModalScreen is a centered popup listing a few lines of text
type ModalScreen struct {
	*BaseScreen
	title      string
	lines      []string
	background color.Color
	border     color.Color
}

// NewModalScreen creates a popup with the given title and body lines
func NewModalScreen(title string, lines ...string) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		lines:      lines,
		background: color.RGBA{0, 0, 0, 200},
		border:     color.White,
	}
}

// NewHelpScreen lists the viewer key bindings
func NewHelpScreen() *ModalScreen {
	return NewModalScreen("Keys",
		"F1      maze details and log",
		"H       this help",
		"F       toggle fullscreen",
		"Esc, Q  close",
	)
}

// Size returns the popup size needed for its text
func (s *ModalScreen) Size() (width, height int) {
	longest := len(s.title)
	for _, line := range s.lines {
		longest = max(longest, len(line))
	}
	width = longest*debugCharWidth + 2*modalPadding
	height = (len(s.lines)+1)*modalLineHeight + 2*modalPadding + modalLineHeight/2
	return width, height
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	width, height := s.Size()
	x := float32((bounds.Dx() - width) / 2)
	y := float32((bounds.Dy() - height) / 2)

	vector.DrawFilledRect(screen, x, y, float32(width), float32(height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(width), float32(height), 1, s.border, false)

	titleX := int(x) + (width-len(s.title)*debugCharWidth)/2
	ebitenutil.DebugPrintAt(screen, s.title, titleX, int(y)+modalPadding)

	for i, line := range s.lines {
		lineY := int(y) + modalPadding + modalLineHeight/2 + (i+1)*modalLineHeight
		ebitenutil.DebugPrintAt(screen, line, int(x)+modalPadding, lineY)
	}
}

// Update closes the popup on Escape, Enter or H
func (s *ModalScreen) Update() error {
	if closeRequested(ebiten.KeyEscape, ebiten.KeyEnter, ebiten.KeyH) {
		return ErrCloseScreen
	}
	return nil
}
