package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrCloseScreen is returned from Update when a screen wants to be popped
var ErrCloseScreen = errors.New("close screen")

// Screen represents a viewer screen that can be pushed onto the screen stack
type Screen interface {
	// Update updates the screen state
	Update() error
	// Draw draws the screen
	Draw(screen *ebiten.Image)
	// Layout handles screen layout
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// ScreenStack manages a stack of screens and implements ebiten.Game.
// Only the top screen receives input; all screens are drawn bottom to top.
type ScreenStack struct {
	screens []Screen
}

// NewScreenStack creates a new screen stack
func NewScreenStack(base ...Screen) *ScreenStack {
	return &ScreenStack{
		screens: append(make([]Screen, 0, len(base)+1), base...),
	}
}

// Push adds a new screen to the top of the stack
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes the top screen from the stack
func (s *ScreenStack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Peek returns the top screen without removing it
func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Len returns the number of stacked screens
func (s *ScreenStack) Len() int {
	return len(s.screens)
}

// Update updates the top screen. A screen returning ErrCloseScreen is popped;
// an empty stack ends the game loop.
func (s *ScreenStack) Update() error {
	top := s.Peek()
	if top == nil {
		return ebiten.Termination
	}

	err := top.Update()
	if errors.Is(err, ErrCloseScreen) {
		s.Pop()
		return nil
	}
	return err
}

// Draw draws all screens from bottom to top
func (s *ScreenStack) Draw(screen *ebiten.Image) {
	for _, scr := range s.screens {
		scr.Draw(screen)
	}
}

// Layout lets every screen see the window size and uses the bottom screen's
// logical size so overlays share its coordinate space
func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	if len(s.screens) == 0 {
		return outsideWidth, outsideHeight
	}
	width, height := s.screens[0].Layout(outsideWidth, outsideHeight)
	for _, scr := range s.screens[1:] {
		scr.Layout(width, height)
	}
	return width, height
}
