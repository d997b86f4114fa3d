package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"maze-projector/systems"
)

// MazeScreen shows a parsed maze until the window is closed
type MazeScreen struct {
	*BaseScreen
	renderSystem *systems.RenderSystem
	messageLog   *systems.MessageLog
	title        string
	screenStack  *ScreenStack
}

// NewMazeScreen creates the main viewer screen
func NewMazeScreen(title string, renderSystem *systems.RenderSystem, messageLog *systems.MessageLog) *MazeScreen {
	return &MazeScreen{
		BaseScreen:   NewBaseScreen(),
		renderSystem: renderSystem,
		messageLog:   messageLog,
		title:        title,
		screenStack:  NewScreenStack(),
	}
}

// Update handles viewer input
func (s *MazeScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.toggleInfo()
		return nil
	}

	// Modal input first, the overlay closes itself on Escape
	if s.screenStack.Peek() != nil {
		return s.screenStack.Update()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.screenStack.Push(NewHelpScreen())
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		s.messageLog.AddTyped("Fullscreen toggled", systems.MessageTypeSystem)
	}

	if closeRequested(ebiten.KeyEscape, ebiten.KeyQ) {
		return ErrCloseScreen
	}

	return nil
}

// toggleInfo closes the info overlay when it is on top and otherwise opens
// it in place of any other popup
func (s *MazeScreen) toggleInfo() {
	if _, open := s.screenStack.Peek().(*InfoScreen); open {
		s.screenStack.Pop()
		return
	}
	for s.screenStack.Len() > 0 {
		s.screenStack.Pop()
	}
	s.screenStack.Push(NewInfoScreen(s.title, s.renderSystem.Grid(), s.messageLog))
	s.messageLog.AddTyped("Info overlay opened", systems.MessageTypeSystem)
}

// Draw draws the maze and any open overlay
func (s *MazeScreen) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	if s.screenStack.Peek() != nil {
		s.screenStack.Draw(screen)
	}
}

// Layout implements the Screen interface
func (s *MazeScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height := s.BaseScreen.Layout(outsideWidth, outsideHeight)
	s.screenStack.Layout(width, height)
	return width, height
}
