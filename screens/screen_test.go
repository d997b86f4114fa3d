package screens

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maze-projector/maze"
	"maze-projector/systems"
)

type fakeScreen struct {
	updates    int
	err        error
	layoutSeen [2]int
	logical    [2]int
}

func (f *fakeScreen) Update() error {
	f.updates++
	return f.err
}

func (f *fakeScreen) Draw(screen *ebiten.Image) {}

func (f *fakeScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	f.layoutSeen = [2]int{outsideWidth, outsideHeight}
	if f.logical != [2]int{} {
		return f.logical[0], f.logical[1]
	}
	return outsideWidth, outsideHeight
}

func TestScreenStackUpdatesTopOnly(t *testing.T) {
	bottom, top := &fakeScreen{}, &fakeScreen{}
	stack := NewScreenStack(bottom)
	stack.Push(top)

	require.NoError(t, stack.Update())
	assert.Zero(t, bottom.updates)
	assert.Equal(t, 1, top.updates)
}

func TestScreenStackPopsOnClose(t *testing.T) {
	bottom := &fakeScreen{}
	top := &fakeScreen{err: ErrCloseScreen}
	stack := NewScreenStack(bottom, top)

	require.NoError(t, stack.Update())
	assert.Equal(t, 1, stack.Len())
	assert.Same(t, bottom, stack.Peek())
}

func TestScreenStackTerminatesWhenEmpty(t *testing.T) {
	stack := NewScreenStack(&fakeScreen{err: ErrCloseScreen})

	require.NoError(t, stack.Update())
	assert.Zero(t, stack.Len())
	assert.ErrorIs(t, stack.Update(), ebiten.Termination)
}

func TestScreenStackPassesErrors(t *testing.T) {
	boom := errors.New("boom")
	stack := NewScreenStack(&fakeScreen{err: boom})

	assert.ErrorIs(t, stack.Update(), boom)
	assert.Equal(t, 1, stack.Len())
}

func TestScreenStackLayoutUsesBottom(t *testing.T) {
	bottom := &fakeScreen{logical: [2]int{200, 100}}
	overlay := &fakeScreen{}
	stack := NewScreenStack(bottom, overlay)

	w, h := stack.Layout(800, 600)
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)
	assert.Equal(t, [2]int{800, 600}, bottom.layoutSeen)
	assert.Equal(t, [2]int{200, 100}, overlay.layoutSeen)
}

func TestScreenStackPopEmpty(t *testing.T) {
	stack := NewScreenStack()
	assert.Nil(t, stack.Pop())
	assert.Nil(t, stack.Peek())
}

func TestSummarize(t *testing.T) {
	grid, err := maze.ParseString("o---o---o\n|S   G  |\no---o---o\n")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"maze.txt",
		"Size: 1 rows x 2 columns",
		"start: row 0, col 0",
		"goal: row 0, col 1",
	}, summarize("maze.txt", grid))

	empty := maze.New(2, 2)
	lines := summarize("empty", empty)
	assert.Contains(t, lines, "start: none")
	assert.Contains(t, lines, "goal: none")
}

func TestModalScreenSize(t *testing.T) {
	modal := NewModalScreen("Keys", "short", "a much longer line")

	width, height := modal.Size()
	assert.Equal(t, len("a much longer line")*debugCharWidth+2*modalPadding, width)
	assert.Equal(t, 3*modalLineHeight+2*modalPadding+modalLineHeight/2, height)
}

func TestHelpScreenListsKeys(t *testing.T) {
	help := NewHelpScreen()

	require.NotEmpty(t, help.lines)
	assert.Contains(t, help.lines[0], "F1")
}

func newTestMazeScreen(t *testing.T) *MazeScreen {
	t.Helper()
	grid, err := maze.ParseString("o---o\n| S |\no---o\n")
	require.NoError(t, err)
	renderSystem, err := systems.NewRenderSystem(grid, 20, 2, false)
	require.NoError(t, err)
	return NewMazeScreen("test", renderSystem, systems.NewMessageLog())
}

func TestMazeScreenToggleInfo(t *testing.T) {
	screen := newTestMazeScreen(t)

	screen.toggleInfo()
	require.Equal(t, 1, screen.screenStack.Len())
	assert.IsType(t, &InfoScreen{}, screen.screenStack.Peek())
	assert.Equal(t, 1, screen.messageLog.Len())

	screen.toggleInfo()
	assert.Zero(t, screen.screenStack.Len())
}

func TestMazeScreenInfoReplacesHelp(t *testing.T) {
	screen := newTestMazeScreen(t)
	screen.screenStack.Push(NewHelpScreen())

	screen.toggleInfo()
	require.Equal(t, 1, screen.screenStack.Len())
	assert.IsType(t, &InfoScreen{}, screen.screenStack.Peek())
}
