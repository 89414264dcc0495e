package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
)

// DragMode moves a picked-up row with the keyboard until it is dropped
type DragMode struct{}

func NewDragMode() *DragMode {
	return &DragMode{}
}

func (m *DragMode) Name() string {
	return "drag"
}

func (m *DragMode) Enter(ctx types.Context) []types.Action {
	return nil
}

// Exit cancels a session that is still open, e.g. when the page changes
// underneath it.
func (m *DragMode) Exit(ctx types.Context) []types.Action {
	if ctx.Dragging() {
		return []types.Action{types.CancelDragAction{}}
	}
	return nil
}

func (m *DragMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "j", "down":
		return []types.Action{types.DragMoveAction{Delta: 1}}, true
	case "k", "up":
		return []types.Action{types.DragMoveAction{Delta: -1}}, true
	case "g", "home":
		return []types.Action{types.DragMoveAction{Delta: -ctx.RowCount()}}, true
	case "G", "end":
		return []types.Action{types.DragMoveAction{Delta: ctx.RowCount()}}, true
	case "enter", "m", " ":
		return []types.Action{
			types.DropAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "esc":
		return []types.Action{
			types.CancelDragAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	// Swallow everything else so the page can't change mid-drag
	return nil, true
}
