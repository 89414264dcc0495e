package types

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/grid"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter
	ModeDrag
)

// String returns the mode name shown in the status line
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFilter:
		return "filter"
	case ModeDrag:
		return "drag"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CursorRow() int
	RowCount() int
	CurrentRowID() grid.RowID
	HasSelection() bool
	Reorderable() bool
	Dragging() bool
	FilterFields() []grid.FilterField
	FilterValue(columnID string) string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// TextMode is a mode that edits text through a focused text input.
// Keys it does not consume are fed to Input.
type TextMode interface {
	ModeHandler
	Input() *textinput.Model
	// Field is the column the focused input is bound to
	Field() string
}
