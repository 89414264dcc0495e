package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/grid"
	"folio/internal/ui/input/types"
)

// FilterMode edits the toolbar filter inputs. Every keystroke updates the
// bound column filter; tab moves to the next input.
type FilterMode struct {
	TextInputMode
	fields  []grid.FilterField
	inputs  []textinput.Model
	focused int
	initial []string // values on entry, restored by esc
}

func NewFilterMode() *FilterMode {
	return &FilterMode{TextInputMode: NewTextInputMode(types.ModeFilter, "filter")}
}

func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	m.fields = ctx.FilterFields()
	m.inputs = make([]textinput.Model, len(m.fields))
	m.initial = make([]string, len(m.fields))
	for i, f := range m.fields {
		v := ctx.FilterValue(f.AccessorKey)
		m.inputs[i] = newInput(f.Placeholder, v)
		m.initial[i] = v
	}
	m.focused = 0
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return nil
}

func (m *FilterMode) Exit(ctx types.Context) []types.Action {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return nil
}

func (m *FilterMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "tab", "shift+tab":
		if len(m.inputs) < 2 {
			return nil, true
		}
		step := 1
		if msg.String() == "shift+tab" {
			step = len(m.inputs) - 1
		}
		m.inputs[m.focused].Blur()
		m.focused = (m.focused + step) % len(m.inputs)
		m.inputs[m.focused].Focus()
		return nil, true
	case "esc":
		// Put the filters back the way they were before the mode started
		var actions []types.Action
		for i, f := range m.fields {
			if m.inputs[i].Value() != m.initial[i] {
				actions = append(actions, types.UpdateTextAction{Field: f.AccessorKey, Text: m.initial[i]})
			}
		}
		return append(actions, types.CancelTextAction{}, types.ChangeModeAction{Mode: types.ModeNormal}), true
	}
	return m.handleCommon(msg)
}

// Input returns the focused input
func (m *FilterMode) Input() *textinput.Model {
	if len(m.inputs) == 0 {
		return nil
	}
	return &m.inputs[m.focused]
}

// Field returns the column bound to the focused input
func (m *FilterMode) Field() string {
	if len(m.fields) == 0 {
		return ""
	}
	return m.fields[m.focused].AccessorKey
}

// Views renders every input for the toolbar, the focused one with a cursor
func (m *FilterMode) Views() []string {
	out := make([]string, len(m.inputs))
	for i := range m.inputs {
		out[i] = m.inputs[i].View()
	}
	return out
}

// Focused returns the index of the focused input
func (m *FilterMode) Focused() int {
	return m.focused
}
