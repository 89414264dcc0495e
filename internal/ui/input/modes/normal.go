package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "top"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "bottom"}}, true

	case tea.KeyTab:
		return []types.Action{types.SwitchPageAction{Index: -1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.SwitchPageAction{Index: -2}}, true

	case tea.KeySpace:
		if ctx.RowCount() == 0 {
			return nil, false
		}
		return []types.Action{types.SelectAction{}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "top"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "bottom"}}, true

	case "1", "2", "3", "4":
		return []types.Action{types.SwitchPageAction{Index: int(msg.String()[0] - '1')}}, true

	case "s":
		return []types.Action{types.SortAction{}}, true

	case "v":
		return []types.Action{types.ToggleVisibilityAction{}}, true

	case "V":
		return []types.Action{types.ShowAllColumnsAction{}}, true

	case "o":
		if !ctx.Reorderable() {
			return nil, false
		}
		return []types.Action{types.SaveOrderAction{}}, true

	case "a":
		return []types.Action{types.SelectAllAction{}}, true

	case "p":
		if ctx.CurrentRowID() == "" {
			return nil, false
		}
		return []types.Action{types.TogglePublishAction{}}, true

	case "d":
		if ctx.CurrentRowID() == "" {
			return nil, false
		}
		return []types.Action{types.DeleteRowAction{}}, true

	case "m":
		if !ctx.Reorderable() || ctx.CurrentRowID() == "" {
			return nil, false
		}
		return []types.Action{
			types.BeginDragAction{},
			types.ChangeModeAction{Mode: types.ModeDrag},
		}, true

	case "f", "/":
		if len(ctx.FilterFields()) == 0 {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case "[":
		return []types.Action{types.PageAction{Direction: "previous"}}, true

	case "]":
		return []types.Action{types.PageAction{Direction: "next"}}, true

	case "{":
		return []types.Action{types.PageAction{Direction: "first"}}, true

	case "}":
		return []types.Action{types.PageAction{Direction: "last"}}, true

	case "+", "=":
		return []types.Action{types.PageSizeAction{Delta: 1}}, true

	case "-":
		return []types.Action{types.PageSizeAction{Delta: -1}}, true

	case "e":
		return []types.Action{types.ExportAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
