package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/modes"
	"folio/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeFilter] = modes.NewFilterMode()
	h.modes[types.ModeDrag] = modes.NewDragMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're in text mode, we'll handle it below
	if !consumed && h.textMode() == nil {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			var enterCmd tea.Cmd
			allActions, enterCmd = h.switchMode(changeMode.Mode, ctx, allActions)
			if enterCmd != nil {
				cmd = enterCmd
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// Unconsumed keys in a text mode edit the focused input
	if tm := h.textMode(); tm != nil && !consumed {
		if ti := tm.Input(); ti != nil {
			before := ti.Value()
			var textCmd tea.Cmd
			*ti, textCmd = ti.Update(msg)
			cmd = textCmd
			if ti.Value() != before {
				allActions = append(allActions, types.UpdateTextAction{Field: tm.Field(), Text: ti.Value()})
			}
		}
	}

	return allActions, cmd
}

// SetMode switches mode outside of key handling, e.g. when a mouse drag
// starts or ends
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}
	return h.switchMode(mode, ctx, nil)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context, acc []types.Action) ([]types.Action, tea.Cmd) {
	if cur := h.modes[h.currentMode]; cur != nil {
		acc = append(acc, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	next := h.modes[mode]
	if next == nil {
		return acc, nil
	}
	acc = append(acc, next.Enter(ctx)...)
	if _, ok := next.(types.TextMode); ok {
		return acc, textinput.Blink
	}
	return acc, nil
}

// Update forwards non-key messages (cursor blink) to the focused input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	tm := h.textMode()
	if tm == nil || tm.Input() == nil {
		return nil
	}
	ti := tm.Input()
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Filter returns the filter mode while it is active
func (h *Handler) Filter() *modes.FilterMode {
	if h.currentMode != types.ModeFilter {
		return nil
	}
	fm, _ := h.modes[types.ModeFilter].(*modes.FilterMode)
	return fm
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) textMode() types.TextMode {
	tm, _ := h.modes[h.currentMode].(types.TextMode)
	return tm
}
