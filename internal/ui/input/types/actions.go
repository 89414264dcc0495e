package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "top", "bottom"
}

func (a NavigateAction) Type() string { return "navigate" }

// SwitchPageAction changes the active collection page
type SwitchPageAction struct {
	Index int // -1 next, -2 previous
}

func (a SwitchPageAction) Type() string { return "switch_page" }

// Selection actions
type SelectAction struct{}

func (a SelectAction) Type() string { return "select" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

// Column actions
type SortAction struct{}

func (a SortAction) Type() string { return "sort" }

type ToggleVisibilityAction struct{}

func (a ToggleVisibilityAction) Type() string { return "toggle_visibility" }

// PageAction moves through the pagination window
type PageAction struct {
	Direction string // "first", "previous", "next", "last"
}

func (a PageAction) Type() string { return "page" }

// PageSizeAction steps through the page size options
type PageSizeAction struct {
	Delta int
}

func (a PageSizeAction) Type() string { return "page_size" }

// TogglePublishAction flips the published flag of the cursor row
type TogglePublishAction struct{}

func (a TogglePublishAction) Type() string { return "toggle_publish" }

// Drag actions
// DeleteRowAction removes the row under the cursor
type DeleteRowAction struct{}

func (a DeleteRowAction) Type() string { return "delete_row" }

type BeginDragAction struct{}

func (a BeginDragAction) Type() string { return "begin_drag" }

type DragMoveAction struct {
	Delta int
}

func (a DragMoveAction) Type() string { return "drag_move" }

type DropAction struct{}

func (a DropAction) Type() string { return "drop" }

type CancelDragAction struct{}

func (a CancelDragAction) Type() string { return "cancel_drag" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Field string
	Text  string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Mode Mode
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type ExportAction struct{}

func (a ExportAction) Type() string { return "export" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }

// ShowAllColumnsAction makes every hidden column visible again
type ShowAllColumnsAction struct{}

func (a ShowAllColumnsAction) Type() string { return "show_all_columns" }

// SaveOrderAction stores the on-screen row order
type SaveOrderAction struct{}

func (a SaveOrderAction) Type() string { return "save_order" }
