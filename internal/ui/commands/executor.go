package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/eventbus"
	"folio/internal/ui/pages"
	"folio/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus, exporter Exporter, exportDir string) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:     state,
			Bus:       bus,
			Exporter:  exporter,
			ExportDir: exportDir,
			Now:       time.Now,
		},
	}
}

// ExecuteTogglePublish creates and executes a toggle command
func (e *Executor) ExecuteTogglePublish(page pages.Page, row int) tea.Cmd {
	return NewTogglePublishCommand(e.ctx, page, row).Execute()
}

// ExecuteDeleteRow creates and executes a delete command
func (e *Executor) ExecuteDeleteRow(page pages.Page, row int) tea.Cmd {
	return NewDeleteRowCommand(e.ctx, page, row).Execute()
}

// ExecuteExport creates and executes an export command
func (e *Executor) ExecuteExport(page pages.Page) tea.Cmd {
	return NewExportCommand(e.ctx, page).Execute()
}

// ExecuteSaveOrder creates and executes a save order command
func (e *Executor) ExecuteSaveOrder(page pages.Page) tea.Cmd {
	return NewSaveOrderCommand(e.ctx, page).Execute()
}

// ExecuteSavePreferences creates and executes a preferences command
func (e *Executor) ExecuteSavePreferences(all []pages.Page, pageSize int) tea.Cmd {
	return NewSavePreferencesCommand(e.ctx, all, pageSize).Execute()
}
