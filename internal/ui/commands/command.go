package commands

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/export"
	"folio/internal/ui/pages"
	"folio/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// Exporter writes an export snapshot to a file
type Exporter interface {
	WriteFile(path string, snap export.Snapshot) error
}

// CommandContext provides context for command execution
type CommandContext struct {
	State     *state.AppState
	Bus       eventbus.EventBus
	Exporter  Exporter
	ExportDir string
	Now       func() time.Time
}

// ExportedMsg reports the outcome of an export
type ExportedMsg struct {
	Path string
	Err  error
}

// TogglePublishCommand flips the published flag of one row optimistically
type TogglePublishCommand struct {
	ctx  *CommandContext
	page pages.Page
	row  int
}

// NewTogglePublishCommand creates a new toggle command
func NewTogglePublishCommand(ctx *CommandContext, page pages.Page, row int) *TogglePublishCommand {
	return &TogglePublishCommand{ctx: ctx, page: page, row: row}
}

// Execute dispatches the mutation; the result arrives later on the bus
func (c *TogglePublishCommand) Execute() tea.Cmd {
	if err := c.page.TogglePublished(context.Background(), c.row); err != nil {
		c.ctx.State.SetStatus(state.StatusError, fmt.Sprintf("Update failed: %v", err), c.ctx.Now())
	}
	return nil
}

// DeleteRowCommand removes one record through the action endpoint
type DeleteRowCommand struct {
	ctx  *CommandContext
	page pages.Page
	row  int
}

// NewDeleteRowCommand creates a new delete command
func NewDeleteRowCommand(ctx *CommandContext, page pages.Page, row int) *DeleteRowCommand {
	return &DeleteRowCommand{ctx: ctx, page: page, row: row}
}

// Execute dispatches the delete; the row goes away once the store reloads
func (c *DeleteRowCommand) Execute() tea.Cmd {
	if err := c.page.DeleteRow(context.Background(), c.row); err != nil {
		c.ctx.State.SetStatus(state.StatusError, fmt.Sprintf("Delete failed: %v", err), c.ctx.Now())
	}
	return nil
}

// ExportCommand writes the visible page of a grid to an HTML file
type ExportCommand struct {
	ctx  *CommandContext
	page pages.Page
}

// NewExportCommand creates a new export command
func NewExportCommand(ctx *CommandContext, page pages.Page) *ExportCommand {
	return &ExportCommand{ctx: ctx, page: page}
}

// Execute snapshots the page now and writes the file in the background
func (c *ExportCommand) Execute() tea.Cmd {
	if c.ctx.Exporter == nil {
		return nil
	}
	snap := c.page.Snapshot()
	path := filepath.Join(c.ctx.ExportDir, fmt.Sprintf("folio-%s.html", c.page.Kind()))
	exporter := c.ctx.Exporter
	return func() tea.Msg {
		err := exporter.WriteFile(path, snap)
		if err != nil {
			log.Printf("Export of %s failed: %v", path, err)
		}
		return ExportedMsg{Path: path, Err: err}
	}
}

// SaveOrderCommand stores the on-screen row order of a page
type SaveOrderCommand struct {
	ctx  *CommandContext
	page pages.Page
}

// NewSaveOrderCommand creates a new save order command
func NewSaveOrderCommand(ctx *CommandContext, page pages.Page) *SaveOrderCommand {
	return &SaveOrderCommand{ctx: ctx, page: page}
}

// Execute publishes the order; the store answers with RecordsChanged
func (c *SaveOrderCommand) Execute() tea.Cmd {
	if c.page.SaveOrder() {
		c.ctx.State.SetStatus(state.StatusInfo, fmt.Sprintf("Saving %s order…", c.page.Title()), c.ctx.Now())
	}
	return nil
}

// SavePreferencesCommand publishes the hidden columns and page size
type SavePreferencesCommand struct {
	ctx      *CommandContext
	pages    []pages.Page
	pageSize int
}

// NewSavePreferencesCommand creates a new preferences command
func NewSavePreferencesCommand(ctx *CommandContext, all []pages.Page, pageSize int) *SavePreferencesCommand {
	return &SavePreferencesCommand{ctx: ctx, pages: all, pageSize: pageSize}
}

// Execute publishes a ConfigChangedEvent
func (c *SavePreferencesCommand) Execute() tea.Cmd {
	if c.ctx.Bus == nil {
		return nil
	}
	c.ctx.Bus.Publish(Preferences(c.pages, c.pageSize))
	return nil
}

// Preferences collects the UI preferences of every page
func Preferences(all []pages.Page, pageSize int) eventbus.ConfigChangedEvent {
	hidden := make(map[domain.Kind][]string, len(all))
	for _, p := range all {
		hidden[p.Kind()] = p.HiddenColumns()
	}
	return eventbus.ConfigChangedEvent{HiddenColumns: hidden, PageSize: pageSize}
}
