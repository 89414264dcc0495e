package input

import (
	"folio/internal/grid"
)

// Page is the part of a collection page the input handler reads
type Page interface {
	RowCount() int
	RowIDAt(i int) grid.RowID
	HasSelection() bool
	Reorderable() bool
	Dragging() bool
	FilterFields() []grid.FilterField
	FilterValue(columnID string) string
}

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Page   Page
	Cursor int
}

// CursorRow returns the cursor position within the visible rows
func (c *ModelContext) CursorRow() int {
	return c.Cursor
}

// RowCount returns the number of visible rows
func (c *ModelContext) RowCount() int {
	if c.Page == nil {
		return 0
	}
	return c.Page.RowCount()
}

// CurrentRowID returns the id of the row under the cursor
func (c *ModelContext) CurrentRowID() grid.RowID {
	if c.Page == nil || c.Cursor < 0 || c.Cursor >= c.Page.RowCount() {
		return ""
	}
	return c.Page.RowIDAt(c.Cursor)
}

// HasSelection returns true if any rows are selected
func (c *ModelContext) HasSelection() bool {
	return c.Page != nil && c.Page.HasSelection()
}

func (c *ModelContext) Reorderable() bool {
	return c.Page != nil && c.Page.Reorderable()
}

func (c *ModelContext) Dragging() bool {
	return c.Page != nil && c.Page.Dragging()
}

func (c *ModelContext) FilterFields() []grid.FilterField {
	if c.Page == nil {
		return nil
	}
	return c.Page.FilterFields()
}

func (c *ModelContext) FilterValue(columnID string) string {
	if c.Page == nil {
		return ""
	}
	return c.Page.FilterValue(columnID)
}
