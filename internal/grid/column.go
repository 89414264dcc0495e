package grid

import "fmt"

// SortDirection is the direction a column is currently sorted in.
type SortDirection int

const (
	// SortNone means the column does not take part in sorting.
	SortNone SortDirection = iota
	// SortAsc sorts smallest first.
	SortAsc
	// SortDesc sorts largest first.
	SortDesc
)

// String returns the string representation of a SortDirection.
func (d SortDirection) String() string {
	switch d {
	case SortNone:
		return "none"
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// HeaderContext is what a header renderer gets to see.
type HeaderContext struct {
	ColumnID string
	Sort     SortDirection
}

// HeaderRenderer renders a column header.
type HeaderRenderer interface {
	RenderHeader(ctx HeaderContext) string
}

// Text is a static header.
type Text string

// RenderHeader implements HeaderRenderer.
func (t Text) RenderHeader(HeaderContext) string { return string(t) }

// HeaderFunc renders a header from its context.
type HeaderFunc func(ctx HeaderContext) string

// RenderHeader implements HeaderRenderer.
func (f HeaderFunc) RenderHeader(ctx HeaderContext) string { return f(ctx) }

// CellContext is what a cell renderer gets to see.
type CellContext[T any] struct {
	Row      Row[T]
	ColumnID string
	Value    any
}

// CellRenderer renders one cell of a row.
type CellRenderer[T any] interface {
	RenderCell(ctx CellContext[T]) string
}

// CellFunc renders a cell from its context.
type CellFunc[T any] func(ctx CellContext[T]) string

// RenderCell implements CellRenderer.
func (f CellFunc[T]) RenderCell(ctx CellContext[T]) string { return f(ctx) }

// Column describes one table column. Columns are fixed for the lifetime of
// a table; a different column set means a new table.
type Column[T any] struct {
	ID            string
	Accessor      func(row T) any
	Header        HeaderRenderer
	Cell          CellRenderer[T]
	EnableSorting bool
	EnableHiding  bool
	// FixedSize pins the rendered width; 0 lets the shell size the column.
	FixedSize int
}

// Value reads the column value of row. Columns without an accessor (action
// or handle columns) yield nil.
func (c *Column[T]) Value(row T) any {
	if c.Accessor == nil {
		return nil
	}
	return c.Accessor(row)
}

// RenderHeader renders the header, falling back to the column id.
func (c *Column[T]) RenderHeader(sort SortDirection) string {
	if c.Header == nil {
		return c.ID
	}
	return c.Header.RenderHeader(HeaderContext{ColumnID: c.ID, Sort: sort})
}

// RenderCell renders the cell for row, falling back to the formatted value.
func (c *Column[T]) RenderCell(row Row[T]) string {
	v := c.Value(row.Original)
	if c.Cell == nil {
		return formatValue(v)
	}
	return c.Cell.RenderCell(CellContext[T]{Row: row, ColumnID: c.ID, Value: v})
}

// Columns is the ordered column set of a table.
type Columns[T any] []Column[T]

// Find returns the column with id, or nil.
func (cs Columns[T]) Find(id string) *Column[T] {
	for i := range cs {
		if cs[i].ID == id {
			return &cs[i]
		}
	}
	return nil
}

func formatValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
