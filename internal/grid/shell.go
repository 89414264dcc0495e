package grid

import "fmt"

// FilterField declares a toolbar text input bound to one column filter.
type FilterField struct {
	AccessorKey string
	Placeholder string
}

// Action is a caller-supplied toolbar entry. The grid only lists it.
type Action struct {
	Key   string
	Label string
}

// ShellFlags suppress parts of the rendered shell. They never affect the
// view state.
type ShellFlags struct {
	NoHeader                 bool
	NoFooter                 bool
	NoColumnVisibilityToggle bool
	NoGlobalFilter           bool
	NoPagination             bool
}

// RowClass picks the style class of a row.
type RowClass[T any] interface {
	RowClass(row Row[T]) string
}

// CellClass picks the style class of a cell.
type CellClass[T any] interface {
	CellClass(row Row[T], columnID string) string
}

// Class is a static class usable for both rows and cells.
type Class[T any] string

// RowClass implements RowClass.
func (c Class[T]) RowClass(Row[T]) string { return string(c) }

// CellClass implements CellClass.
func (c Class[T]) CellClass(Row[T], string) string { return string(c) }

// RowClassFunc computes a row class on every render.
type RowClassFunc[T any] func(row Row[T]) string

// RowClass implements RowClass.
func (f RowClassFunc[T]) RowClass(row Row[T]) string { return f(row) }

// CellClassFunc computes a cell class on every render.
type CellClassFunc[T any] func(row Row[T], columnID string) string

// CellClass implements CellClass.
func (f CellClassFunc[T]) CellClass(row Row[T], columnID string) string { return f(row, columnID) }

// Styling holds class overrides per region.
type Styling[T any] struct {
	Table  string
	Header string
	Body   string
	Row    RowClass[T]
	Cell   CellClass[T]
}

// RowClassOf evaluates the row class hook.
func (s Styling[T]) RowClassOf(row Row[T]) string {
	if s.Row == nil {
		return ""
	}
	return s.Row.RowClass(row)
}

// CellClassOf evaluates the cell class hook.
func (s Styling[T]) CellClassOf(row Row[T], columnID string) string {
	if s.Cell == nil {
		return ""
	}
	return s.Cell.CellClass(row, columnID)
}

// NoResults is the text of the placeholder row shown for an empty page.
const NoResults = "No results."

// FooterSummary formats the selection summary shown in the footer.
func FooterSummary(selected, filtered int) string {
	return fmt.Sprintf("%d of %d row(s) selected.", selected, filtered)
}
