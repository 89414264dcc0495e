// Package pages binds each portfolio collection to a grid table and exposes
// the result to the terminal UI without its row type.
package pages

import (
	"context"
	"slices"
	"time"

	"folio/internal/domain"
	"folio/internal/export"
	"folio/internal/grid"
	"folio/internal/ui/views"
)

// Page is one collection page of the dashboard
type Page interface {
	Kind() domain.Kind
	Title() string

	RowCount() int
	RowIDAt(i int) grid.RowID
	RowOrder() []grid.RowID
	HasSelection() bool
	FilterFields() []grid.FilterField
	FilterValue(columnID string) string

	View(column int) views.TableView
	VisibleColumnCount() int
	ToggleSort(column int)
	ToggleVisibility(column int)
	ShowAllColumns()
	ToggleSelected(row int)
	ToggleSelectAll()
	SetFilter(columnID, value string)
	Paginate(direction string)
	StepPageSize(delta int)
	PageSize() int
	HiddenColumns() []string

	TogglePublished(ctx context.Context, row int) error
	DeleteRow(ctx context.Context, row int) error
	Settle(key grid.MutationKey, id string) bool
	Expire(now time.Time) []grid.MutationKey
	PendingCount() int

	Reorderable() bool
	Dragging() bool
	BeginDrag(row int) bool
	DragBy(delta int)
	DragPointer(p grid.Point, rects []grid.RowRect)
	ActiveIndex() int
	Drop() bool
	CancelDrag()
	SaveOrder() bool

	Reload()
	Snapshot() export.Snapshot
}

// Options are the per-page settings taken from the config
type Options struct {
	Hidden          []string
	PageSize        int
	MutationTimeout time.Duration
	ShowHandles     bool
}

func (o Options) visibility() grid.Visibility {
	v := grid.Visibility{}
	for _, id := range o.Hidden {
		v[id] = false
	}
	return v
}

// gridPage adapts a typed table to Page
type gridPage[T grid.Identifier] struct {
	kind      domain.Kind
	table     *grid.Table[T]
	load      func() []T
	refetch   func(grid.Pagination) // server paging only
	submitter grid.Submitter
	published func(T) bool
	link      export.LinkFunc[T]
	saveOrder func() // widget-owned order only
	handles   bool
}

func (p *gridPage[T]) Kind() domain.Kind { return p.kind }
func (p *gridPage[T]) Title() string     { return p.kind.Title() }

func (p *gridPage[T]) rows() []grid.Row[T] {
	return p.table.PreviewRows()
}

func (p *gridPage[T]) RowCount() int {
	return len(p.table.RowModel().Rows)
}

// RowIDAt returns the id of the i-th rendered row, following the drag
// preview while a row is picked up
func (p *gridPage[T]) RowIDAt(i int) grid.RowID {
	rows := p.rows()
	if i < 0 || i >= len(rows) {
		return ""
	}
	return rows[i].ID
}

// RowOrder returns the ids of the visible rows ignoring any drag preview
func (p *gridPage[T]) RowOrder() []grid.RowID {
	rows := p.table.RowModel().Rows
	ids := make([]grid.RowID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func (p *gridPage[T]) HasSelection() bool {
	return len(p.table.Selected()) > 0
}

func (p *gridPage[T]) FilterFields() []grid.FilterField {
	return p.table.FilterFields()
}

func (p *gridPage[T]) FilterValue(columnID string) string {
	return p.table.State().ColumnFilters.Value(columnID)
}

func (p *gridPage[T]) VisibleColumnCount() int {
	return len(p.table.VisibleColumns())
}

func (p *gridPage[T]) columnAt(i int) string {
	cols := p.table.VisibleColumns()
	if i < 0 || i >= len(cols) {
		return ""
	}
	return cols[i].ID
}

func (p *gridPage[T]) ToggleSort(column int) {
	p.table.ToggleSorting(p.columnAt(column))
}

func (p *gridPage[T]) ToggleVisibility(column int) {
	if p.table.Shell().NoColumnVisibilityToggle {
		return
	}
	// Keep at least one column on screen
	if p.VisibleColumnCount() <= 1 {
		return
	}
	p.table.ToggleVisibility(p.columnAt(column))
}

func (p *gridPage[T]) ShowAllColumns() {
	if p.table.Shell().NoColumnVisibilityToggle {
		return
	}
	p.table.Controller().SetColumnVisibility(grid.Replace(grid.Visibility{}))
}

func (p *gridPage[T]) ToggleSelected(row int) {
	if id := p.RowIDAt(row); id != "" {
		p.table.Controller().ToggleRowSelected(id)
	}
}

func (p *gridPage[T]) ToggleSelectAll() {
	p.table.ToggleSelectAll()
}

func (p *gridPage[T]) SetFilter(columnID, value string) {
	p.table.Controller().SetFilter(columnID, value)
}

func (p *gridPage[T]) Paginate(direction string) {
	ctrl := p.table.Controller()
	switch direction {
	case "first":
		ctrl.FirstPage()
	case "previous":
		ctrl.PreviousPage()
	case "next":
		ctrl.NextPage()
	case "last":
		ctrl.LastPage()
	}
}

// StepPageSize moves through the page size options
func (p *gridPage[T]) StepPageSize(delta int) {
	opts := grid.PageSizeOptions
	at := slices.Index(opts, p.PageSize())
	if at < 0 {
		at = 0
	}
	next := max(0, min(len(opts)-1, at+delta))
	if opts[next] != p.PageSize() {
		p.table.Controller().SetPageSize(opts[next])
	}
}

func (p *gridPage[T]) PageSize() int {
	return p.table.State().Pagination.PageSize
}

// HiddenColumns returns the ids of hidden columns in column order
func (p *gridPage[T]) HiddenColumns() []string {
	vis := p.table.State().Visibility
	var out []string
	for _, c := range p.table.Columns() {
		if !vis.Visible(c.ID) {
			out = append(out, c.ID)
		}
	}
	return out
}

func (p *gridPage[T]) publishedKey(id grid.RowID) grid.MutationKey {
	return grid.MutationKey{RowID: id, Field: domain.FieldPublished}
}

// displayPublished is the published flag as currently shown, pending
// value first
func (p *gridPage[T]) displayPublished(row grid.Row[T]) bool {
	return p.table.Tracker().DisplayBool(p.publishedKey(row.ID), p.published(row.Original))
}

// TogglePublished submits the inverse of the displayed flag. The new value
// shows right away and stays until the endpoint answers.
func (p *gridPage[T]) TogglePublished(ctx context.Context, row int) error {
	rows := p.rows()
	if row < 0 || row >= len(rows) {
		return nil
	}
	r := rows[row]
	_, err := p.table.Tracker().Dispatch(ctx, p.submitter, grid.Submission{
		Intent: domain.IntentTogglePublish,
		RowID:  r.ID,
		Field:  domain.FieldPublished,
		Value:  !p.displayPublished(r),
	})
	return err
}

func (p *gridPage[T]) deleteKey(id grid.RowID) grid.MutationKey {
	return grid.MutationKey{RowID: id, Field: domain.FieldRecord}
}

// deleting reports whether a delete for the row is in flight
func (p *gridPage[T]) deleting(row grid.Row[T]) bool {
	return p.table.Tracker().Pending(p.deleteKey(row.ID))
}

// DeleteRow asks the endpoint to remove a record. The row stays on screen,
// marked pending, until the store drops it.
func (p *gridPage[T]) DeleteRow(ctx context.Context, row int) error {
	rows := p.rows()
	if row < 0 || row >= len(rows) || p.deleting(rows[row]) {
		return nil
	}
	_, err := p.table.Tracker().Dispatch(ctx, p.submitter, grid.Submission{
		Intent: domain.IntentDelete,
		RowID:  rows[row].ID,
		Field:  domain.FieldRecord,
		Value:  true,
		Method: "DELETE",
	})
	return err
}

func (p *gridPage[T]) Settle(key grid.MutationKey, id string) bool {
	return p.table.Tracker().Settle(key, id)
}

func (p *gridPage[T]) Expire(now time.Time) []grid.MutationKey {
	return p.table.Tracker().Expire(now)
}

func (p *gridPage[T]) PendingCount() int {
	return p.table.Tracker().PendingCount()
}

func (p *gridPage[T]) Reorderable() bool {
	return p.table.Reorderable()
}

func (p *gridPage[T]) Dragging() bool {
	_, ok := p.table.Drag()
	return ok
}

func (p *gridPage[T]) BeginDrag(row int) bool {
	return p.table.BeginDrag(p.RowIDAt(row))
}

func (p *gridPage[T]) DragBy(delta int) {
	p.table.DragBy(delta)
}

func (p *gridPage[T]) DragPointer(pt grid.Point, rects []grid.RowRect) {
	p.table.DragPointer(pt, rects)
}

// ActiveIndex returns where the dragged row is rendered, or -1
func (p *gridPage[T]) ActiveIndex() int {
	s, ok := p.table.Drag()
	if !ok {
		return -1
	}
	return slices.IndexFunc(p.rows(), func(r grid.Row[T]) bool { return r.ID == s.ActiveID })
}

func (p *gridPage[T]) Drop() bool {
	return p.table.DropDrag()
}

func (p *gridPage[T]) CancelDrag() {
	p.table.CancelDrag()
}

// SaveOrder asks for the on-screen order to be stored. Pages whose order
// is saved on drop report false.
func (p *gridPage[T]) SaveOrder() bool {
	if p.saveOrder == nil {
		return false
	}
	p.saveOrder()
	return true
}

// Reload pulls fresh records from the store
func (p *gridPage[T]) Reload() {
	if p.refetch != nil {
		p.refetch(p.table.State().Pagination)
		return
	}
	p.table.SetData(p.load())
}

func (p *gridPage[T]) Snapshot() export.Snapshot {
	return export.FromTable(p.Title(), p.table, p.link)
}

// View renders the page for the terminal
func (p *gridPage[T]) View(column int) views.TableView {
	state := p.table.State()
	cols := p.table.VisibleColumns()
	styling := p.table.Styling()
	model := p.table.RowModel()
	ctrl := p.table.Controller()
	drag, dragging := p.table.Drag()

	tv := views.TableView{
		Handles:     p.handles && p.table.Reorderable(),
		Dragging:    dragging,
		Actions:     p.table.Actions(),
		Hidden:      len(p.table.Columns()) - len(cols),
		Shell:       p.table.Shell(),
		Footer:      p.table.Footer(),
		PageIndex:   state.Pagination.PageIndex,
		PageCount:   model.PageCount,
		PageSize:    state.Pagination.PageSize,
		CanPrevious: ctrl.CanPreviousPage(),
		CanNext:     ctrl.CanNextPage(),
	}
	for _, c := range cols {
		sort := state.Sorting.Direction(c.ID)
		tv.Headers = append(tv.Headers, views.HeaderView{
			ID:       c.ID,
			Text:     c.RenderHeader(sort),
			Sort:     sort,
			Sortable: c.EnableSorting,
			Width:    c.FixedSize,
		})
	}
	for _, f := range p.table.FilterFields() {
		tv.Filters = append(tv.Filters, views.FilterView{
			Placeholder: f.Placeholder,
			Value:       state.ColumnFilters.Value(f.AccessorKey),
		})
	}
	for _, r := range p.rows() {
		rv := views.RowView{
			ID:       r.ID,
			Class:    styling.RowClassOf(r),
			Selected: state.RowSelection[r.ID],
			Active:   dragging && r.ID == drag.ActiveID,
			Over:     dragging && r.ID == drag.OverID,
		}
		for _, c := range cols {
			rv.Cells = append(rv.Cells, views.CellView{
				Text:  c.RenderCell(r),
				Class: styling.CellClassOf(r, c.ID),
			})
		}
		tv.Rows = append(tv.Rows, rv)
	}
	return tv
}
