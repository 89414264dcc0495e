package grid

import (
	"slices"
	"time"
)

type options[T any] struct {
	identity        IdentityFunc[T]
	visibility      Visibility
	pageIndex       int
	pageSize        int
	mode            PaginationMode
	ownership       DataOwnership[T]
	filterFields    []FilterField
	actions         []Action
	shell           ShellFlags
	styling         Styling[T]
	mutationTimeout time.Duration
}

// Option configures a Table.
type Option[T any] func(*options[T])

// WithIdentity sets the row identity function.
func WithIdentity[T any](fn IdentityFunc[T]) Option[T] {
	return func(o *options[T]) { o.identity = fn }
}

// WithInitialVisibility sets the starting column visibility.
func WithInitialVisibility[T any](v Visibility) Option[T] {
	return func(o *options[T]) { o.visibility = v }
}

// WithInitialPageIndex sets the starting page.
func WithInitialPageIndex[T any](i int) Option[T] {
	return func(o *options[T]) { o.pageIndex = i }
}

// WithInitialPageSize sets the starting page size.
func WithInitialPageSize[T any](n int) Option[T] {
	return func(o *options[T]) { o.pageSize = n }
}

// WithPagination chooses internal or external paging.
func WithPagination[T any](mode PaginationMode) Option[T] {
	return func(o *options[T]) { o.mode = mode }
}

// WithReorder enables drag-reorder with the given data ownership.
func WithReorder[T any](ownership DataOwnership[T]) Option[T] {
	return func(o *options[T]) { o.ownership = ownership }
}

// WithFilterFields declares the toolbar filter inputs.
func WithFilterFields[T any](fields ...FilterField) Option[T] {
	return func(o *options[T]) { o.filterFields = fields }
}

// WithActions declares the toolbar actions.
func WithActions[T any](actions ...Action) Option[T] {
	return func(o *options[T]) { o.actions = actions }
}

// WithShell sets the shell suppression flags.
func WithShell[T any](flags ShellFlags) Option[T] {
	return func(o *options[T]) { o.shell = flags }
}

// WithStyling sets the class overrides.
func WithStyling[T any](s Styling[T]) Option[T] {
	return func(o *options[T]) { o.styling = s }
}

// WithMutationTimeout sets how long optimistic markers may stay pending.
func WithMutationTimeout[T any](d time.Duration) Option[T] {
	return func(o *options[T]) { o.mutationTimeout = d }
}

// Table ties the column model, view state, row pipeline, drag-reorder and
// optimistic tracker together for one data set.
type Table[T any] struct {
	columns      Columns[T]
	data         []T
	local        []T
	identity     IdentityFunc[T]
	ctrl         *Controller
	ownership    DataOwnership[T]
	tracker      *Tracker
	drag         *DragSession
	filterFields []FilterField
	actions      []Action
	shell        ShellFlags
	styling      Styling[T]

	dataVersion uint64
	cached      *RowModel[T]
	cachedData  uint64
	cachedState uint64
}

// New creates a table over data.
func New[T any](columns Columns[T], data []T, opts ...Option[T]) *Table[T] {
	o := options[T]{
		identity:        DefaultIdentity[T],
		mutationTimeout: DefaultMutationTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.identity == nil {
		o.identity = DefaultIdentity[T]
	}

	t := &Table[T]{
		columns:      columns,
		identity:     o.identity,
		ownership:    o.ownership,
		tracker:      NewTracker(o.mutationTimeout),
		filterFields: o.filterFields,
		actions:      o.actions,
		shell:        o.shell,
		styling:      o.styling,
	}
	t.ctrl = NewController(ControllerOptions{
		InitialVisibility: o.visibility,
		InitialPageIndex:  o.pageIndex,
		InitialPageSize:   o.pageSize,
		Mode:              o.mode,
	})
	t.ctrl.rowCount = func(s ViewState) int {
		return len(filterRows(t.rows(), t.columns, s.ColumnFilters))
	}
	t.SetData(data)
	return t
}

// SetData replaces the caller's data. With widget-owned reorder the
// internal copy is replaced too, discarding any local order.
func (t *Table[T]) SetData(data []T) {
	t.data = data
	if _, ok := t.ownership.(widgetOwned[T]); ok {
		t.local = slices.Clone(data)
	}
	t.dataVersion++
	t.ctrl.Revalidate()
}

// Data returns the row array the table currently renders from.
func (t *Table[T]) Data() []T {
	if _, ok := t.ownership.(widgetOwned[T]); ok {
		return t.local
	}
	return t.data
}

func (t *Table[T]) rows() []Row[T] {
	data := t.Data()
	rows := make([]Row[T], len(data))
	for i, d := range data {
		rows[i] = Row[T]{ID: t.identity(d, i), Index: i, Original: d}
	}
	return rows
}

// Columns returns every column, hidden or not.
func (t *Table[T]) Columns() Columns[T] {
	return t.columns
}

// VisibleColumns returns the columns not hidden by the visibility state.
func (t *Table[T]) VisibleColumns() Columns[T] {
	vis := t.ctrl.state.Visibility
	out := make(Columns[T], 0, len(t.columns))
	for _, c := range t.columns {
		if vis.Visible(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// Controller returns the view-state controller.
func (t *Table[T]) Controller() *Controller {
	return t.ctrl
}

// State returns a copy of the view state.
func (t *Table[T]) State() ViewState {
	return t.ctrl.State()
}

// Tracker returns the optimistic mutation tracker.
func (t *Table[T]) Tracker() *Tracker {
	return t.tracker
}

// RowModel returns the rows for the current data and state. The result is
// reused until either changes.
func (t *Table[T]) RowModel() *RowModel[T] {
	if t.cached != nil && t.cachedData == t.dataVersion && t.cachedState == t.ctrl.Version() {
		return t.cached
	}
	m := Compute(t.Data(), t.columns, t.identity, t.ctrl.state, t.ctrl.Manual(), t.ctrl.ExternalPageCount())
	t.cached = &m
	t.cachedData = t.dataVersion
	t.cachedState = t.ctrl.Version()
	return t.cached
}

// SetPageCount updates the page count in external pagination mode.
func (t *Table[T]) SetPageCount(n int) {
	t.ctrl.SetPageCount(n)
}

// ToggleSorting cycles the sort of a column if it is sortable.
func (t *Table[T]) ToggleSorting(columnID string) {
	c := t.columns.Find(columnID)
	if c == nil {
		return
	}
	t.ctrl.ToggleSorting(columnID, c.EnableSorting)
}

// ToggleVisibility shows or hides a column if it is hideable.
func (t *Table[T]) ToggleVisibility(columnID string) {
	c := t.columns.Find(columnID)
	if c == nil {
		return
	}
	t.ctrl.ToggleVisibility(columnID, c.EnableHiding)
}

// ToggleSelectAll selects every filtered row, or clears the selection when
// all of them are already selected.
func (t *Table[T]) ToggleSelectAll() {
	filtered := t.RowModel().Filtered
	if len(filtered) > 0 && t.selectedCount() == len(filtered) {
		t.ctrl.ClearSelection()
		return
	}
	ids := make([]RowID, len(filtered))
	for i, r := range filtered {
		ids[i] = r.ID
	}
	t.ctrl.SelectAll(ids)
}

// Selected returns the selected rows among the filtered ones.
func (t *Table[T]) Selected() []Row[T] {
	sel := t.ctrl.state.RowSelection
	var out []Row[T]
	for _, r := range t.RowModel().Filtered {
		if sel[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

func (t *Table[T]) selectedCount() int {
	return len(t.Selected())
}

// Footer returns the selection summary.
func (t *Table[T]) Footer() string {
	return FooterSummary(t.selectedCount(), t.RowModel().FilteredCount)
}

// PageCount returns the number of pages.
func (t *Table[T]) PageCount() int {
	return t.RowModel().PageCount
}

// FilterFields returns the declared toolbar filters.
func (t *Table[T]) FilterFields() []FilterField {
	return t.filterFields
}

// Actions returns the declared toolbar actions.
func (t *Table[T]) Actions() []Action {
	return t.actions
}

// Shell returns the shell suppression flags.
func (t *Table[T]) Shell() ShellFlags {
	return t.shell
}

// Styling returns the class overrides.
func (t *Table[T]) Styling() Styling[T] {
	return t.styling
}
