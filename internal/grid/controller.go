package grid

// PaginationMode decides who owns page boundaries. It is fixed when the
// table is built.
type PaginationMode interface {
	isPaginationMode()
}

// InternalPagination lets the table slice the filtered rows itself.
type InternalPagination struct{}

func (InternalPagination) isPaginationMode() {}

// ExternalPagination hands paging to the caller (server-side paging). The
// data passed to the table is already the current page and PageCount is
// trusted as given.
type ExternalPagination struct {
	PageCount int
	OnChange  func(Pagination)
}

func (ExternalPagination) isPaginationMode() {}

// Controller is the single owner of a table's ViewState.
type Controller struct {
	state     ViewState
	mode      PaginationMode
	pageCount int // external mode only
	// rowCount reports the filtered row count for a state; installed by the
	// table so the controller can keep PageIndex in range.
	rowCount func(ViewState) int
	version  uint64
}

// ControllerOptions are the caller-supplied initial values.
type ControllerOptions struct {
	InitialVisibility Visibility
	InitialPageIndex  int
	InitialPageSize   int
	Mode              PaginationMode
}

// NewController builds a controller with the documented defaults.
func NewController(opts ControllerOptions) *Controller {
	size := opts.InitialPageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	index := opts.InitialPageIndex
	if index < 0 {
		index = 0
	}
	mode := opts.Mode
	if mode == nil {
		mode = InternalPagination{}
	}
	c := &Controller{
		state: ViewState{
			Sorting:       Sorting{},
			ColumnFilters: ColumnFilters{},
			Visibility:    Visibility{},
			RowSelection:  RowSelection{},
			Pagination:    Pagination{PageIndex: index, PageSize: size},
		},
		mode: mode,
	}
	for id, shown := range opts.InitialVisibility {
		c.state.Visibility[id] = shown
	}
	if ext, ok := mode.(ExternalPagination); ok {
		c.pageCount = ext.PageCount
	}
	return c
}

// State returns a copy of the current view state.
func (c *Controller) State() ViewState {
	return c.state.clone()
}

// Manual reports whether paging is caller-controlled.
func (c *Controller) Manual() bool {
	_, ok := c.mode.(ExternalPagination)
	return ok
}

// ExternalPageCount returns the caller's page count in manual mode.
func (c *Controller) ExternalPageCount() int {
	return c.pageCount
}

// SetPageCount updates the caller's page count. Ignored in internal mode.
func (c *Controller) SetPageCount(n int) {
	if !c.Manual() {
		return
	}
	if n < 0 {
		n = 0
	}
	c.pageCount = n
	c.version++
}

// Version changes whenever the state or page count changes.
func (c *Controller) Version() uint64 {
	return c.version
}

// SetSorting replaces the sorting state.
func (c *Controller) SetSorting(u Updater[Sorting]) {
	c.state.Sorting = u(append(Sorting(nil), c.state.Sorting...))
	c.enforce()
}

// SetColumnFilters replaces the column filter state.
func (c *Controller) SetColumnFilters(u Updater[ColumnFilters]) {
	c.state.ColumnFilters = u(append(ColumnFilters(nil), c.state.ColumnFilters...))
	c.enforce()
}

// SetColumnVisibility replaces the visibility state.
func (c *Controller) SetColumnVisibility(u Updater[Visibility]) {
	next := u(c.state.clone().Visibility)
	if next == nil {
		next = Visibility{}
	}
	c.state.Visibility = next
	c.enforce()
}

// SetRowSelection replaces the selection state.
func (c *Controller) SetRowSelection(u Updater[RowSelection]) {
	next := u(c.state.clone().RowSelection)
	if next == nil {
		next = RowSelection{}
	}
	c.state.RowSelection = next
	c.enforce()
}

// SetPagination replaces the pagination state. In external mode the local
// mirror is updated first and then OnChange is called once.
func (c *Controller) SetPagination(u Updater[Pagination]) {
	next := u(c.state.Pagination)
	if next.PageSize <= 0 {
		next.PageSize = DefaultPageSize
	}
	if next.PageIndex < 0 {
		next.PageIndex = 0
	}
	c.state.Pagination = next
	if ext, ok := c.mode.(ExternalPagination); ok {
		c.version++
		if ext.OnChange != nil {
			ext.OnChange(next)
		}
		return
	}
	c.enforce()
}

// PageCount returns the number of pages for the current state.
func (c *Controller) PageCount() int {
	if c.Manual() {
		return c.pageCount
	}
	if c.rowCount == nil {
		return 0
	}
	return PageCount(c.rowCount(c.state), c.state.Pagination.PageSize)
}

// enforce keeps PageIndex within [0, pageCount-1] in internal mode.
func (c *Controller) enforce() {
	c.version++
	if c.Manual() || c.rowCount == nil {
		return
	}
	pages := c.PageCount()
	switch {
	case pages == 0:
		c.state.Pagination.PageIndex = 0
	case c.state.Pagination.PageIndex > pages-1:
		c.state.Pagination.PageIndex = pages - 1
	case c.state.Pagination.PageIndex < 0:
		c.state.Pagination.PageIndex = 0
	}
}

// Revalidate re-applies the pagination invariant, e.g. after the data changed.
func (c *Controller) Revalidate() {
	c.enforce()
}

// ToggleSorting cycles a column through asc, desc and unsorted.
func (c *Controller) ToggleSorting(col string, sortable bool) {
	if !sortable {
		return
	}
	c.SetSorting(func(old Sorting) Sorting {
		switch old.Direction(col) {
		case SortNone:
			return Sorting{{ColumnID: col}}
		case SortAsc:
			return Sorting{{ColumnID: col, Desc: true}}
		default:
			return Sorting{}
		}
	})
}

// SetFilter sets or clears the filter on one column.
func (c *Controller) SetFilter(col, value string) {
	c.SetColumnFilters(func(old ColumnFilters) ColumnFilters {
		return old.With(col, value)
	})
}

// ToggleVisibility shows or hides a column.
func (c *Controller) ToggleVisibility(col string, hideable bool) {
	if !hideable {
		return
	}
	c.SetColumnVisibility(func(old Visibility) Visibility {
		old[col] = !old.Visible(col)
		return old
	})
}

// ToggleRowSelected flips the selection of one row.
func (c *Controller) ToggleRowSelected(id RowID) {
	c.SetRowSelection(func(old RowSelection) RowSelection {
		if old[id] {
			delete(old, id)
		} else {
			old[id] = true
		}
		return old
	})
}

// SelectAll selects exactly ids.
func (c *Controller) SelectAll(ids []RowID) {
	sel := make(RowSelection, len(ids))
	for _, id := range ids {
		sel[id] = true
	}
	c.SetRowSelection(Replace(sel))
}

// ClearSelection deselects every row.
func (c *Controller) ClearSelection() {
	c.SetRowSelection(Replace(RowSelection{}))
}

// CanPreviousPage reports whether a previous page exists.
func (c *Controller) CanPreviousPage() bool {
	return c.state.Pagination.PageIndex > 0
}

// CanNextPage reports whether a next page exists.
func (c *Controller) CanNextPage() bool {
	return c.state.Pagination.PageIndex < c.PageCount()-1
}

// FirstPage moves to page 0.
func (c *Controller) FirstPage() {
	if !c.CanPreviousPage() {
		return
	}
	c.setPageIndex(0)
}

// PreviousPage moves one page back.
func (c *Controller) PreviousPage() {
	if !c.CanPreviousPage() {
		return
	}
	c.setPageIndex(c.state.Pagination.PageIndex - 1)
}

// NextPage moves one page forward.
func (c *Controller) NextPage() {
	if !c.CanNextPage() {
		return
	}
	c.setPageIndex(c.state.Pagination.PageIndex + 1)
}

// LastPage moves to the last page.
func (c *Controller) LastPage() {
	if !c.CanNextPage() {
		return
	}
	c.setPageIndex(c.PageCount() - 1)
}

// SetPageSize changes the page size and returns to the first page.
func (c *Controller) SetPageSize(size int) {
	c.SetPagination(func(Pagination) Pagination {
		return Pagination{PageIndex: 0, PageSize: size}
	})
}

func (c *Controller) setPageIndex(i int) {
	c.SetPagination(func(p Pagination) Pagination {
		p.PageIndex = i
		return p
	})
}
