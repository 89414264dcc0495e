package grid

import "maps"

// Default pagination values.
const (
	DefaultPageSize = 10
)

// PageSizeOptions are the page sizes offered by the footer selector.
var PageSizeOptions = []int{10, 20, 30, 40, 50, 100}

// ColumnSort is one entry of the sorting state.
type ColumnSort struct {
	ColumnID string
	Desc     bool
}

// Direction returns the entry's sort direction.
func (s ColumnSort) Direction() SortDirection {
	if s.Desc {
		return SortDesc
	}
	return SortAsc
}

// Sorting is the ordered sorting state; empty means insertion order.
// Only the first entry is applied.
type Sorting []ColumnSort

// Direction returns how columnID is currently sorted.
func (s Sorting) Direction(columnID string) SortDirection {
	if len(s) == 0 || s[0].ColumnID != columnID {
		return SortNone
	}
	return s[0].Direction()
}

// ColumnFilter is one active column filter.
type ColumnFilter struct {
	ColumnID string
	Value    string
}

// ColumnFilters is the column filter state; absent columns are unfiltered.
type ColumnFilters []ColumnFilter

// Value returns the filter value for columnID, "" when unfiltered.
func (f ColumnFilters) Value(columnID string) string {
	for _, cf := range f {
		if cf.ColumnID == columnID {
			return cf.Value
		}
	}
	return ""
}

// With returns a copy with columnID set to value; an empty value removes it.
func (f ColumnFilters) With(columnID, value string) ColumnFilters {
	out := make(ColumnFilters, 0, len(f)+1)
	replaced := false
	for _, cf := range f {
		if cf.ColumnID != columnID {
			out = append(out, cf)
			continue
		}
		if value != "" {
			out = append(out, ColumnFilter{ColumnID: columnID, Value: value})
		}
		replaced = true
	}
	if !replaced && value != "" {
		out = append(out, ColumnFilter{ColumnID: columnID, Value: value})
	}
	return out
}

// Visibility maps column ids to visibility; absent means visible.
type Visibility map[string]bool

// Visible reports whether columnID is shown.
func (v Visibility) Visible(columnID string) bool {
	shown, ok := v[columnID]
	return !ok || shown
}

// RowSelection is the set of selected rows.
type RowSelection map[RowID]bool

// Count returns the number of selected rows.
func (s RowSelection) Count() int {
	n := 0
	for _, on := range s {
		if on {
			n++
		}
	}
	return n
}

// Pagination is the current page window.
type Pagination struct {
	PageIndex int // 0-based
	PageSize  int
}

// ViewState is everything the user can change about how rows are shown.
type ViewState struct {
	Sorting       Sorting
	ColumnFilters ColumnFilters
	Visibility    Visibility
	RowSelection  RowSelection
	Pagination    Pagination
}

// clone copies the maps and slices so callers can't alias controller state.
func (s ViewState) clone() ViewState {
	out := s
	out.Sorting = append(Sorting(nil), s.Sorting...)
	out.ColumnFilters = append(ColumnFilters(nil), s.ColumnFilters...)
	out.Visibility = maps.Clone(s.Visibility)
	if out.Visibility == nil {
		out.Visibility = Visibility{}
	}
	out.RowSelection = maps.Clone(s.RowSelection)
	if out.RowSelection == nil {
		out.RowSelection = RowSelection{}
	}
	return out
}

// Updater computes a new state slice from the current one.
type Updater[S any] func(old S) S

// Replace returns an updater that ignores the current value.
func Replace[S any](v S) Updater[S] {
	return func(S) S { return v }
}

// PageCount returns ceil(rows/pageSize), or 0 when there are no rows.
func PageCount(rows, pageSize int) int {
	if rows <= 0 || pageSize <= 0 {
		return 0
	}
	return (rows + pageSize - 1) / pageSize
}
