package grid

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Row is one data row as seen by the grid.
type Row[T any] struct {
	ID RowID
	// Index is the row's position in the data, before filtering.
	Index    int
	Original T
}

// Facet is one distinct column value and how often it occurs.
type Facet struct {
	Value string
	Count int
}

// RowModel is the output of the row pipeline for one state.
type RowModel[T any] struct {
	// Rows is the visible page.
	Rows []Row[T]
	// Filtered is every row that survived filtering, in sorted order.
	Filtered      []Row[T]
	FilteredCount int
	PageCount     int

	columns Columns[T]
	facets  map[string][]Facet
}

// Empty reports whether there is nothing to show on the current page.
func (m *RowModel[T]) Empty() bool {
	return len(m.Rows) == 0
}

// Facets returns the distinct values of a column over the filtered rows,
// most frequent first and first-seen order for equal counts.
func (m *RowModel[T]) Facets(columnID string) []Facet {
	if f, ok := m.facets[columnID]; ok {
		return f
	}
	col := m.columns.Find(columnID)
	if col == nil {
		return nil
	}
	counts := make(map[string]int)
	var order []string
	for _, r := range m.Filtered {
		v := formatValue(col.Value(r.Original))
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	out := make([]Facet, 0, len(order))
	for _, v := range order {
		out = append(out, Facet{Value: v, Count: counts[v]})
	}
	slices.SortStableFunc(out, func(a, b Facet) int { return b.Count - a.Count })
	if m.facets == nil {
		m.facets = make(map[string][]Facet)
	}
	m.facets[columnID] = out
	return out
}

// Compute runs filter, sort and paginate over data. In manual mode the data
// is already the requested page and pageCount is taken as given.
func Compute[T any](data []T, columns Columns[T], identity IdentityFunc[T], state ViewState, manual bool, pageCount int) RowModel[T] {
	if identity == nil {
		identity = DefaultIdentity[T]
	}

	rows := make([]Row[T], 0, len(data))
	for i, d := range data {
		rows = append(rows, Row[T]{ID: identity(d, i), Index: i, Original: d})
	}

	filtered := filterRows(rows, columns, state.ColumnFilters)
	sortRows(filtered, columns, state.Sorting)

	m := RowModel[T]{
		Filtered:      filtered,
		FilteredCount: len(filtered),
		columns:       columns,
	}
	if manual {
		m.Rows = filtered
		m.PageCount = pageCount
		return m
	}

	p := state.Pagination
	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	m.PageCount = PageCount(len(filtered), size)
	start := p.PageIndex * size
	if p.PageIndex < 0 || start >= len(filtered) {
		m.Rows = []Row[T]{}
		return m
	}
	end := min(start+size, len(filtered))
	m.Rows = filtered[start:end]
	return m
}

func filterRows[T any](rows []Row[T], columns Columns[T], filters ColumnFilters) []Row[T] {
	type active struct {
		col    *Column[T]
		needle string
	}
	var checks []active
	for _, f := range filters {
		if f.Value == "" {
			continue
		}
		col := columns.Find(f.ColumnID)
		if col == nil {
			continue
		}
		checks = append(checks, active{col: col, needle: f.Value})
	}
	if len(checks) == 0 {
		return rows
	}

	out := make([]Row[T], 0, len(rows))
	for _, r := range rows {
		keep := true
		for _, c := range checks {
			if !strings.Contains(formatValue(c.col.Value(r.Original)), c.needle) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

func sortRows[T any](rows []Row[T], columns Columns[T], sorting Sorting) {
	if len(sorting) == 0 {
		return
	}
	by := sorting[0]
	col := columns.Find(by.ColumnID)
	if col == nil {
		return
	}
	slices.SortStableFunc(rows, func(a, b Row[T]) int {
		c := compareValues(col.Value(a.Original), col.Value(b.Original))
		if by.Desc {
			return -c
		}
		return c
	})
}

// compareValues orders two accessor values. Values of different kinds, and
// kinds without a natural order, compare by their string form. nil sorts
// first.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			return compareBool(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case fmt.Stringer:
		if y, ok := b.(fmt.Stringer); ok {
			return strings.Compare(x.String(), y.String())
		}
	}

	if x, ok := asInt(a); ok {
		if y, ok := asInt(b); ok {
			return cmpOrdered(x, y)
		}
	}
	if x, ok := asUint(a); ok {
		if y, ok := asUint(b); ok {
			return cmpOrdered(x, y)
		}
	}
	if x, ok := asFloat(a); ok {
		if y, ok := asFloat(b); ok {
			return cmpOrdered(x, y)
		}
	}
	return strings.Compare(formatValue(a), formatValue(b))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func cmpOrdered[N int64 | uint64 | float64](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func asUint(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	if u, ok := asUint(v); ok {
		return float64(u), true
	}
	return 0, false
}
