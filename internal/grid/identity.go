// Package grid implements a generic data-grid: a declarative column model,
// view state (sort, filter, visibility, selection, pagination), the row
// pipeline deriving the visible page, optional drag-to-reorder and the
// optimistic mutation tracker used by in-row toggles.
//
// The package holds no rendering code beyond plain strings; terminal and
// HTML front ends render from the row model it produces.
package grid

import "strconv"

// RowID is the stable identity of a row within one data set.
type RowID string

// IdentityFunc derives the identity of row at index in the current
// (pre-filter) data.
type IdentityFunc[T any] func(row T, index int) RowID

// Identifier is implemented by rows that carry their own identity.
type Identifier interface {
	RowID() RowID
}

// DefaultIdentity returns the row's own id when it has one, otherwise the
// stringified index. Index identities do not survive reordering.
func DefaultIdentity[T any](row T, index int) RowID {
	if r, ok := any(row).(Identifier); ok {
		if id := r.RowID(); id != "" {
			return id
		}
	}
	return RowID(strconv.Itoa(index))
}
