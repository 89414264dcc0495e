package grid

import (
	"math"
	"slices"
)

// DataOwnership decides who holds the row array a drop rewrites.
type DataOwnership[T any] interface {
	commit(t *Table[T], next []T)
}

type callerOwned[T any] struct {
	set func([]T)
}

func (o callerOwned[T]) commit(_ *Table[T], next []T) {
	o.set(next)
}

type widgetOwned[T any] struct{}

func (widgetOwned[T]) commit(t *Table[T], next []T) {
	t.local = next
	t.dataVersion++
	t.ctrl.Revalidate()
}

// CallerOwned keeps the caller's data as the source of truth; a drop hands
// the reordered slice to set and nothing else. The caller is expected to
// pass the result back through SetData.
func CallerOwned[T any](set func([]T)) DataOwnership[T] {
	return callerOwned[T]{set: set}
}

// WidgetOwned makes the table keep its own copy of the data, replaced on
// every SetData and reordered in place on drop.
func WidgetOwned[T any]() DataOwnership[T] {
	return widgetOwned[T]{}
}

// DragSession exists between drag start and drop or cancel.
type DragSession struct {
	ActiveID RowID
	OverID   RowID
}

// Point is a pointer position in screen cells.
type Point struct {
	X, Y int
}

// RowRect is the on-screen extent of a rendered row.
type RowRect struct {
	ID     RowID
	Top    int
	Height int
}

func (r RowRect) center() float64 {
	return float64(r.Top) + float64(r.Height)/2
}

// ClosestCenter returns the row whose vertical center is nearest p. X is
// ignored. Ties go to the earliest rect.
func ClosestCenter(p Point, rects []RowRect) (RowID, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, r := range rects {
		d := math.Abs(float64(p.Y) + 0.5 - r.center())
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return "", false
	}
	return rects[best].ID, true
}

// RowAt returns the row whose extent contains p, if any.
func RowAt(p Point, rects []RowRect) (RowID, bool) {
	for _, r := range rects {
		if p.Y >= r.Top && p.Y < r.Top+r.Height {
			return r.ID, true
		}
	}
	return "", false
}

// ArrayMove returns a copy of s with the element at from moved to to.
// Everything else keeps its relative order.
func ArrayMove[T any](s []T, from, to int) []T {
	out := slices.Clone(s)
	if from == to || from < 0 || to < 0 || from >= len(s) || to >= len(s) {
		return out
	}
	v := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, v)
}

// Reorderable reports whether drag-reorder is enabled.
func (t *Table[T]) Reorderable() bool {
	return t.ownership != nil
}

// Drag returns the active session, if any.
func (t *Table[T]) Drag() (DragSession, bool) {
	if t.drag == nil {
		return DragSession{}, false
	}
	return *t.drag, true
}

// BeginDrag picks up the row with id.
func (t *Table[T]) BeginDrag(id RowID) bool {
	if !t.Reorderable() || t.indexOf(id) < 0 {
		return false
	}
	t.drag = &DragSession{ActiveID: id, OverID: id}
	return true
}

// DragOver marks id as the row currently under the dragged one.
func (t *Table[T]) DragOver(id RowID) {
	if t.drag == nil || t.indexOf(id) < 0 {
		return
	}
	t.drag.OverID = id
}

// DragPointer updates the over row from a pointer position.
func (t *Table[T]) DragPointer(p Point, rects []RowRect) {
	if t.drag == nil {
		return
	}
	if id, ok := ClosestCenter(p, rects); ok {
		t.DragOver(id)
	}
}

// DragBy moves the over row by delta visible rows, stopping at the page
// edges.
func (t *Table[T]) DragBy(delta int) {
	if t.drag == nil {
		return
	}
	rows := t.RowModel().Rows
	at := slices.IndexFunc(rows, func(r Row[T]) bool { return r.ID == t.drag.OverID })
	if at < 0 {
		return
	}
	at = max(0, min(len(rows)-1, at+delta))
	t.drag.OverID = rows[at].ID
}

// DropDrag ends the session and moves the active row to the over row's
// position. It reports whether the data changed.
func (t *Table[T]) DropDrag() bool {
	s := t.drag
	t.drag = nil
	if s == nil || s.ActiveID == s.OverID {
		return false
	}
	from, to := t.indexOf(s.ActiveID), t.indexOf(s.OverID)
	if from < 0 || to < 0 {
		return false
	}
	t.ownership.commit(t, ArrayMove(t.Data(), from, to))
	return true
}

// CancelDrag discards the session.
func (t *Table[T]) CancelDrag() {
	t.drag = nil
}

// PreviewRows returns the visible rows with the dragged row shown at the
// over position. The data is not touched.
func (t *Table[T]) PreviewRows() []Row[T] {
	rows := t.RowModel().Rows
	if t.drag == nil {
		return rows
	}
	from := slices.IndexFunc(rows, func(r Row[T]) bool { return r.ID == t.drag.ActiveID })
	to := slices.IndexFunc(rows, func(r Row[T]) bool { return r.ID == t.drag.OverID })
	if from < 0 || to < 0 {
		return rows
	}
	return ArrayMove(rows, from, to)
}

func (t *Table[T]) indexOf(id RowID) int {
	for i, d := range t.Data() {
		if t.identity(d, i) == id {
			return i
		}
	}
	return -1
}
