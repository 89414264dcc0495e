package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ids(data []person) []string {
	out := make([]string, len(data))
	for i, d := range data {
		out[i] = d.ID
	}
	return out
}

func TestArrayMove(t *testing.T) {
	src := []string{"a", "b", "c", "d", "e"}
	require.Equal(t, []string{"b", "c", "d", "a", "e"}, ArrayMove(src, 0, 3))
	require.Equal(t, []string{"a", "e", "b", "c", "d"}, ArrayMove(src, 4, 1))
	require.Equal(t, src, ArrayMove(src, 2, 2))
	require.Equal(t, src, ArrayMove(src, -1, 2))
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, src, "input is not modified")
}

func TestArrayMoveKeepsOthersInOrder(t *testing.T) {
	src := []int{0, 1, 2, 3, 4, 5, 6}
	for i := range src {
		for j := range src {
			moved := ArrayMove(src, i, j)
			require.Equal(t, src[i], moved[j])

			rest := make([]int, 0, len(src)-1)
			for _, v := range moved {
				if v != src[i] {
					rest = append(rest, v)
				}
			}
			want := make([]int, 0, len(src)-1)
			for _, v := range src {
				if v != src[i] {
					want = append(want, v)
				}
			}
			require.Equal(t, want, rest)
		}
	}
}

func TestClosestCenter(t *testing.T) {
	rects := []RowRect{{ID: "a", Top: 0, Height: 1}, {ID: "b", Top: 1, Height: 1}, {ID: "c", Top: 2, Height: 1}}
	id, ok := ClosestCenter(Point{X: 40, Y: 1}, rects)
	require.True(t, ok)
	require.Equal(t, RowID("b"), id)

	id, _ = ClosestCenter(Point{X: 0, Y: 99}, rects)
	require.Equal(t, RowID("c"), id)

	// Equal distance goes to the first rect in document order
	tied := []RowRect{{ID: "x", Top: 0, Height: 3}, {ID: "y", Top: 0, Height: 3}}
	id, _ = ClosestCenter(Point{Y: 1}, tied)
	require.Equal(t, RowID("x"), id)

	_, ok = ClosestCenter(Point{}, nil)
	require.False(t, ok)
}

func TestRowAt(t *testing.T) {
	rects := []RowRect{{ID: "a", Top: 4, Height: 1}, {ID: "b", Top: 5, Height: 2}}
	id, ok := RowAt(Point{Y: 6}, rects)
	require.True(t, ok)
	require.Equal(t, RowID("b"), id)

	for _, y := range []int{3, 7, 40} {
		_, ok = RowAt(Point{Y: y}, rects)
		require.False(t, ok, "y=%d", y)
	}
}

func TestCallerOwnedDropCallsSetterOnce(t *testing.T) {
	var calls [][]person
	var tbl *Table[person]
	tbl = New(personColumns(), []person{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		WithReorder(CallerOwned(func(next []person) {
			calls = append(calls, next)
			tbl.SetData(next)
		})),
	)

	require.True(t, tbl.BeginDrag("b"))
	tbl.DragOver("a")
	require.True(t, tbl.DropDrag())

	require.Len(t, calls, 1)
	require.Equal(t, []string{"b", "a"}, ids(calls[0]))
	require.Equal(t, []string{"b", "a"}, ids(tbl.Data()))
	_, dragging := tbl.Drag()
	require.False(t, dragging)
}

func TestDropOnSelfIsNoop(t *testing.T) {
	data := []person{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	called := false
	tbl := New(personColumns(), data, WithReorder(CallerOwned(func([]person) { called = true })))

	require.True(t, tbl.BeginDrag("b"))
	require.False(t, tbl.DropDrag())
	require.False(t, called)
	require.Equal(t, []string{"a", "b", "c"}, ids(tbl.Data()))
}

func TestDropWithVanishedRowIsNoop(t *testing.T) {
	tbl := New(personColumns(), []person{{ID: "a"}, {ID: "b"}, {ID: "c"}}, WithReorder(WidgetOwned[person]()))
	require.True(t, tbl.BeginDrag("a"))
	tbl.DragOver("c")

	// Row c disappears mid-drag
	tbl.SetData([]person{{ID: "a"}, {ID: "b"}})
	require.False(t, tbl.DropDrag())
	require.Equal(t, []string{"a", "b"}, ids(tbl.Data()))
}

func TestWidgetOwnedReorderAndSync(t *testing.T) {
	data := []person{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	tbl := New(personColumns(), data, WithReorder(WidgetOwned[person]()))

	tbl.BeginDrag("a")
	tbl.DragBy(2)
	d, ok := tbl.Drag()
	require.True(t, ok)
	require.Equal(t, DragSession{ActiveID: "a", OverID: "c"}, d)
	require.True(t, tbl.DropDrag())

	require.Equal(t, []string{"b", "c", "a"}, ids(tbl.Data()))
	require.Equal(t, []string{"a", "b", "c"}, ids(data), "caller data is untouched")

	// A new data reference replaces the local order
	tbl.SetData([]person{{ID: "x"}, {ID: "y"}})
	require.Equal(t, []string{"x", "y"}, ids(tbl.Data()))
}

func TestBeginDragRequiresReorderAndKnownRow(t *testing.T) {
	plain := New(personColumns(), zedAmy())
	require.False(t, plain.Reorderable())
	require.False(t, plain.BeginDrag("a"))

	tbl := New(personColumns(), zedAmy(), WithReorder(WidgetOwned[person]()))
	require.False(t, tbl.BeginDrag("missing"))
}

func TestCancelDragLeavesData(t *testing.T) {
	tbl := New(personColumns(), []person{{ID: "a"}, {ID: "b"}}, WithReorder(WidgetOwned[person]()))
	tbl.BeginDrag("a")
	tbl.DragOver("b")
	require.Equal(t, []string{"b", "a"}, ids(originals(tbl.PreviewRows())))

	tbl.CancelDrag()
	require.Equal(t, []string{"a", "b"}, ids(tbl.Data()))
	require.Equal(t, []string{"a", "b"}, ids(originals(tbl.PreviewRows())))
}

func TestDragPointerUsesClosestRow(t *testing.T) {
	tbl := New(personColumns(), []person{{ID: "a"}, {ID: "b"}, {ID: "c"}}, WithReorder(WidgetOwned[person]()))
	rects := []RowRect{{ID: "a", Top: 3, Height: 1}, {ID: "b", Top: 4, Height: 1}, {ID: "c", Top: 5, Height: 1}}

	tbl.BeginDrag("a")
	tbl.DragPointer(Point{X: 70, Y: 5}, rects)
	require.True(t, tbl.DropDrag())
	require.Equal(t, []string{"b", "c", "a"}, ids(tbl.Data()))
}

func originals(rows []Row[person]) []person {
	out := make([]person, len(rows))
	for i, r := range rows {
		out[i] = r.Original
	}
	return out
}
