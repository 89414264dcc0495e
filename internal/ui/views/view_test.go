package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"folio/internal/grid"
	"folio/internal/ui/state"
)

func sampleTable() TableView {
	return TableView{
		Headers: []HeaderView{
			{ID: "name", Text: "Name", Sort: grid.SortAsc, Sortable: true},
			{ID: "published", Text: "Published", Width: 10},
		},
		Rows: []RowView{
			{ID: "skill-01", Cells: []CellView{{Text: "Go"}, {Text: "● live", Class: "published"}}},
			{ID: "skill-02", Class: "muted", Cells: []CellView{{Text: "TypeScript"}, {Text: "○ draft"}}, Selected: true},
		},
		Handles:     true,
		Filters:     []FilterView{{Placeholder: "Filter skills..."}},
		Actions:     []grid.Action{{Key: "e", Label: "Export HTML"}},
		Hidden:      2,
		Footer:      "1 of 25 row(s) selected.",
		PageIndex:   1,
		PageCount:   3,
		PageSize:    10,
		CanPrevious: true,
		CanNext:     true,
	}
}

func render(vs ViewState) []string {
	return strings.Split(NewRenderer().Render(vs), "\n")
}

func TestRenderShowsTitleTabsAndRows(t *testing.T) {
	out := NewRenderer().Render(ViewState{
		Width:     120,
		Tabs:      []string{"About Me", "Skills"},
		ActiveTab: 1,
		Table:     sampleTable(),
	})

	require.Contains(t, out, "folio")
	require.Contains(t, out, "About Me")
	require.Contains(t, out, "Name ↑")
	require.Contains(t, out, "TypeScript")
	require.Contains(t, out, "[x]")
	require.NotContains(t, out, "saving…")
}

func TestRenderModeAndPending(t *testing.T) {
	out := NewRenderer().Render(ViewState{Table: sampleTable(), Mode: "drag", Pending: 2})
	require.Contains(t, out, "-- DRAG --")
	require.Contains(t, out, "saving…")
}

func TestToolbar(t *testing.T) {
	out := NewRenderer().Render(ViewState{Table: sampleTable()})
	require.Contains(t, out, "Filter skills...")
	require.Contains(t, out, "[e] Export HTML")
	require.Contains(t, out, "View: 2 hidden (V shows all)")

	tv := sampleTable()
	tv.Filters[0].Value = "lang"
	tv.Shell = grid.ShellFlags{NoColumnVisibilityToggle: true}
	out = NewRenderer().Render(ViewState{Table: tv})
	require.Contains(t, out, "lang")
	require.NotContains(t, out, "Filter skills...")
	require.NotContains(t, out, "hidden")

	tv.Shell.NoGlobalFilter = true
	out = NewRenderer().Render(ViewState{Table: tv})
	require.NotContains(t, out, "lang")
}

func TestFooter(t *testing.T) {
	out := NewRenderer().Render(ViewState{Table: sampleTable()})
	require.Contains(t, out, "1 of 25 row(s) selected.")
	require.Contains(t, out, "Rows per page: 10")
	require.Contains(t, out, "Page 2 of 3")
	require.Contains(t, out, "« ‹ › »")

	tv := sampleTable()
	tv.Shell.NoPagination = true
	out = NewRenderer().Render(ViewState{Table: tv})
	require.Contains(t, out, "1 of 25 row(s) selected.")
	require.NotContains(t, out, "Page 2 of 3")

	tv.Shell.NoFooter = true
	out = NewRenderer().Render(ViewState{Table: tv})
	require.NotContains(t, out, "row(s) selected.")
}

func TestEmptyTableShowsPlaceholder(t *testing.T) {
	tv := sampleTable()
	tv.Rows = nil
	out := NewRenderer().Render(ViewState{Table: tv})
	require.Contains(t, out, grid.NoResults)
	require.Contains(t, out, "Name")
}

func TestRowRectsMatchRenderedLines(t *testing.T) {
	for _, shell := range []grid.ShellFlags{{}, {NoHeader: true}} {
		tv := sampleTable()
		tv.Shell = shell
		lines := render(ViewState{Table: tv})

		rects := RowRects(shell, []grid.RowID{"skill-01", "skill-02"})
		require.Contains(t, lines[rects[0].Top], "Go")
		require.Contains(t, lines[rects[1].Top], "TypeScript")
		require.Equal(t, BodyTop(shell), rects[0].Top)
		require.Equal(t, 1, rects[1].Height)

		from, to := HandleSpan()
		runes := []rune(lines[rects[1].Top])
		require.Equal(t, handleGlyph, string(runes[from:to]))
	}
}

func TestCursorAndActiveRow(t *testing.T) {
	tv := sampleTable()
	lines := render(ViewState{Table: tv, Cursor: 1})
	top := BodyTop(tv.Shell)
	require.NotContains(t, lines[top], cursorGlyph)
	require.Contains(t, lines[top+1], cursorGlyph)

	tv.Dragging = true
	tv.Rows[0].Active = true
	lines = render(ViewState{Table: tv, Cursor: 0})
	require.NotContains(t, lines[top], cursorGlyph)
	require.Contains(t, lines[top], activeGlyph)
}

func TestStatusAndHelpLine(t *testing.T) {
	out := NewRenderer().Render(ViewState{
		Table:         sampleTable(),
		Height:        40,
		StatusMessage: "Update failed: mutation rejected",
		StatusLevel:   state.StatusError,
		ShortHelp:     "q quit",
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 40)
	require.Contains(t, out, "Update failed: mutation rejected")
	require.Contains(t, lines[len(lines)-2], "q quit")
}

func TestColumnWidths(t *testing.T) {
	tv := sampleTable()
	tv.Rows[0].Cells[0].Text = strings.Repeat("x", 60)
	require.Equal(t, []int{maxCellWidth, 10}, columnWidths(tv))
}

func TestTruncateAndPad(t *testing.T) {
	require.Equal(t, "abc", truncate("abc", 3))
	require.Equal(t, "ab…", truncate("abcdef", 3))
	require.Equal(t, "ab  ", pad("ab", 4))
	require.Equal(t, "abcd", pad("abcd", 2))
}

func TestClassMergesStyles(t *testing.T) {
	s := NewStyles()
	merged := s.Class("muted unknown  pending")
	require.True(t, merged.GetFaint())
	require.True(t, merged.GetItalic())
	require.False(t, s.Class("").GetFaint())
}
