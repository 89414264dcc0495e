package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/grid"
)

// HeaderView is one rendered column header
type HeaderView struct {
	ID       string
	Text     string
	Sort     grid.SortDirection
	Sortable bool
	Width    int // fixed width, 0 to fit content
}

// CellView is one rendered body cell
type CellView struct {
	Text  string
	Class string
}

// RowView is one rendered body row
type RowView struct {
	ID       grid.RowID
	Class    string
	Cells    []CellView
	Selected bool
	Active   bool // being dragged
	Over     bool // drop target
}

// FilterView is one toolbar filter input
type FilterView struct {
	Placeholder string
	Value       string
	Input       string // live input view while editing
	Focused     bool
}

// TableView is everything the renderer needs from a grid page
type TableView struct {
	Headers     []HeaderView
	Rows        []RowView
	Handles     bool
	Dragging    bool
	Filters     []FilterView
	Actions     []grid.Action
	Hidden      int // hidden column count
	Shell       grid.ShellFlags
	Footer      string
	PageIndex   int
	PageCount   int
	PageSize    int
	CanPrevious bool
	CanNext     bool
}

const (
	maxCellWidth = 40
	columnGap    = 2
	cursorWidth  = 2
	handleWidth  = 2
	checkWidth   = 4
)

// Row prefix glyphs
const (
	cursorGlyph = "▸ "
	handleGlyph = "⠿ "
	activeGlyph = "◆ "
)

// columnWidths sizes each column to its widest cell, honoring fixed widths
func columnWidths(tv TableView) []int {
	widths := make([]int, len(tv.Headers))
	for i, h := range tv.Headers {
		if h.Width > 0 {
			widths[i] = h.Width
			continue
		}
		w := lipgloss.Width(headerText(h))
		for _, r := range tv.Rows {
			if i < len(r.Cells) {
				w = max(w, lipgloss.Width(r.Cells[i].Text))
			}
		}
		widths[i] = min(w, maxCellWidth)
	}
	return widths
}

func headerText(h HeaderView) string {
	switch h.Sort {
	case grid.SortAsc:
		return h.Text + " ↑"
	case grid.SortDesc:
		return h.Text + " ↓"
	}
	return h.Text
}

func (r *Renderer) prefixWidth(tv TableView) int {
	w := cursorWidth + checkWidth
	if tv.Handles {
		w += handleWidth
	}
	return w
}

func (r *Renderer) renderHeader(tv TableView, widths []int, focused int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", r.prefixWidth(tv)))
	for i, h := range tv.Headers {
		style := r.styles.Header
		if i == focused {
			style = r.styles.FocusedHeader
		}
		text := h.Text
		if h.Sort != grid.SortNone {
			text = style.Render(text) + r.styles.SortIndicator.Render(strings.TrimPrefix(headerText(h), h.Text))
		} else {
			text = style.Render(text)
		}
		b.WriteString(pad(text, widths[i]))
		if i < len(tv.Headers)-1 {
			b.WriteString(strings.Repeat(" ", columnGap))
		}
	}
	return b.String()
}

func (r *Renderer) renderRow(tv TableView, row RowView, widths []int, cursor bool) string {
	var b strings.Builder
	if cursor {
		b.WriteString(r.styles.DragActive.Render(cursorGlyph))
	} else {
		b.WriteString(strings.Repeat(" ", cursorWidth))
	}
	if tv.Handles {
		switch {
		case row.Active:
			b.WriteString(r.styles.DragActive.Render(activeGlyph))
		default:
			b.WriteString(r.styles.Handle.Render(handleGlyph))
		}
	}
	if row.Selected {
		b.WriteString(r.Class("selected").Render("[x]") + " ")
	} else {
		b.WriteString(r.styles.Dim.Render("[ ]") + " ")
	}

	rowStyle := r.Class(row.Class)
	for i, c := range row.Cells {
		if i >= len(widths) {
			break
		}
		text := truncate(c.Text, widths[i])
		style := r.Class(c.Class).Inherit(rowStyle)
		if row.Over && !row.Active {
			style = style.Inherit(r.styles.DragOver)
		}
		b.WriteString(pad(style.Render(text), widths[i]))
		if i < len(row.Cells)-1 {
			b.WriteString(strings.Repeat(" ", columnGap))
		}
	}
	return b.String()
}

func (r *Renderer) renderBody(tv TableView, widths []int, cursor int) []string {
	if len(tv.Rows) == 0 {
		total := r.prefixWidth(tv)
		for _, w := range widths {
			total += w + columnGap
		}
		return []string{lipgloss.PlaceHorizontal(max(total, len(grid.NoResults)), lipgloss.Center, r.styles.Dim.Render(grid.NoResults))}
	}
	lines := make([]string, len(tv.Rows))
	for i, row := range tv.Rows {
		lines[i] = r.renderRow(tv, row, widths, i == cursor && !tv.Dragging)
	}
	return lines
}

func (r *Renderer) renderToolbar(tv TableView) string {
	var parts []string
	if !tv.Shell.NoGlobalFilter {
		for _, f := range tv.Filters {
			style := r.styles.Filter
			if f.Focused {
				style = r.styles.FilterFocused
			}
			text := f.Value
			switch {
			case f.Input != "":
				text = f.Input
			case text == "":
				text = r.styles.Dim.Render(f.Placeholder)
			}
			parts = append(parts, style.Render(text))
		}
	}
	for _, a := range tv.Actions {
		parts = append(parts, r.styles.Action.Render(fmt.Sprintf("[%s] %s", a.Key, a.Label)))
	}
	if !tv.Shell.NoColumnVisibilityToggle && tv.Hidden > 0 {
		parts = append(parts, r.styles.Dim.Render(fmt.Sprintf("View: %d hidden (V shows all)", tv.Hidden)))
	}
	return strings.Join(parts, "  ")
}

func (r *Renderer) renderFooter(tv TableView) string {
	if tv.Shell.NoFooter {
		return ""
	}
	left := r.styles.Footer.Render(tv.Footer)
	if tv.Shell.NoPagination {
		return left
	}

	r.pager.PerPage = max(1, tv.PageSize)
	r.pager.TotalPages = max(1, tv.PageCount)
	r.pager.Page = min(tv.PageIndex, r.pager.TotalPages-1)

	control := func(glyph string, enabled bool) string {
		if enabled {
			return glyph
		}
		return r.styles.Dim.Render(glyph)
	}
	right := strings.Join([]string{
		r.styles.Footer.Render(fmt.Sprintf("Rows per page: %d", tv.PageSize)),
		r.styles.Footer.Render(fmt.Sprintf("Page %d of %d", tv.PageIndex+1, max(1, tv.PageCount))),
		control("«", tv.CanPrevious) + " " + control("‹", tv.CanPrevious) + " " +
			control("›", tv.CanNext) + " " + control("»", tv.CanNext),
		r.pager.View(),
	}, "   ")
	return left + "   " + right
}

// pad right-pads s to width w ignoring escape sequences
func pad(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
