package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/grid"
	"folio/internal/ui/state"
)

// ViewState contains all the data needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Tabs          []string
	ActiveTab     int
	Table         TableView
	Cursor        int
	Column        int
	Mode          string
	StatusMessage string
	StatusLevel   state.StatusLevel
	ShortHelp     string
	Pending       int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	pager  paginator.Model
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Render("•")
	p.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render("•")
	return &Renderer{
		styles: NewStyles(),
		pager:  p,
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Class returns the terminal style for a grid class list
func (r *Renderer) Class(classes string) lipgloss.Style {
	return r.styles.Class(classes)
}

// Lines above the table body. Main padding, title, blank, toolbar, blank.
const toolbarLines = 5

// BodyTop returns the screen row of the first body row
func BodyTop(shell grid.ShellFlags) int {
	top := toolbarLines
	if !shell.NoHeader {
		top += 2
	}
	return top
}

// HandleSpan returns the screen columns [from, to) of the drag handle
func HandleSpan() (int, int) {
	from := 2 + cursorWidth // main padding
	return from, from + handleWidth
}

// RowRects returns the on-screen extent of the body row slots, one per id
func RowRects(shell grid.ShellFlags, ids []grid.RowID) []grid.RowRect {
	top := BodyTop(shell)
	rects := make([]grid.RowRect, len(ids))
	for i, id := range ids {
		rects[i] = grid.RowRect{ID: id, Top: top + i, Height: 1}
	}
	return rects
}

// Render renders the complete view
func (r *Renderer) Render(vs ViewState) string {
	var content strings.Builder

	// Title line with page tabs
	tabs := make([]string, len(vs.Tabs))
	for i, t := range vs.Tabs {
		if i == vs.ActiveTab {
			tabs[i] = r.styles.ActiveTab.Render(t)
		} else {
			tabs[i] = r.styles.Tab.Render(t)
		}
	}
	title := r.styles.Title.Render("folio") + "  " + strings.Join(tabs, "")
	if vs.Mode != "" && vs.Mode != "normal" {
		title += "  " + r.styles.DragActive.Render("-- "+strings.ToUpper(vs.Mode)+" --")
	}
	if vs.Pending > 0 {
		title += "  " + r.Class("pending").Render("saving…")
	}
	content.WriteString(title)
	content.WriteString("\n\n")

	tv := vs.Table
	content.WriteString(r.renderToolbar(tv))
	content.WriteString("\n\n")

	widths := columnWidths(tv)
	if !tv.Shell.NoHeader {
		header := r.renderHeader(tv, widths, vs.Column)
		content.WriteString(header)
		content.WriteString("\n")
		content.WriteString(r.styles.Rule.Render(strings.Repeat("─", lipgloss.Width(header))))
		content.WriteString("\n")
	}
	content.WriteString(strings.Join(r.renderBody(tv, widths, vs.Cursor), "\n"))
	content.WriteString("\n")

	if footer := r.renderFooter(tv); footer != "" {
		content.WriteString("\n")
		content.WriteString(footer)
		content.WriteString("\n")
	}

	if vs.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.statusStyle(vs.StatusLevel).Render(vs.StatusMessage))
		content.WriteString("\n")
	}

	// Push the help line to the bottom
	if vs.ShortHelp != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := vs.Height - 2
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(vs.ShortHelp))
	}

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) statusStyle(level state.StatusLevel) lipgloss.Style {
	switch level {
	case state.StatusError:
		return r.styles.StatusError
	case state.StatusSuccess:
		return r.styles.StatusSuccess
	default:
		return r.styles.StatusInfo
	}
}
