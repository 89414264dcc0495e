// Package export writes a static HTML snapshot of the visible grid page.
package export

import (
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"

	"folio/internal/grid"
)

//go:embed templates/*
var templateFS embed.FS

// Cell is one rendered table cell.
type Cell struct {
	Class string
	Text  string
	Link  safehtml.URL
}

// Row is one rendered table row.
type Row struct {
	Class string
	Cells []Cell
}

// Snapshot is the view model of the exported page.
type Snapshot struct {
	Title       string
	TableClass  string
	HeaderClass string
	BodyClass   string
	Headers     []string
	Rows        []Row
	ColSpan     int
	NoResults   string
	Footer      string
	Page        int // 1-based
	PageCount   int
}

// LinkFunc returns a link target for a cell, or "" for plain text.
type LinkFunc[T any] func(row grid.Row[T], columnID string) string

// FromTable builds a snapshot of the table's current page. Hidden columns
// and shell regions suppressed by the table's flags are left out.
func FromTable[T any](title string, t *grid.Table[T], link LinkFunc[T]) Snapshot {
	cols := t.VisibleColumns()
	styling := t.Styling()
	shell := t.Shell()
	state := t.State()
	model := t.RowModel()

	snap := Snapshot{
		Title:       title,
		TableClass:  styling.Table,
		HeaderClass: styling.Header,
		BodyClass:   styling.Body,
		ColSpan:     max(1, len(cols)),
		NoResults:   grid.NoResults,
		Page:        state.Pagination.PageIndex + 1,
		PageCount:   max(1, model.PageCount),
	}
	if !shell.NoHeader {
		for _, c := range cols {
			snap.Headers = append(snap.Headers, c.RenderHeader(state.Sorting.Direction(c.ID)))
		}
	}
	if !shell.NoFooter {
		snap.Footer = t.Footer()
	}

	for _, r := range model.Rows {
		row := Row{Class: styling.RowClassOf(r)}
		if state.RowSelection[r.ID] {
			row.Class = joinClass(row.Class, "selected")
		}
		for _, c := range cols {
			cell := Cell{Class: styling.CellClassOf(r, c.ID), Text: c.RenderCell(r)}
			if link != nil {
				if href := link(r, c.ID); href != "" {
					cell.Link = safehtml.URLSanitized(href)
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		snap.Rows = append(snap.Rows, row)
	}
	return snap
}

func joinClass(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}

// HTMLExporter renders snapshots to HTML.
type HTMLExporter struct {
	tmpl *template.Template
}

// NewHTMLExporter parses the embedded template.
func NewHTMLExporter() (*HTMLExporter, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)
	tmpl, err := template.New("grid.html").ParseFS(trustedFS, "templates/grid.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse export template: %w", err)
	}
	return &HTMLExporter{tmpl: tmpl}, nil
}

// Render writes snap as a standalone HTML page.
func (e *HTMLExporter) Render(w io.Writer, snap Snapshot) error {
	if err := e.tmpl.Execute(w, snap); err != nil {
		return fmt.Errorf("failed to render export: %w", err)
	}
	return nil
}

// WriteFile renders snap into the file at path, replacing it.
func (e *HTMLExporter) WriteFile(path string, snap Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := e.Render(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
