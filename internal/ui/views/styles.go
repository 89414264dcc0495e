package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Dim           lipgloss.Style
	Header        lipgloss.Style
	SortIndicator lipgloss.Style
	FocusedHeader lipgloss.Style
	Rule          lipgloss.Style
	Handle        lipgloss.Style
	DragActive    lipgloss.Style
	DragOver      lipgloss.Style
	Filter        lipgloss.Style
	FilterFocused lipgloss.Style
	Action        lipgloss.Style
	Footer        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style

	// Classes maps style class names from the grid styling hooks to
	// terminal styles. Unknown classes render unstyled.
	Classes map[string]lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Tab:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		ActiveTab:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Underline(true).Padding(0, 1),
		Dim:           lipgloss.NewStyle().Faint(true),
		Header:        lipgloss.NewStyle().Bold(true),
		SortIndicator: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		FocusedHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Rule:          lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Handle:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DragActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		DragOver:      lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Filter:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Border(lipgloss.NormalBorder(), false, false, false, true).PaddingLeft(1),
		FilterFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("214")).PaddingLeft(1),
		Action:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Footer:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Classes: map[string]lipgloss.Style{
			"muted":     lipgloss.NewStyle().Faint(true),
			"pending":   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true), // yellow
			"published": lipgloss.NewStyle().Foreground(lipgloss.Color("78")),                // green
			"selected":  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),                // cyan
			"numeric":   lipgloss.NewStyle().Align(lipgloss.Right),
		},
	}
}

// Class returns the combined style for a space separated class list
func (s *Styles) Class(classes string) lipgloss.Style {
	out := lipgloss.NewStyle()
	for _, c := range strings.Fields(classes) {
		if st, ok := s.Classes[c]; ok {
			out = out.Inherit(st)
		}
	}
	return out
}
