package state

import "time"

// StatusLevel picks the status line style
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusError
)

// AppState contains the UI state that is not owned by a grid
type AppState struct {
	ActivePage int
	Cursors    map[int]int // page index -> cursor row
	Columns    map[int]int // page index -> focused visible column

	// UI state
	Width         int
	Height        int
	ShowHelp      bool
	StatusMessage string
	StatusLevel   StatusLevel
	StatusAt      time.Time
	LastExport    string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Cursors: make(map[int]int),
		Columns: make(map[int]int),
	}
}

// Cursor returns the cursor row on the active page
func (s *AppState) Cursor() int {
	return s.Cursors[s.ActivePage]
}

// SetCursor moves the cursor on the active page, clamped to [0, rows)
func (s *AppState) SetCursor(row, rows int) {
	s.Cursors[s.ActivePage] = clamp(row, rows)
}

// Column returns the focused column on the active page
func (s *AppState) Column() int {
	return s.Columns[s.ActivePage]
}

// SetColumn focuses a column on the active page, clamped to [0, cols)
func (s *AppState) SetColumn(col, cols int) {
	s.Columns[s.ActivePage] = clamp(col, cols)
}

// SetStatus replaces the status line
func (s *AppState) SetStatus(level StatusLevel, msg string, now time.Time) {
	s.StatusMessage = msg
	s.StatusLevel = level
	s.StatusAt = now
}

// ClearStatusBefore drops a status message set before t
func (s *AppState) ClearStatusBefore(t time.Time) {
	if s.StatusMessage != "" && s.StatusAt.Before(t) {
		s.StatusMessage = ""
	}
}

func clamp(v, n int) int {
	if n <= 0 || v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
