package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer to expire stale optimistic values
type tickMsg time.Time

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}

// QuitMsg asks the model to quit, optionally saving preferences first
func QuitMsg(saveConfig bool) tea.Msg {
	return quitMsg{saveConfig: saveConfig}
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
