package handlers

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/ui/pages"
	"folio/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
	pages []pages.Page
	now   func() time.Time
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, all []pages.Page) *EventHandler {
	return &EventHandler{
		state: appState,
		pages: all,
		now:   time.Now,
	}
}

func (h *EventHandler) page(kind domain.Kind) (int, pages.Page) {
	for i, p := range h.pages {
		if p.Kind() == kind {
			return i, p
		}
	}
	return -1, nil
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.MutationSettledEvent:
		i, p := h.page(e.Kind)
		if p == nil {
			return nil
		}
		if e.Success {
			// Pull the stored value before dropping the pending one so the
			// cell never shows the old value in between
			p.Reload()
			h.clampCursor(i, p)
		}
		if !p.Settle(e.Key, e.ID) {
			// Superseded by a newer submission for the same cell
			return nil
		}
		if !e.Success {
			h.state.SetStatus(state.StatusError, fmt.Sprintf("Update failed: %v", e.Err), h.now())
		}

	case eventbus.RecordsChangedEvent:
		i, p := h.page(e.Kind)
		if p == nil {
			return nil
		}
		p.Reload()
		h.clampCursor(i, p)

	case eventbus.ErrorEvent:
		log.Printf("Error: %s: %v", e.Message, e.Err)
		h.state.SetStatus(state.StatusError, fmt.Sprintf("Error: %s", e.Message), h.now())

	case eventbus.ConfigSavedEvent:
		h.state.SetStatus(state.StatusSuccess, "Preferences saved", h.now())
	}

	return nil
}

// Expire drops optimistic values that were never answered
func (h *EventHandler) Expire(now time.Time) {
	expired := 0
	for _, p := range h.pages {
		expired += len(p.Expire(now))
	}
	if expired > 0 {
		h.state.SetStatus(state.StatusError, fmt.Sprintf("Update timed out for %d row(s); showing saved value", expired), now)
	}
}

func (h *EventHandler) clampCursor(i int, p pages.Page) {
	cur := h.state.Cursors[i]
	if rows := p.RowCount(); cur >= rows {
		h.state.Cursors[i] = max(0, rows-1)
	}
}
