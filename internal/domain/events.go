package domain

import "folio/internal/grid"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventMutationRequested EventType = "MutationRequested"
	EventMutationSettled   EventType = "MutationSettled"
	EventRowsReordered     EventType = "RowsReordered"
	EventRecordsChanged    EventType = "RecordsChanged"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventConfigChanged     EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// MutationRequestedEvent carries one background mutation to the action endpoint
type MutationRequestedEvent struct {
	Kind       Kind
	Submission grid.Submission
}

func (e MutationRequestedEvent) Type() EventType { return EventMutationRequested }

// MutationSettledEvent is emitted once the action endpoint has answered
type MutationSettledEvent struct {
	Kind    Kind
	Key     grid.MutationKey
	ID      string // submission id being settled
	Success bool
	Err     error
}

func (e MutationSettledEvent) Type() EventType { return EventMutationSettled }

// RowsReorderedEvent asks for a new row order to be persisted
type RowsReorderedEvent struct {
	Kind Kind
	IDs  []string
}

func (e RowsReorderedEvent) Type() EventType { return EventRowsReordered }

// RecordsChangedEvent is emitted when stored records of a kind changed
type RecordsChangedEvent struct {
	Kind Kind
}

func (e RecordsChangedEvent) Type() EventType { return EventRecordsChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when UI preferences need to be saved
type ConfigChangedEvent struct {
	HiddenColumns map[Kind][]string // kind -> hidden column ids
	PageSize      int
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
