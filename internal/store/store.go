package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"folio/internal/domain"
	"folio/internal/grid"
)

var (
	// ErrNotFound is returned when no record has the requested id
	ErrNotFound = errors.New("record not found")
	// ErrUnknownField is returned for fields that cannot be updated in place
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidValue is returned when a value has the wrong type for its field
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnknownKind is returned for collections the store does not hold
	ErrUnknownKind = errors.New("unknown kind")
)

// RecordStore provides access to the portfolio collections
type RecordStore interface {
	About() []domain.AboutSection
	Skills() []domain.Skill
	Projects() []domain.Project
	Contacts() []domain.Contact
	ContactsPage(index, size int) ([]domain.Contact, int)
	SetField(kind domain.Kind, id, field string, value any) error
	Delete(kind domain.Kind, id string) error
	Reorder(kind domain.Kind, ids []string) error
}

// MemoryStore is an in-memory implementation of RecordStore
type MemoryStore struct {
	mu       sync.RWMutex
	about    []domain.AboutSection
	skills   []domain.Skill
	projects []domain.Project
	contacts []domain.Contact
	now      func() time.Time
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// About returns the About-Me sections in their stored order
func (s *MemoryStore) About() []domain.AboutSection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.about)
}

// Skills returns the skills in their stored order
func (s *MemoryStore) Skills() []domain.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.skills)
}

// Projects returns the projects, most recently updated first
func (s *MemoryStore) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.projects)
	slices.SortStableFunc(out, func(a, b domain.Project) int { return b.UpdatedAt.Compare(a.UpdatedAt) })
	return out
}

// Contacts returns all contacts
func (s *MemoryStore) Contacts() []domain.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.contacts)
}

// ContactsPage returns one page of contacts and the total count
func (s *MemoryStore) ContactsPage(index, size int) ([]domain.Contact, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := len(s.contacts)
	if size <= 0 || index < 0 {
		return nil, total
	}
	start := index * size
	if start >= total {
		return []domain.Contact{}, total
	}
	end := min(start+size, total)
	return slices.Clone(s.contacts[start:end]), total
}

// SetField updates a single field of a record. Only the published flag is
// writable this way.
func (s *MemoryStore) SetField(kind domain.Kind, id, field string, value any) error {
	if field != domain.FieldPublished {
		return fmt.Errorf("set %s.%s: %w", kind, field, ErrUnknownField)
	}
	published, ok := value.(bool)
	if !ok {
		return fmt.Errorf("set %s.%s = %v: %w", kind, field, value, ErrInvalidValue)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var found bool
	switch kind {
	case domain.KindAbout:
		found = update(s.about, id, func(a *domain.AboutSection) { a.Published = published })
	case domain.KindSkill:
		found = update(s.skills, id, func(k *domain.Skill) { k.Published = published })
	case domain.KindProject:
		now := s.now()
		found = update(s.projects, id, func(p *domain.Project) {
			p.Published = published
			p.UpdatedAt = now
		})
	case domain.KindContact:
		found = update(s.contacts, id, func(c *domain.Contact) { c.Published = published })
	default:
		return fmt.Errorf("set %s: %w", kind, ErrUnknownKind)
	}
	if !found {
		return fmt.Errorf("set %s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}

// Delete removes a record
func (s *MemoryStore) Delete(kind domain.Kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	switch kind {
	case domain.KindAbout:
		n = len(s.about)
		s.about = slices.DeleteFunc(s.about, func(a domain.AboutSection) bool { return a.ID == id })
		n -= len(s.about)
	case domain.KindSkill:
		n = len(s.skills)
		s.skills = slices.DeleteFunc(s.skills, func(k domain.Skill) bool { return k.ID == id })
		n -= len(s.skills)
	case domain.KindProject:
		n = len(s.projects)
		s.projects = slices.DeleteFunc(s.projects, func(p domain.Project) bool { return p.ID == id })
		n -= len(s.projects)
	case domain.KindContact:
		n = len(s.contacts)
		s.contacts = slices.DeleteFunc(s.contacts, func(c domain.Contact) bool { return c.ID == id })
		n -= len(s.contacts)
	default:
		return fmt.Errorf("delete %s: %w", kind, ErrUnknownKind)
	}
	if n == 0 {
		return fmt.Errorf("delete %s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}

// Reorder stores a new order for an ordered collection. ids must name every
// record exactly once.
func (s *MemoryStore) Reorder(kind domain.Kind, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case domain.KindAbout:
		next, err := reorder(s.about, ids, func(a domain.AboutSection) string { return a.ID })
		if err != nil {
			return fmt.Errorf("reorder %s: %w", kind, err)
		}
		for i := range next {
			next[i].Order = i
		}
		s.about = next
	case domain.KindSkill:
		next, err := reorder(s.skills, ids, func(k domain.Skill) string { return k.ID })
		if err != nil {
			return fmt.Errorf("reorder %s: %w", kind, err)
		}
		for i := range next {
			next[i].Order = i
		}
		s.skills = next
	default:
		return fmt.Errorf("reorder %s: %w", kind, ErrUnknownKind)
	}
	return nil
}

func update[T grid.Identifier](items []T, id string, fn func(*T)) bool {
	for i := range items {
		if items[i].RowID() == grid.RowID(id) {
			fn(&items[i])
			return true
		}
	}
	return false
}

func reorder[T any](items []T, ids []string, idOf func(T) string) ([]T, error) {
	if len(ids) != len(items) {
		return nil, fmt.Errorf("got %d ids for %d records: %w", len(ids), len(items), ErrInvalidValue)
	}
	byID := make(map[string]T, len(items))
	for _, it := range items {
		byID[idOf(it)] = it
	}
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		delete(byID, id)
		out = append(out, it)
	}
	return out, nil
}
