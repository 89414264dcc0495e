package grid

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultMutationTimeout is how long a marker may stay pending before Expire
// drops it.
const DefaultMutationTimeout = 10 * time.Second

// MutationKey identifies one mutable field of one row.
type MutationKey struct {
	RowID RowID
	Field string
}

// Submission is the payload of a background mutation.
type Submission struct {
	// ID is a request token, unique per dispatch.
	ID     string
	Intent string
	RowID  RowID
	Field  string
	Value  any
	Method string
}

// Key returns the row/field pair the submission targets.
func (s Submission) Key() MutationKey {
	return MutationKey{RowID: s.RowID, Field: s.Field}
}

// Submitter sends a submission. It must not wait for the outcome; the result
// comes back later through Tracker.Settle.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, sub Submission) error

// Submit implements Submitter.
func (f SubmitterFunc) Submit(ctx context.Context, sub Submission) error { return f(ctx, sub) }

type pendingMutation struct {
	id     string
	value  any
	issued time.Time
}

// Tracker holds the in-flight marker for each row/field. A key with no
// marker is settled and displays the server value.
type Tracker struct {
	mu      sync.Mutex
	pending map[MutationKey]pendingMutation
	timeout time.Duration
	now     func() time.Time
}

// NewTracker creates a tracker. A timeout of 0 keeps markers until settled.
func NewTracker(timeout time.Duration) *Tracker {
	return &Tracker{
		pending: make(map[MutationKey]pendingMutation),
		timeout: timeout,
		now:     time.Now,
	}
}

// Dispatch marks the key pending with the submitted value and hands the
// submission to s. A later dispatch for the same key supersedes this one.
// When s fails synchronously the marker is dropped again.
func (t *Tracker) Dispatch(ctx context.Context, s Submitter, sub Submission) (Submission, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.Method == "" {
		sub.Method = "POST"
	}

	t.mu.Lock()
	t.pending[sub.Key()] = pendingMutation{id: sub.ID, value: sub.Value, issued: t.now()}
	t.mu.Unlock()

	if err := s.Submit(ctx, sub); err != nil {
		t.Settle(sub.Key(), sub.ID)
		return sub, err
	}
	return sub, nil
}

// Settle clears the marker for key if id is the latest dispatch for it.
// Responses to superseded requests leave the marker alone.
func (t *Tracker) Settle(key MutationKey, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.pending[key]
	if !ok || p.id != id {
		return false
	}
	delete(t.pending, key)
	return true
}

// Pending reports whether key has a mutation in flight.
func (t *Tracker) Pending(key MutationKey) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.pending[key]
	return ok
}

// PendingCount returns the number of keys in flight.
func (t *Tracker) PendingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// Display returns the intended value while key is pending, else settled.
func (t *Tracker) Display(key MutationKey, settled any) any {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.pending[key]; ok {
		return p.value
	}
	return settled
}

// DisplayBool is Display for boolean fields.
func (t *Tracker) DisplayBool(key MutationKey, settled bool) bool {
	if b, ok := t.Display(key, settled).(bool); ok {
		return b
	}
	return settled
}

// Expire drops markers older than the timeout and returns their keys.
func (t *Tracker) Expire(now time.Time) []MutationKey {
	if t.timeout <= 0 {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	var expired []MutationKey
	for k, p := range t.pending {
		if now.Sub(p.issued) >= t.timeout {
			expired = append(expired, k)
			delete(t.pending, k)
		}
	}
	return expired
}
