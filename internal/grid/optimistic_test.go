package grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeServer records submissions and lets tests settle them on demand.
type fakeServer struct {
	published map[RowID]bool
	subs      []Submission
	err       error
}

func (f *fakeServer) Submit(_ context.Context, sub Submission) error {
	if f.err != nil {
		return f.err
	}
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeServer) respond(tr *Tracker, sub Submission, ok bool) {
	if ok {
		f.published[sub.RowID] = sub.Value.(bool)
	}
	tr.Settle(sub.Key(), sub.ID)
}

func toggle(id RowID, value bool) Submission {
	return Submission{Intent: "toggle-publish", RowID: id, Field: "published", Value: value}
}

func TestOptimisticToggleSuccess(t *testing.T) {
	srv := &fakeServer{published: map[RowID]bool{"a": false}}
	tr := NewTracker(DefaultMutationTimeout)
	key := MutationKey{RowID: "a", Field: "published"}

	sub, err := tr.Dispatch(context.Background(), srv, toggle("a", true))
	require.NoError(t, err)
	require.NotEmpty(t, sub.ID)
	require.Equal(t, "POST", sub.Method)

	// Shown as published before the server answers
	require.True(t, tr.DisplayBool(key, srv.published["a"]))
	require.True(t, tr.Pending(key))

	srv.respond(tr, srv.subs[0], true)
	require.False(t, tr.Pending(key))
	require.Zero(t, tr.PendingCount())
	require.True(t, tr.DisplayBool(key, srv.published["a"]))
}

func TestOptimisticToggleFailureReverts(t *testing.T) {
	srv := &fakeServer{published: map[RowID]bool{"a": false}}
	tr := NewTracker(DefaultMutationTimeout)
	key := MutationKey{RowID: "a", Field: "published"}

	_, err := tr.Dispatch(context.Background(), srv, toggle("a", true))
	require.NoError(t, err)
	require.True(t, tr.DisplayBool(key, srv.published["a"]))

	srv.respond(tr, srv.subs[0], false)
	require.False(t, tr.Pending(key))
	require.False(t, tr.DisplayBool(key, srv.published["a"]))
}

func TestDispatchTransportErrorClearsMarker(t *testing.T) {
	srv := &fakeServer{published: map[RowID]bool{}, err: errors.New("offline")}
	tr := NewTracker(DefaultMutationTimeout)

	_, err := tr.Dispatch(context.Background(), srv, toggle("a", true))
	require.Error(t, err)
	require.Zero(t, tr.PendingCount())
}

func TestSupersedingDispatch(t *testing.T) {
	srv := &fakeServer{published: map[RowID]bool{"a": false}}
	tr := NewTracker(DefaultMutationTimeout)
	key := MutationKey{RowID: "a", Field: "published"}

	first, _ := tr.Dispatch(context.Background(), srv, toggle("a", true))
	second, _ := tr.Dispatch(context.Background(), srv, toggle("a", false))
	require.NotEqual(t, first.ID, second.ID)
	require.False(t, tr.DisplayBool(key, true), "latest intent wins while in flight")

	// The stale response settles first and leaves the marker in place
	require.False(t, tr.Settle(key, first.ID))
	require.True(t, tr.Pending(key))

	require.True(t, tr.Settle(key, second.ID))
	require.False(t, tr.Pending(key))
}

func TestExpireDropsStaleMarkers(t *testing.T) {
	srv := &fakeServer{published: map[RowID]bool{}}
	tr := NewTracker(5 * time.Second)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return start }

	tr.Dispatch(context.Background(), srv, toggle("a", true))
	tr.now = func() time.Time { return start.Add(3 * time.Second) }
	tr.Dispatch(context.Background(), srv, toggle("b", true))

	require.Empty(t, tr.Expire(start.Add(4*time.Second)))
	expired := tr.Expire(start.Add(6 * time.Second))
	require.Equal(t, []MutationKey{{RowID: "a", Field: "published"}}, expired)
	require.Equal(t, 1, tr.PendingCount())
	require.False(t, tr.DisplayBool(MutationKey{RowID: "a", Field: "published"}, false))
}

func TestExpireDisabled(t *testing.T) {
	tr := NewTracker(0)
	tr.Dispatch(context.Background(), &fakeServer{}, toggle("a", true))
	require.Nil(t, tr.Expire(time.Now().Add(time.Hour)))
	require.Equal(t, 1, tr.PendingCount())
}

func TestDisplayNonBoolValue(t *testing.T) {
	tr := NewTracker(0)
	key := MutationKey{RowID: "a", Field: "level"}
	require.Equal(t, 3, tr.Display(key, 3))

	tr.Dispatch(context.Background(), SubmitterFunc(func(context.Context, Submission) error { return nil }),
		Submission{RowID: "a", Field: "level", Value: 5, Method: "PATCH"})
	require.Equal(t, 5, tr.Display(key, 3))
	require.True(t, tr.DisplayBool(MutationKey{RowID: "a", Field: "level"}, true), "non-bool pending value falls back")
}
