package pages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/grid"
	"folio/internal/store"
)

func seeded(t *testing.T) (*store.MemoryStore, eventbus.EventBus) {
	t.Helper()
	bus := eventbus.New()
	t.Cleanup(bus.Close)
	st := store.NewMemoryStore()
	st.Seed()
	return st, bus
}

func capture[E eventbus.DomainEvent](t *testing.T, bus eventbus.EventBus, typ eventbus.EventType) <-chan E {
	t.Helper()
	ch := make(chan E, 8)
	bus.Subscribe(typ, func(e eventbus.DomainEvent) {
		if ev, ok := e.(E); ok {
			ch <- ev
		}
	})
	return ch
}

func receive[E any](t *testing.T, ch <-chan E) E {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}
	var zero E
	return zero
}

func TestTogglePublishedShowsPendingValue(t *testing.T) {
	st, bus := seeded(t)
	requests := capture[eventbus.MutationRequestedEvent](t, bus, eventbus.EventMutationRequested)
	p := NewAboutPage(st, bus, Options{})

	// about-3 starts as a draft
	require.Equal(t, "muted", p.View(0).Rows[2].Class)
	require.NoError(t, p.TogglePublished(context.Background(), 2))

	ev := receive(t, requests)
	require.Equal(t, domain.KindAbout, ev.Kind)
	require.Equal(t, grid.RowID("about-3"), ev.Submission.RowID)
	require.Equal(t, true, ev.Submission.Value)
	require.NotEmpty(t, ev.Submission.ID)

	row := p.View(0).Rows[2]
	require.Equal(t, "● live…", row.Cells[3].Text)
	require.Equal(t, "pending", row.Cells[3].Class)
	require.Empty(t, row.Class)
	require.Equal(t, 1, p.PendingCount())

	// The store was never written, so settling falls back to the draft
	require.True(t, p.Settle(ev.Submission.Key(), ev.Submission.ID))
	row = p.View(0).Rows[2]
	require.Equal(t, "○ draft", row.Cells[3].Text)
	require.Equal(t, "muted", row.Class)
	require.Zero(t, p.PendingCount())
}

func TestDeleteRowStaysPendingUntilReload(t *testing.T) {
	st, bus := seeded(t)
	requests := capture[eventbus.MutationRequestedEvent](t, bus, eventbus.EventMutationRequested)
	p := NewSkillsPage(st, bus, Options{})

	require.NoError(t, p.DeleteRow(context.Background(), 1))
	ev := receive(t, requests)
	require.Equal(t, domain.IntentDelete, ev.Submission.Intent)
	require.Equal(t, "DELETE", ev.Submission.Method)
	require.Equal(t, grid.RowID("skill-02"), ev.Submission.RowID)

	require.Equal(t, "pending", p.View(0).Rows[1].Class)
	require.Equal(t, 1, p.PendingCount())

	// A second press while in flight sends nothing
	require.NoError(t, p.DeleteRow(context.Background(), 1))
	select {
	case extra := <-requests:
		t.Fatalf("duplicate delete for %s", extra.Submission.RowID)
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, st.Delete(domain.KindSkill, "skill-02"))
	p.Reload()
	require.True(t, p.Settle(ev.Submission.Key(), ev.Submission.ID))
	require.Equal(t, 24, p.RowCount())
	require.Equal(t, grid.RowID("skill-03"), p.RowIDAt(1))
	require.Zero(t, p.PendingCount())
}

func TestFailedDeleteKeepsRow(t *testing.T) {
	st, bus := seeded(t)
	requests := capture[eventbus.MutationRequestedEvent](t, bus, eventbus.EventMutationRequested)
	p := NewAboutPage(st, bus, Options{})

	// about-3 is a draft, so its row is muted as well
	require.NoError(t, p.DeleteRow(context.Background(), 2))
	ev := receive(t, requests)
	require.Equal(t, "muted pending", p.View(0).Rows[2].Class)

	require.True(t, p.Settle(ev.Submission.Key(), ev.Submission.ID))
	require.Equal(t, 5, p.RowCount())
	require.Equal(t, "muted", p.View(0).Rows[2].Class)
}

func TestSupersededResponseKeepsLatestValue(t *testing.T) {
	st, bus := seeded(t)
	requests := capture[eventbus.MutationRequestedEvent](t, bus, eventbus.EventMutationRequested)
	p := NewAboutPage(st, bus, Options{})

	require.NoError(t, p.TogglePublished(context.Background(), 0))
	first := receive(t, requests)
	require.NoError(t, p.TogglePublished(context.Background(), 0))
	second := receive(t, requests)

	require.Equal(t, false, first.Submission.Value)
	require.Equal(t, true, second.Submission.Value)

	require.False(t, p.Settle(first.Submission.Key(), first.Submission.ID))
	require.Equal(t, "● live…", p.View(0).Rows[0].Cells[3].Text)
	require.True(t, p.Settle(second.Submission.Key(), second.Submission.ID))
	require.Equal(t, "● live", p.View(0).Rows[0].Cells[3].Text)
}

func TestExpireDropsStaleMarkers(t *testing.T) {
	st, bus := seeded(t)
	p := NewSkillsPage(st, bus, Options{MutationTimeout: time.Second})

	require.NoError(t, p.TogglePublished(context.Background(), 0))
	require.Empty(t, p.Expire(time.Now()))
	expired := p.Expire(time.Now().Add(2 * time.Second))
	require.Equal(t, []grid.MutationKey{{RowID: "skill-01", Field: domain.FieldPublished}}, expired)
	require.Zero(t, p.PendingCount())
}

func TestSkillsDropPersistsOrder(t *testing.T) {
	st, bus := seeded(t)
	reordered := capture[eventbus.RowsReorderedEvent](t, bus, eventbus.EventRowsReordered)
	p := NewSkillsPage(st, bus, Options{})

	require.True(t, p.Reorderable())
	require.True(t, p.BeginDrag(0))
	require.True(t, p.Dragging())
	p.DragBy(2)

	require.Equal(t, 2, p.ActiveIndex())
	require.Equal(t, grid.RowID("skill-01"), p.RowIDAt(2))
	require.Equal(t, grid.RowID("skill-01"), p.RowOrder()[0], "row order ignores the preview")

	require.True(t, p.Drop())
	require.False(t, p.Dragging())
	require.Equal(t, -1, p.ActiveIndex())
	require.Equal(t, grid.RowID("skill-01"), p.RowIDAt(2))

	ev := receive(t, reordered)
	require.Equal(t, domain.KindSkill, ev.Kind)
	require.Equal(t, []string{"skill-02", "skill-03", "skill-01"}, ev.IDs[:3])
	require.Len(t, ev.IDs, 25)
	require.False(t, p.SaveOrder())
}

func TestCancelDragRestoresRows(t *testing.T) {
	st, bus := seeded(t)
	p := NewSkillsPage(st, bus, Options{})

	require.True(t, p.BeginDrag(1))
	p.DragBy(-1)
	require.Equal(t, grid.RowID("skill-02"), p.RowIDAt(0))
	p.CancelDrag()
	require.Equal(t, grid.RowID("skill-01"), p.RowIDAt(0))
	require.False(t, p.Drop())
}

func TestAboutOrderIsLocalUntilSaved(t *testing.T) {
	st, bus := seeded(t)
	reordered := capture[eventbus.RowsReorderedEvent](t, bus, eventbus.EventRowsReordered)
	p := NewAboutPage(st, bus, Options{})

	require.True(t, p.BeginDrag(4))
	p.DragBy(-4)
	require.True(t, p.Drop())

	require.Equal(t, grid.RowID("about-5"), p.RowIDAt(0))
	require.Equal(t, "about-1", st.About()[0].ID)

	require.True(t, p.SaveOrder())
	ev := receive(t, reordered)
	require.Equal(t, []string{"about-5", "about-1", "about-2", "about-3", "about-4"}, ev.IDs)
}

func TestProjectsAreNotReorderable(t *testing.T) {
	st, bus := seeded(t)
	p := NewProjectsPage(st, bus, Options{})

	require.False(t, p.Reorderable())
	require.False(t, p.BeginDrag(0))
	require.False(t, p.View(0).Handles)
}

func TestContactsPagingRefetches(t *testing.T) {
	st, bus := seeded(t)
	p := NewContactsPage(st, bus, Options{})
	all := st.Contacts()

	v := p.View(0)
	require.Equal(t, 10, p.RowCount())
	require.Equal(t, 3, v.PageCount)
	require.False(t, v.CanPrevious)
	require.True(t, v.CanNext)

	p.Paginate("next")
	require.Equal(t, grid.RowID(all[10].ID), p.RowIDAt(0))
	require.Equal(t, 1, p.View(0).PageIndex)

	p.Paginate("last")
	require.Equal(t, 3, p.RowCount())
	require.False(t, p.View(0).CanNext)

	p.Paginate("first")
	require.Equal(t, grid.RowID(all[0].ID), p.RowIDAt(0))
}

func TestContactsReloadStepsBackWhenStoreShrinks(t *testing.T) {
	st, bus := seeded(t)
	p := NewContactsPage(st, bus, Options{})
	p.Paginate("last")
	require.Equal(t, 2, p.View(0).PageIndex)

	for _, c := range st.Contacts()[20:] {
		require.NoError(t, st.Delete(domain.KindContact, c.ID))
	}
	p.Reload()

	v := p.View(0)
	require.Equal(t, 1, v.PageIndex)
	require.Equal(t, 2, v.PageCount)
	require.Equal(t, 10, p.RowCount())
}

func TestContactsPageSizeRefetches(t *testing.T) {
	st, bus := seeded(t)
	p := NewContactsPage(st, bus, Options{})

	p.StepPageSize(1)
	require.Equal(t, 20, p.PageSize())
	require.Equal(t, 20, p.RowCount())
	require.Equal(t, 2, p.View(0).PageCount)
}

func TestHiddenColumnsFromOptions(t *testing.T) {
	st, bus := seeded(t)
	p := NewAboutPage(st, bus, Options{Hidden: []string{"body"}})

	require.Equal(t, 4, p.VisibleColumnCount())
	require.Equal(t, []string{"body"}, p.HiddenColumns())
	v := p.View(0)
	require.Equal(t, 1, v.Hidden)
	for _, h := range v.Headers {
		require.NotEqual(t, "body", h.ID)
	}

	p.ShowAllColumns()
	require.Empty(t, p.HiddenColumns())
	require.Equal(t, 5, p.VisibleColumnCount())
}

func TestToggleVisibilityAndSort(t *testing.T) {
	st, bus := seeded(t)
	p := NewProjectsPage(st, bus, Options{})

	p.ToggleVisibility(1)
	require.Equal(t, []string{"slug"}, p.HiddenColumns())

	// Title sorts ascending on the first toggle
	p.ToggleSort(0)
	v := p.View(0)
	require.Equal(t, grid.SortAsc, v.Headers[0].Sort)
	require.Equal(t, "Budget tracker", v.Rows[0].Cells[0].Text)
}

func TestStepPageSizeStaysWithinOptions(t *testing.T) {
	st, bus := seeded(t)
	p := NewSkillsPage(st, bus, Options{})

	p.StepPageSize(1)
	require.Equal(t, 20, p.PageSize())
	require.Equal(t, 20, p.RowCount())
	p.StepPageSize(-5)
	require.Equal(t, 10, p.PageSize())
	p.StepPageSize(100)
	require.Equal(t, 100, p.PageSize())
	require.Equal(t, 25, p.RowCount())
}

func TestFilterNarrowsRows(t *testing.T) {
	st, bus := seeded(t)
	p := NewAboutPage(st, bus, Options{})

	require.Len(t, p.FilterFields(), 2)
	p.SetFilter("category", "Experience")
	require.Equal(t, "Experience", p.FilterValue("category"))
	require.Equal(t, 2, p.RowCount())
	require.Equal(t, "0 of 2 row(s) selected.", p.View(0).Footer)

	p.SetFilter("category", "nothing matches")
	v := p.View(0)
	require.Empty(t, v.Rows)
	require.Equal(t, 0, p.RowCount())
}

func TestSelection(t *testing.T) {
	st, bus := seeded(t)
	p := NewSkillsPage(st, bus, Options{})

	require.False(t, p.HasSelection())
	p.ToggleSelected(1)
	require.True(t, p.HasSelection())
	require.True(t, p.View(0).Rows[1].Selected)

	p.ToggleSelectAll()
	require.Equal(t, "25 of 25 row(s) selected.", p.View(0).Footer)
	p.ToggleSelectAll()
	require.False(t, p.HasSelection())
}

func TestSkillsViewClasses(t *testing.T) {
	st, bus := seeded(t)
	p := NewSkillsPage(st, bus, Options{ShowHandles: true})
	v := p.View(0)

	require.True(t, v.Handles)
	first := v.Rows[0]
	require.Equal(t, "★★★★★", first.Cells[2].Text)
	require.Equal(t, "numeric", first.Cells[2].Class)
	require.Equal(t, "● live", first.Cells[3].Text)
	require.Equal(t, "published", first.Cells[3].Class)

	// Every fourth seeded skill is a draft
	draft := v.Rows[3]
	require.Equal(t, "muted", draft.Class)
	require.Equal(t, "○ draft", draft.Cells[3].Text)
	require.Empty(t, draft.Cells[3].Class)
}

func TestSnapshotCarriesLinks(t *testing.T) {
	st, bus := seeded(t)
	p := NewProjectsPage(st, bus, Options{})

	snap := p.Snapshot()
	require.Equal(t, "Projects", snap.Title)
	// Most recently updated first
	require.Equal(t, "Photo archive", snap.Rows[0].Cells[0].Text)
	require.Len(t, snap.Rows, 10)
	require.Equal(t, "/projects/photo-archive", snap.Rows[0].Cells[0].Link.String())
	require.Equal(t, 2, snap.PageCount)
}

func TestContactLink(t *testing.T) {
	tests := []struct {
		contact domain.Contact
		want    string
	}{
		{domain.Contact{Kind: "email", Value: "hello@example.dev"}, "mailto:hello@example.dev"},
		{domain.Contact{Kind: "phone", Value: "+1 555 0100"}, ""},
		{domain.Contact{Kind: "social", Value: "github.com/example"}, "https://github.com/example"},
		{domain.Contact{Kind: "social", Value: "@example@hachyderm.io"}, ""},
		{domain.Contact{Kind: "social", Value: "example#0001"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.contact.Value, func(t *testing.T) {
			require.Equal(t, tt.want, contactLink(tt.contact))
		})
	}
}

func TestAboutHidesPagination(t *testing.T) {
	st, bus := seeded(t)
	about := NewAboutPage(st, bus, Options{})
	require.True(t, about.View(0).Shell.NoPagination)
	require.Equal(t, 1, about.View(0).PageCount)

	contacts := NewContactsPage(st, bus, Options{})
	require.False(t, contacts.View(0).Shell.NoPagination)
}

func TestNewBuildsPagesInOrder(t *testing.T) {
	st, bus := seeded(t)
	var asked []domain.Kind
	all := New(st, bus, func(k domain.Kind) Options {
		asked = append(asked, k)
		return Options{}
	})

	require.Len(t, all, 4)
	want := []domain.Kind{domain.KindAbout, domain.KindSkill, domain.KindProject, domain.KindContact}
	require.Equal(t, want, asked)
	for i, p := range all {
		require.Equal(t, want[i], p.Kind())
	}
}
