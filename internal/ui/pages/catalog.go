package pages

import (
	"fmt"
	"strings"

	"folio/internal/actions"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/grid"
	"folio/internal/store"
)

var exportAction = grid.Action{Key: "e", Label: "Export HTML"}

// New builds the dashboard pages in display order
func New(st store.RecordStore, bus eventbus.EventBus, opts func(domain.Kind) Options) []Page {
	return []Page{
		NewAboutPage(st, bus, opts(domain.KindAbout)),
		NewSkillsPage(st, bus, opts(domain.KindSkill)),
		NewProjectsPage(st, bus, opts(domain.KindProject)),
		NewContactsPage(st, bus, opts(domain.KindContact)),
	}
}

func newPage[T grid.Identifier](kind domain.Kind, bus eventbus.EventBus, opts Options, published func(T) bool) *gridPage[T] {
	return &gridPage[T]{
		kind:      kind,
		submitter: actions.NewSubmitter(bus, kind),
		published: published,
		handles:   opts.ShowHandles,
	}
}

func (p *gridPage[T]) build(columns grid.Columns[T], data []T, opts Options, extra ...grid.Option[T]) {
	base := []grid.Option[T]{
		grid.WithInitialVisibility[T](opts.visibility()),
		grid.WithInitialPageSize[T](opts.PageSize),
		grid.WithMutationTimeout[T](opts.MutationTimeout),
		grid.WithStyling(p.styling()),
		grid.WithActions[T](exportAction),
	}
	p.table = grid.New(columns, data, append(base, extra...)...)
}

func (p *gridPage[T]) styling() grid.Styling[T] {
	return grid.Styling[T]{
		Table:  "grid",
		Header: "grid-header",
		Body:   "grid-body",
		Row: grid.RowClassFunc[T](func(r grid.Row[T]) string {
			var classes []string
			if !p.displayPublished(r) {
				classes = append(classes, "muted")
			}
			if p.deleting(r) {
				classes = append(classes, "pending")
			}
			return strings.Join(classes, " ")
		}),
		Cell: grid.CellClassFunc[T](func(r grid.Row[T], columnID string) string {
			switch columnID {
			case "order", "level":
				return "numeric"
			case domain.FieldPublished:
				if p.table.Tracker().Pending(p.publishedKey(r.ID)) {
					return "pending"
				}
				if p.displayPublished(r) {
					return "published"
				}
			}
			return ""
		}),
	}
}

// publishedColumn renders the toggle cell from the optimistic value
func (p *gridPage[T]) publishedColumn() grid.Column[T] {
	return grid.Column[T]{
		ID:       domain.FieldPublished,
		Accessor: func(row T) any { return p.published(row) },
		Header:   grid.Text("Published"),
		Cell: grid.CellFunc[T](func(ctx grid.CellContext[T]) string {
			text := "○ draft"
			if p.displayPublished(ctx.Row) {
				text = "● live"
			}
			if p.table.Tracker().Pending(p.publishedKey(ctx.Row.ID)) {
				text += "…"
			}
			return text
		}),
		EnableSorting: true,
		FixedSize:     10,
	}
}

// NewAboutPage lists the About-Me sections. Rows can be reordered on screen;
// the order is only saved on request.
func NewAboutPage(st store.RecordStore, bus eventbus.EventBus, opts Options) Page {
	p := newPage(domain.KindAbout, bus, opts, func(a domain.AboutSection) bool { return a.Published })
	p.load = st.About
	columns := grid.Columns[domain.AboutSection]{
		{ID: "title", Accessor: func(a domain.AboutSection) any { return a.Title }, Header: grid.Text("Title"), EnableSorting: true},
		{ID: "category", Accessor: func(a domain.AboutSection) any { return a.Category }, Header: grid.Text("Category"), EnableSorting: true, EnableHiding: true},
		{ID: "body", Accessor: func(a domain.AboutSection) any { return a.Body }, Header: grid.Text("Body"), EnableHiding: true},
		p.publishedColumn(),
		{ID: "order", Accessor: func(a domain.AboutSection) any { return a.Order }, Header: grid.Text("#"), EnableSorting: true, EnableHiding: true, FixedSize: 3},
	}
	p.build(columns, p.load(), opts,
		grid.WithReorder(grid.WidgetOwned[domain.AboutSection]()),
		grid.WithFilterFields[domain.AboutSection](
			grid.FilterField{AccessorKey: "title", Placeholder: "Filter titles..."},
			grid.FilterField{AccessorKey: "category", Placeholder: "Category..."},
		),
		grid.WithActions[domain.AboutSection](exportAction, grid.Action{Key: "o", Label: "Save order"}),
		// A handful of sections always fits on one page
		grid.WithShell[domain.AboutSection](grid.ShellFlags{NoPagination: true}),
	)
	p.saveOrder = func() {
		data := p.table.Data()
		ids := make([]string, len(data))
		for i, a := range data {
			ids[i] = a.ID
		}
		bus.Publish(eventbus.RowsReorderedEvent{Kind: domain.KindAbout, IDs: ids})
	}
	return p
}

// NewSkillsPage lists skills. A drop hands the new order to the store right
// away.
func NewSkillsPage(st store.RecordStore, bus eventbus.EventBus, opts Options) Page {
	p := newPage(domain.KindSkill, bus, opts, func(s domain.Skill) bool { return s.Published })
	p.load = st.Skills
	columns := grid.Columns[domain.Skill]{
		{ID: "name", Accessor: func(s domain.Skill) any { return s.Name }, Header: grid.Text("Name"), EnableSorting: true},
		{ID: "category", Accessor: func(s domain.Skill) any { return s.Category }, Header: grid.Text("Category"), EnableSorting: true, EnableHiding: true},
		{
			ID:       "level",
			Accessor: func(s domain.Skill) any { return s.Level },
			Header:   grid.Text("Level"),
			Cell: grid.CellFunc[domain.Skill](func(ctx grid.CellContext[domain.Skill]) string {
				n := max(0, min(5, ctx.Row.Original.Level))
				return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
			}),
			EnableSorting: true,
			EnableHiding:  true,
			FixedSize:     5,
		},
		p.publishedColumn(),
		{ID: "order", Accessor: func(s domain.Skill) any { return s.Order }, Header: grid.Text("#"), EnableSorting: true, EnableHiding: true, FixedSize: 3},
	}
	persist := func(next []domain.Skill) {
		ids := make([]string, len(next))
		for i, s := range next {
			ids[i] = s.ID
		}
		p.table.SetData(next)
		bus.Publish(eventbus.RowsReorderedEvent{Kind: domain.KindSkill, IDs: ids})
	}
	p.build(columns, p.load(), opts,
		grid.WithReorder(grid.CallerOwned(persist)),
		grid.WithFilterFields[domain.Skill](
			grid.FilterField{AccessorKey: "name", Placeholder: "Filter skills..."},
			grid.FilterField{AccessorKey: "category", Placeholder: "Category..."},
		),
	)
	return p
}

// NewProjectsPage lists projects, most recently updated first
func NewProjectsPage(st store.RecordStore, bus eventbus.EventBus, opts Options) Page {
	p := newPage(domain.KindProject, bus, opts, func(pr domain.Project) bool { return pr.Published })
	p.load = st.Projects
	p.link = func(r grid.Row[domain.Project], columnID string) string {
		if columnID == "title" {
			return "/projects/" + r.Original.Slug
		}
		return ""
	}
	columns := grid.Columns[domain.Project]{
		{ID: "title", Accessor: func(pr domain.Project) any { return pr.Title }, Header: grid.Text("Title"), EnableSorting: true},
		{ID: "slug", Accessor: func(pr domain.Project) any { return pr.Slug }, Header: grid.Text("Slug"), EnableHiding: true},
		{ID: "tech", Accessor: func(pr domain.Project) any { return pr.Tech }, Header: grid.Text("Tech"), EnableSorting: true, EnableHiding: true},
		p.publishedColumn(),
		{
			ID:       "updated",
			Accessor: func(pr domain.Project) any { return pr.UpdatedAt },
			Header:   grid.Text("Updated"),
			Cell: grid.CellFunc[domain.Project](func(ctx grid.CellContext[domain.Project]) string {
				return ctx.Row.Original.UpdatedAt.Format("2006-01-02")
			}),
			EnableSorting: true,
			EnableHiding:  true,
			FixedSize:     10,
		},
	}
	p.build(columns, p.load(), opts,
		grid.WithFilterFields[domain.Project](
			grid.FilterField{AccessorKey: "title", Placeholder: "Filter projects..."},
			grid.FilterField{AccessorKey: "tech", Placeholder: "Tech..."},
		),
	)
	return p
}

// NewContactsPage lists contacts one store page at a time
func NewContactsPage(st store.RecordStore, bus eventbus.EventBus, opts Options) Page {
	p := newPage(domain.KindContact, bus, opts, func(c domain.Contact) bool { return c.Published })
	p.link = func(r grid.Row[domain.Contact], columnID string) string {
		if columnID != "value" {
			return ""
		}
		return contactLink(r.Original)
	}
	columns := grid.Columns[domain.Contact]{
		{ID: "label", Accessor: func(c domain.Contact) any { return c.Label }, Header: grid.Text("Label"), EnableSorting: true},
		{ID: "kind", Accessor: func(c domain.Contact) any { return c.Kind }, Header: grid.Text("Kind"), EnableSorting: true, EnableHiding: true},
		{ID: "value", Accessor: func(c domain.Contact) any { return c.Value }, Header: grid.Text("Value"), EnableHiding: true},
		p.publishedColumn(),
	}

	size := opts.PageSize
	if size <= 0 {
		size = grid.DefaultPageSize
	}
	fetch := func(pg grid.Pagination) ([]domain.Contact, int) {
		rows, total := st.ContactsPage(pg.PageIndex, pg.PageSize)
		return rows, grid.PageCount(total, pg.PageSize)
	}
	p.refetch = func(pg grid.Pagination) {
		rows, pages := fetch(pg)
		if pages > 0 && pg.PageIndex > pages-1 {
			// The store shrank under us; step back to its last page
			p.table.Controller().SetPagination(func(old grid.Pagination) grid.Pagination {
				old.PageIndex = pages - 1
				return old
			})
			return
		}
		p.table.SetData(rows)
		p.table.SetPageCount(pages)
	}

	first, pages := fetch(grid.Pagination{PageIndex: 0, PageSize: size})
	opts.PageSize = size
	p.build(columns, first, opts,
		grid.WithPagination[domain.Contact](grid.ExternalPagination{PageCount: pages, OnChange: p.refetch}),
		grid.WithFilterFields[domain.Contact](
			grid.FilterField{AccessorKey: "label", Placeholder: "Filter this page..."},
		),
	)
	return p
}

func contactLink(c domain.Contact) string {
	switch c.Kind {
	case "email":
		return "mailto:" + c.Value
	case "phone":
		return ""
	}
	if strings.HasPrefix(c.Value, "@") || !strings.Contains(c.Value, ".") {
		return ""
	}
	return fmt.Sprintf("https://%s", c.Value)
}
