package store

import (
	"fmt"
	"time"

	"folio/internal/domain"
)

var seedSkills = []struct {
	category string
	names    []string
}{
	{"Languages", []string{"Go", "TypeScript", "SQL", "Python", "Rust", "Bash"}},
	{"Backend", []string{"PostgreSQL", "Redis", "gRPC", "Kafka", "NATS"}},
	{"Frontend", []string{"React", "Remix", "Tailwind CSS", "HTMX"}},
	{"Infrastructure", []string{"Kubernetes", "Terraform", "Docker", "Prometheus", "Grafana", "AWS", "Nix"}},
	{"Practices", []string{"Code review", "Incident response", "Technical writing"}},
}

var seedContacts = []struct {
	label, kind, value string
}{
	{"Email", "email", "hello@example.dev"},
	{"Work email", "email", "jobs@example.dev"},
	{"GitHub", "social", "github.com/example"},
	{"GitLab", "social", "gitlab.com/example"},
	{"Mastodon", "social", "@example@hachyderm.io"},
	{"Bluesky", "social", "example.bsky.social"},
	{"LinkedIn", "social", "linkedin.com/in/example"},
	{"Phone", "phone", "+1 555 0100"},
	{"Signal", "phone", "+1 555 0101"},
	{"Matrix", "social", "@example:matrix.org"},
	{"Keybase", "social", "keybase.io/example"},
	{"Blog", "web", "blog.example.dev"},
	{"Website", "web", "example.dev"},
	{"RSS", "web", "example.dev/feed.xml"},
	{"Calendar", "web", "cal.example.dev"},
	{"Stack Overflow", "social", "stackoverflow.com/users/1/example"},
	{"YouTube", "social", "youtube.com/@example"},
	{"Discord", "social", "example#0001"},
	{"Telegram", "social", "t.me/example"},
	{"PGP", "web", "example.dev/pgp.asc"},
	{"Speaker deck", "web", "speakerdeck.com/example"},
	{"Resume", "web", "example.dev/resume.pdf"},
	{"Office", "phone", "+1 555 0199"},
}

// Seed fills the store with demo records
func (s *MemoryStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.about = []domain.AboutSection{
		{ID: "about-1", Category: "Intro", Title: "Hi, I'm a backend engineer", Body: "I build boring, reliable systems.", Published: true, Order: 0},
		{ID: "about-2", Category: "Intro", Title: "What I do", Body: "APIs, data pipelines and the tooling around them.", Published: true, Order: 1},
		{ID: "about-3", Category: "Experience", Title: "Platform team lead", Body: "Ran the internal platform for a payments company.", Published: false, Order: 2},
		{ID: "about-4", Category: "Experience", Title: "Open source", Body: "Maintainer of a few CLI tools.", Published: true, Order: 3},
		{ID: "about-5", Category: "Personal", Title: "Outside work", Body: "Climbing, film photography, too many keyboards.", Published: false, Order: 4},
	}

	s.skills = s.skills[:0]
	n := 0
	for _, group := range seedSkills {
		for i, name := range group.names {
			n++
			s.skills = append(s.skills, domain.Skill{
				ID:        fmt.Sprintf("skill-%02d", n),
				Name:      name,
				Category:  group.category,
				Level:     5 - i%5,
				Published: n%4 != 0,
				Order:     n - 1,
			})
		}
	}

	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	titles := []string{
		"Release dashboard", "Log shipper", "Feature flags service", "Portfolio site",
		"Terminal file manager", "Static site generator", "Metrics exporter",
		"Chat bot", "Link shortener", "Recipe planner", "Budget tracker", "Photo archive",
	}
	techs := []string{"Go, PostgreSQL", "Go, Kafka", "TypeScript, Remix", "Rust"}
	s.projects = s.projects[:0]
	for i, title := range titles {
		s.projects = append(s.projects, domain.Project{
			ID:        fmt.Sprintf("project-%02d", i+1),
			Title:     title,
			Slug:      slugify(title),
			Tech:      techs[i%len(techs)],
			Published: i%3 != 2,
			UpdatedAt: base.Add(time.Duration(i) * 72 * time.Hour),
		})
	}

	s.contacts = s.contacts[:0]
	for i, c := range seedContacts {
		s.contacts = append(s.contacts, domain.Contact{
			ID:        fmt.Sprintf("contact-%02d", i+1),
			Label:     c.label,
			Kind:      c.kind,
			Value:     c.value,
			Published: c.kind != "phone",
		})
	}
}

func slugify(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-':
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}
	return string(out)
}
