package domain

import (
	"fmt"
	"time"

	"folio/internal/grid"
)

// Kind identifies one of the portfolio collections
type Kind string

const (
	KindAbout   Kind = "about"
	KindSkill   Kind = "skill"
	KindProject Kind = "project"
	KindContact Kind = "contact"
)

// Kinds lists the collections in display order
var Kinds = []Kind{KindAbout, KindSkill, KindProject, KindContact}

// Title returns the page title for a collection
func (k Kind) Title() string {
	switch k {
	case KindAbout:
		return "About Me"
	case KindSkill:
		return "Skills"
	case KindProject:
		return "Projects"
	case KindContact:
		return "Contacts"
	default:
		return fmt.Sprintf("Unknown(%s)", string(k))
	}
}

// FieldPublished is the only field the list pages mutate in place
const FieldPublished = "published"

// FieldRecord keys mutations on a whole record, such as a delete
const FieldRecord = "record"

// Intents understood by the action endpoint
const (
	IntentTogglePublish = "toggle-publish"
	IntentDelete        = "delete"
)

// AboutSection is a block of the About-Me page
type AboutSection struct {
	ID        string
	Category  string // about category name
	Title     string
	Body      string
	Published bool
	Order     int
}

func (a AboutSection) RowID() grid.RowID { return grid.RowID(a.ID) }

// Skill is a single skill entry grouped by category
type Skill struct {
	ID        string
	Name      string
	Category  string
	Level     int // 1-5
	Published bool
	Order     int
}

func (s Skill) RowID() grid.RowID { return grid.RowID(s.ID) }

// Project is a portfolio project
type Project struct {
	ID        string
	Title     string
	Slug      string
	Tech      string // comma separated stack
	Published bool
	UpdatedAt time.Time
}

func (p Project) RowID() grid.RowID { return grid.RowID(p.ID) }

// Contact is a way to reach the portfolio owner
type Contact struct {
	ID        string
	Label     string
	Kind      string // email, phone, social
	Value     string
	Published bool
}

func (c Contact) RowID() grid.RowID { return grid.RowID(c.ID) }
