// Package notes builds markdown note entries and appends them to the
// notes file.
package notes

import (
	"fmt"
	"strings"
	"time"
)

// Kind names a capture template.
type Kind string

const (
	Idea     Kind = "idea"
	Task     Kind = "task"
	Meeting  Kind = "meeting"
	People   Kind = "people"
	Learning Kind = "learning"
)

// Kinds lists the supported templates in display order.
var Kinds = []Kind{Idea, Task, Meeting, People, Learning}

// ParseKind maps a command argument to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(s))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("notes: unknown kind %q (want one of %v)", s, Kinds)
}

// Entry is one capture before formatting.
type Entry struct {
	Kind      Kind
	Text      string
	Project   string   // tasks
	Company   string   // meetings
	Attendees []string // meetings, people
	When      time.Time
}

const stampLayout = "2006-01-02 15:04"

// Markdown renders the entry as a block suitable for appending to the
// notes file. Templates are fixed; anything fancier belongs in the file's
// consumer.
func (e Entry) Markdown() string {
	stamp := e.When.Format(stampLayout)
	var b strings.Builder
	switch e.Kind {
	case Idea:
		fmt.Fprintf(&b, "## Idea (%s)\n\n%s\n", stamp, e.Text)
	case Task:
		if e.Project != "" {
			fmt.Fprintf(&b, "- [ ] **%s**: %s (%s)\n", e.Project, e.Text, stamp)
		} else {
			fmt.Fprintf(&b, "- [ ] %s (%s)\n", e.Text, stamp)
		}
	case Meeting:
		title := e.Text
		if e.Company != "" {
			title = e.Company + ": " + title
		}
		fmt.Fprintf(&b, "## Meeting: %s (%s)\n", title, stamp)
		if len(e.Attendees) > 0 {
			fmt.Fprintf(&b, "\nAttendees: %s\n", strings.Join(e.Attendees, ", "))
		}
	case People:
		who := strings.Join(e.Attendees, ", ")
		if who == "" {
			who = "Someone"
		}
		fmt.Fprintf(&b, "## %s (%s)\n\n%s\n", who, stamp, e.Text)
	case Learning:
		fmt.Fprintf(&b, "## Learned (%s)\n\n%s\n", stamp, e.Text)
	}
	return b.String()
}
