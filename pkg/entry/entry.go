package entry

import (
	"fmt"
	"strings"
)

func New(text string, tags, tasks []string, location string) *Entry {
	return &Entry{
		Timestamp: Now(),
		Text:      text,
		Tags:      tags,
		Tasks:     tasks,
		Location:  location,
	}
}

// Entry is one committed logbook record. Field order matches the persisted
// document layout; Tasks is omitted when empty so documents written before
// task markers existed round-trip unchanged.
type Entry struct {
	Timestamp Timestamp `json:"timestamp"`
	Text      string    `json:"text"`
	Tags      []string  `json:"tags"`
	Tasks     []string  `json:"tasks,omitempty"`
	Location  string    `json:"location"`
}

// Empty reports whether the entry carries no content at all. Tags and tasks
// count as content even with no body text.
func (e *Entry) Empty() bool {
	return strings.TrimSpace(e.Text) == "" && len(e.Tags) == 0 && len(e.Tasks) == 0
}

// HasTag reports exact, case-sensitive tag membership.
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Row returns the timestamp, body, and metadata columns for table output.
func (e *Entry) Row() (string, string, string) {
	return e.Timestamp.String(), e.Text, e.Meta()
}

// Meta renders the tag and location annotations the way search output shows
// them.
func (e *Entry) Meta() string {
	var b strings.Builder
	if len(e.Tags) > 0 {
		fmt.Fprintf(&b, "[tags: %s] ", strings.Join(e.Tags, ", "))
	}
	fmt.Fprintf(&b, "[location: %s]", e.Location)
	return b.String()
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s: %s %s", e.Timestamp.String(), e.Text, e.Meta())
}
