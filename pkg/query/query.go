// Package query answers date and tag lookups plus next-day task carryover
// over a store snapshot. Results are derived on every call, never persisted.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/chasenunez/logue/pkg/entry"
)

// Source is the read access the engine needs from a store.
type Source interface {
	All() []*entry.Entry
}

type Engine struct {
	Source Source
}

// ByDate returns every entry whose timestamp begins with the supplied
// prefix (normally the YYYY_MM_DD portion), in insertion order. No matches
// is an empty, non-error result.
func (q *Engine) ByDate(prefix string) []*entry.Entry {
	matches := make([]*entry.Entry, 0)
	for _, e := range q.Source.All() {
		if strings.HasPrefix(e.Timestamp.String(), prefix) {
			matches = append(matches, e)
		}
	}
	return matches
}

// ByTag returns every entry carrying an exact, case-sensitive tag match.
func (q *Engine) ByTag(tag string) []*entry.Entry {
	matches := make([]*entry.Entry, 0)
	for _, e := range q.Source.All() {
		if e.HasTag(tag) {
			matches = append(matches, e)
		}
	}
	return matches
}

// TasksDueToday collects the tasks of every entry created on the calendar
// day before ref, concatenated in timestamp order.
func (q *Engine) TasksDueToday(ref time.Time) []string {
	prefix := ref.AddDate(0, 0, -1).Format(entry.DayLayout)

	yesterday := q.ByDate(prefix)
	sort.SliceStable(yesterday, func(i, j int) bool {
		return yesterday[i].Timestamp.Before(yesterday[j].Timestamp.Time)
	})

	tasks := make([]string, 0)
	for _, e := range yesterday {
		tasks = append(tasks, e.Tasks...)
	}
	return tasks
}
