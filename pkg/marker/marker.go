// Package marker extracts tag and deferred-task markers from finalized
// entry text. Extraction is a single pass, order preserving, and total: no
// input can fail.
package marker

import "strings"

// Result holds the structured pieces pulled out of an entry body. Clean is
// the body with all markers removed; re-running Extract on Clean yields
// Clean again with no tags or tasks.
type Result struct {
	Clean string
	Tags  []string
	Tasks []string
}

// Extract tokenizes on whitespace. A token "#X" is the tag X (case
// preserved, duplicates collapsed). A token "*X" starts a deferred task
// running to the end of the line. A bare "#" or "*" with no adjacent
// non-whitespace is literal text. Surviving tokens are rejoined with single
// spaces per line; lines emptied by extraction are dropped.
func Extract(text string) Result {
	var (
		tags  []string
		tasks []string
		clean []string
		seen  = map[string]bool{}
	)

	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		kept := make([]string, 0, len(fields))

		for i := 0; i < len(fields); i++ {
			tok := fields[i]
			switch {
			case len(tok) > 1 && strings.HasPrefix(tok, "#"):
				tag := tok[1:]
				if !seen[tag] {
					seen[tag] = true
					tags = append(tags, tag)
				}
			case len(tok) > 1 && strings.HasPrefix(tok, "*"):
				// task text runs from the marker to the line boundary
				rest := append([]string{tok[1:]}, fields[i+1:]...)
				tasks = append(tasks, strings.Join(rest, " "))
				i = len(fields)
			default:
				kept = append(kept, tok)
			}
		}

		if len(kept) > 0 {
			clean = append(clean, strings.Join(kept, " "))
		}
	}

	return Result{Clean: strings.Join(clean, "\n"), Tags: tags, Tasks: tasks}
}
