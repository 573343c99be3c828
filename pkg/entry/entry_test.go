package entry

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTimestampWireFormat(t *testing.T) {
	ts := Timestamp{Time: time.Date(2025, time.September, 8, 14, 30, 9, 0, time.Local)}
	if got := ts.String(); got != "2025_09_08_14_30_09" {
		t.Fatalf("expected fixed layout, got %q", got)
	}
	if got := ts.DayPrefix(); got != "2025_09_08" {
		t.Fatalf("expected day prefix, got %q", got)
	}
	if got := ts.Clock(); got != "14:30" {
		t.Fatalf("expected clock, got %q", got)
	}
}

func TestEntryJSONFieldOrder(t *testing.T) {
	e := &Entry{
		Timestamp: Timestamp{Time: time.Date(2025, time.September, 8, 9, 0, 0, 0, time.Local)},
		Text:      "hello",
		Tags:      []string{"a"},
		Location:  "home",
	}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)

	// the document layout of the existing logs: timestamp first, location
	// last, no tasks field when there are none
	if !strings.HasPrefix(got, `{"timestamp":"2025_09_08_09_00_00"`) {
		t.Fatalf("timestamp must lead the record, got %s", got)
	}
	if !strings.HasSuffix(got, `"location":"home"}`) {
		t.Fatalf("location must close the record, got %s", got)
	}
	if strings.Contains(got, "tasks") {
		t.Fatalf("empty tasks must be omitted, got %s", got)
	}
}

func TestEmpty(t *testing.T) {
	if !(&Entry{Text: "   "}).Empty() {
		t.Fatalf("whitespace-only entry should be empty")
	}
	if (&Entry{Tags: []string{"x"}}).Empty() {
		t.Fatalf("tags count as content")
	}
	if (&Entry{Tasks: []string{"x"}}).Empty() {
		t.Fatalf("tasks count as content")
	}
}

func TestMeta(t *testing.T) {
	e := &Entry{Tags: []string{"a", "b"}, Location: "office"}
	if got := e.Meta(); got != "[tags: a, b] [location: office]" {
		t.Fatalf("unexpected meta: %q", got)
	}

	plain := &Entry{Location: "office"}
	if got := plain.Meta(); got != "[location: office]" {
		t.Fatalf("unexpected meta without tags: %q", got)
	}
}
