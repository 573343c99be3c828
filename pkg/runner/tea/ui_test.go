package teaui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/chasenunez/logue/pkg/entry"
	"github.com/chasenunez/logue/pkg/store"
	"github.com/chasenunez/logue/pkg/vcs"
)

type fakeStore struct {
	entries []*entry.Entry
}

func (f *fakeStore) All() []*entry.Entry {
	all := make([]*entry.Entry, len(f.entries))
	copy(all, f.entries)
	return all
}

func (f *fakeStore) Append(e *entry.Entry) error {
	if e == nil || e.Empty() {
		return store.ErrEmptyEntry
	}
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeStore) Reload() error { return nil }

func (f *fakeStore) Watch(ctx context.Context) (<-chan store.Event, error) {
	return nil, errors.New("watch unsupported")
}

func (f *fakeStore) BasePath() string { return "" }

func (f *fakeStore) Document() string { return "logue.json" }

func (f *fakeStore) DocumentPath() string { return filepath.Join("", "logue.json") }

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func composing(t *testing.T, f *fakeStore) Model {
	t.Helper()
	m := New(context.Background(), f, vcs.Noop{})
	// answer the location prompt
	for _, r := range "office" {
		m, _ = press(t, m, tea.KeyPressMsg{Text: string(r), Code: r})
	}
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.mode != modeComposing {
		t.Fatalf("expected composing after location prompt, got mode %d", m.mode)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		if r == ' ' {
			m, _ = press(t, m, tea.KeyPressMsg{Text: " ", Code: tea.KeySpace})
			continue
		}
		m, _ = press(t, m, tea.KeyPressMsg{Text: string(r), Code: r})
	}
	return m
}

func TestCommitAppendsExtractedEntry(t *testing.T) {
	f := &fakeStore{}
	m := composing(t, f)

	m = typeText(t, m, "Met #projectx team, *follow up with Alex tomorrow")
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if len(f.entries) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(f.entries))
	}
	e := f.entries[0]
	if e.Text != "Met team," {
		t.Fatalf("expected clean text, got %q", e.Text)
	}
	if len(e.Tags) != 1 || e.Tags[0] != "projectx" {
		t.Fatalf("expected extracted tag, got %v", e.Tags)
	}
	if len(e.Tasks) != 1 || e.Tasks[0] != "follow up with Alex tomorrow" {
		t.Fatalf("expected extracted task, got %v", e.Tasks)
	}
	if e.Location != "office" {
		t.Fatalf("expected session location, got %q", e.Location)
	}

	if !m.buf.Empty() {
		t.Fatalf("buffer should reset after commit")
	}
	if m.mode != modeComposing {
		t.Fatalf("expected to re-enter composing, got mode %d", m.mode)
	}
	if len(m.session) != 1 {
		t.Fatalf("committed entry should join the session pane")
	}
}

func TestEnterOnEmptyBufferQuits(t *testing.T) {
	m := composing(t, &fakeStore{})

	_, cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestEscAbandonsDraftWithoutPersisting(t *testing.T) {
	f := &fakeStore{}
	m := composing(t, f)

	m = typeText(t, m, "half a thought")
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})

	if !m.buf.Empty() {
		t.Fatalf("draft should be discarded")
	}
	if len(f.entries) != 0 {
		t.Fatalf("abandon must not persist anything, got %d entries", len(f.entries))
	}
}

func TestContentFreeCommitStaysComposing(t *testing.T) {
	f := &fakeStore{}
	m := composing(t, f)

	m = typeText(t, m, "   ")
	m, cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd != nil {
		t.Fatalf("a rejected commit must not quit")
	}
	if len(f.entries) != 0 {
		t.Fatalf("store length changed on rejected commit")
	}
	if m.mode != modeComposing {
		t.Fatalf("expected to stay composing, got mode %d", m.mode)
	}
	if m.status == "" {
		t.Fatalf("expected a status message for the empty entry")
	}
}

func TestNewlineAndNavigation(t *testing.T) {
	m := composing(t, &fakeStore{})

	m = typeText(t, m, "one")
	m, _ = press(t, m, tea.KeyPressMsg{Text: "\n", Code: 'j', Mod: tea.ModCtrl})
	m = typeText(t, m, "two")

	if got := m.buf.Text(); got != "one\ntwo" {
		t.Fatalf("expected two logical lines, got %q", got)
	}

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyUp})
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnd})
	if line, col := m.buf.Cursor(); line != 0 || col != 3 {
		t.Fatalf("expected cursor at (0,3), got (%d,%d)", line, col)
	}
}

func TestViewShowsHeaderAndSession(t *testing.T) {
	f := &fakeStore{}
	m := composing(t, f)
	m = typeText(t, m, "first note")
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	view := m.View()
	if !strings.Contains(view, "logue: ") {
		t.Fatalf("header missing from view")
	}
	if !strings.Contains(view, "office") {
		t.Fatalf("location missing from header")
	}
	if !strings.Contains(view, "Today's Entries:") {
		t.Fatalf("session pane missing from view")
	}
	if !strings.Contains(view, "first note") {
		t.Fatalf("committed entry missing from session pane")
	}
}

func TestCarriedTasksAppearOnLaunch(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	f := &fakeStore{entries: []*entry.Entry{{
		Timestamp: entry.Timestamp{Time: yesterday},
		Text:      "planning",
		Tasks:     []string{"water the plants"},
	}}}

	m := New(context.Background(), f, vcs.Noop{})
	if len(m.carried) != 1 || m.carried[0] != "water the plants" {
		t.Fatalf("expected carried task, got %v", m.carried)
	}

	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter}) // skip location
	if !strings.Contains(m.View(), "water the plants") {
		t.Fatalf("carried task missing from view")
	}
}
