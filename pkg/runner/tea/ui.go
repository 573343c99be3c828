// Package teaui hosts the Bubble Tea program for interactive composition:
// a line editor with word-wrap reflow over the entry store.
package teaui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/chasenunez/logue/pkg/buffer"
	"github.com/chasenunez/logue/pkg/entry"
	"github.com/chasenunez/logue/pkg/marker"
	"github.com/chasenunez/logue/pkg/query"
	"github.com/chasenunez/logue/pkg/store"
	"github.com/chasenunez/logue/pkg/timeutil"
	"github.com/chasenunez/logue/pkg/vcs"
	"github.com/chasenunez/logue/pkg/wrap"
)

type mode int

const (
	// modeLocation asks for the session location once per launch.
	modeLocation mode = iota
	modeComposing
	modeCommitting
)

const locationPrompt = "Enter location (optional, press Enter to skip): "

// storeChangedMsg arrives when the document changes on disk underneath us.
type storeChangedMsg struct{}

// Model contains the editor state.
type Model struct {
	ctx         context.Context
	persistence store.Persistence
	publisher   vcs.Publisher

	mode     mode
	location string
	input    textinput.Model
	buf      *buffer.Buffer

	width  int
	height int
	status string

	session []*entry.Entry // today's entries, oldest first
	carried []string       // tasks deferred from yesterday
	changes <-chan store.Event

	theme theme
}

func New(ctx context.Context, p store.Persistence, pub vcs.Publisher) Model {
	ti := textinput.New()
	ti.Placeholder = "optional"
	ti.Prompt = ""
	ti.Focus()

	m := Model{
		ctx:         ctx,
		persistence: p,
		publisher:   pub,
		mode:        modeLocation,
		input:       ti,
		buf:         buffer.New(),
		width:       80,
		height:      24,
		theme:       newTheme(),
	}

	q := query.Engine{Source: p}
	m.session = q.ByDate(entry.Timestamp{Time: time.Now()}.DayPrefix())
	m.carried = q.TasksDueToday(time.Now())

	if ch, err := p.Watch(ctx); err == nil {
		m.changes = ch
	} else {
		fmt.Fprintf(os.Stderr, "logue: %v\n", err)
	}
	return m
}

// Run launches the editor program and blocks until it exits.
func Run(ctx context.Context, p store.Persistence, pub vcs.Publisher) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prog := tea.NewProgram(New(ctx, p, pub), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	termenv.SetWindowTitle("logue")
	return tea.Batch(m.input.Focus(), m.waitForChange())
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(8, m.width-len(locationPrompt)-4))
		return m, nil

	case storeChangedMsg:
		if err := m.persistence.Reload(); err != nil {
			m.status = err.Error()
		} else {
			q := query.Engine{Source: m.persistence}
			m.session = q.ByDate(entry.Timestamp{Time: time.Now()}.DayPrefix())
		}
		return m, m.waitForChange()

	case tea.KeyPressMsg:
		switch m.mode {
		case modeLocation:
			return m.updateLocation(msg)
		case modeComposing:
			return m.updateComposing(msg)
		}
	}

	if m.mode == modeLocation {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateLocation(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.location = strings.TrimSpace(m.input.Value())
		m.mode = modeComposing
		m.input.Blur()
		return m, nil
	case "esc":
		// skip the prompt, same as an empty answer
		m.location = ""
		m.mode = modeComposing
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateComposing(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		return m, tea.Quit
	case "enter":
		if m.buf.Empty() {
			// an empty entry ends the session
			return m, tea.Quit
		}
		return m.commit()
	case "esc":
		m.buf.Reset()
		m.status = "draft discarded"
	case "ctrl+j":
		m.buf.InsertNewline()
	case "backspace":
		m.buf.DeleteBackward()
	case "delete":
		m.buf.DeleteForward()
	case "left":
		m.buf.CursorLeft()
	case "right":
		m.buf.CursorRight()
	case "up":
		m.buf.CursorUp()
	case "down":
		m.buf.CursorDown()
	case "home", "ctrl+a":
		m.buf.CursorHome()
	case "end", "ctrl+e":
		m.buf.CursorEnd()
	case "space":
		m.buf.InsertRune(' ')
	default:
		if msg.Text != "" {
			m.buf.InsertString(msg.Text)
			m.status = ""
		}
	}
	return m, nil
}

// commit runs extraction over the buffer, appends the entry, publishes, and
// re-enters composition. The draft survives only when nothing was saved.
func (m Model) commit() (tea.Model, tea.Cmd) {
	m.mode = modeCommitting

	res := marker.Extract(m.buf.Text())
	e := entry.New(res.Clean, res.Tags, res.Tasks, m.location)

	err := m.persistence.Append(e)
	switch {
	case errors.Is(err, store.ErrEmptyEntry):
		m.mode = modeComposing
		m.status = "nothing to save: add some text, a #tag, or a *task"
		return m, nil
	case err != nil:
		m.mode = modeComposing
		m.status = err.Error()
		return m, nil
	}

	if err := m.publisher.Publish(m.ctx); err != nil {
		// the local append stands; sync trouble is logged, not fatal
		m.status = fmt.Sprintf("saved, sync failed: %v", err)
		fmt.Fprintf(os.Stderr, "logue: %v\n", err)
	} else {
		m.status = "saved"
	}

	m.session = append(m.session, e)
	m.buf.Reset()
	m.mode = modeComposing
	return m, nil
}

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(m.theme.header.Render(m.headerLine()))
	b.WriteString("\n\n")

	if m.mode == modeLocation {
		b.WriteString(m.theme.label.Render(locationPrompt))
		b.WriteString(m.input.View())
		b.WriteString("\n")
		return b.String()
	}

	if len(m.carried) > 0 {
		b.WriteString(m.theme.label.Render("Tasks carried from yesterday:"))
		b.WriteString("\n")
		for _, t := range m.carried {
			fmt.Fprintf(&b, "  › %s\n", t)
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderEntryBox(width))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.theme.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.help.Render("enter save · ctrl+j newline · esc discard · enter on empty quits"))
	b.WriteString("\n\n")
	b.WriteString(m.renderSession(width))
	return b.String()
}

func (m Model) headerLine() string {
	header := "logue: " + timeutil.HeaderDate(time.Now())
	if m.location != "" {
		header += "; " + m.location
	}
	return header
}

// renderEntryBox reflows the buffer to the box width and paints the caret
// at the display cell Locate maps the cursor to.
func (m Model) renderEntryBox(width int) string {
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	line, col := m.buf.Cursor()
	display := wrap.Reflow(m.buf.Lines(), inner)
	row, vcol := wrap.Locate(m.buf.Lines(), inner, line, col)

	lines := make([]string, 0, len(display))
	for i, dl := range display {
		text := dl.Text
		if pad := inner - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		if i == row {
			text = m.renderCaret(text, vcol)
		}
		lines = append(lines, text)
	}
	return m.theme.box.Render(strings.Join(lines, "\n"))
}

func (m Model) renderCaret(text string, col int) string {
	runes := []rune(text)
	if col >= len(runes) {
		return text + m.theme.caret.Render(" ")
	}
	return string(runes[:col]) + m.theme.caret.Render(string(runes[col])) + string(runes[col+1:])
}

func (m Model) renderSession(width int) string {
	var b strings.Builder
	b.WriteString(m.theme.label.Render("Today's Entries:"))
	b.WriteString("\n")
	if len(m.session) == 0 {
		b.WriteString(m.theme.help.Render("  none yet"))
		b.WriteString("\n")
		return b.String()
	}

	wrapWidth := width - 14
	if wrapWidth < 10 {
		wrapWidth = 10
	}
	for i := len(m.session) - 1; i >= 0; i-- {
		e := m.session[i]
		lines := strings.Split(wordwrap.String(e.Text, wrapWidth), "\n")
		fmt.Fprintf(&b, "  %s  - %s\n", m.theme.clock.Render(e.Timestamp.Clock()), lines[0])
		for _, l := range lines[1:] {
			fmt.Fprintf(&b, "           %s\n", l)
		}
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
