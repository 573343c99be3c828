// Package buffer holds the in-progress entry as editable lines of runes
// with a cursor. Every operation clamps; the cursor can never land outside
// the current content.
package buffer

import "strings"

type Buffer struct {
	lines [][]rune
	line  int
	col   int
}

func New() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// Lines exposes the logical lines for reflow. Callers must not mutate them.
func (b *Buffer) Lines() [][]rune {
	return b.lines
}

// Cursor returns the logical (line, column) position.
func (b *Buffer) Cursor() (int, int) {
	return b.line, b.col
}

// Text joins the logical lines with newlines.
func (b *Buffer) Text() string {
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

// Empty reports whether the buffer holds no characters at all.
func (b *Buffer) Empty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Reset discards all content and returns the cursor to the origin.
func (b *Buffer) Reset() {
	b.lines = [][]rune{{}}
	b.line = 0
	b.col = 0
}

func (b *Buffer) InsertRune(r rune) {
	line := b.lines[b.line]
	line = append(line[:b.col:b.col], append([]rune{r}, line[b.col:]...)...)
	b.lines[b.line] = line
	b.col++
}

func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		if r == '\n' {
			b.InsertNewline()
			continue
		}
		b.InsertRune(r)
	}
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	line := b.lines[b.line]
	before := append([]rune{}, line[:b.col]...)
	after := append([]rune{}, line[b.col:]...)

	b.lines[b.line] = before
	rest := append([][]rune{after}, b.lines[b.line+1:]...)
	b.lines = append(b.lines[:b.line+1], rest...)

	b.line++
	b.col = 0
}

// DeleteBackward removes the rune before the cursor, joining lines when the
// cursor sits at a line start.
func (b *Buffer) DeleteBackward() {
	if b.col > 0 {
		line := b.lines[b.line]
		b.lines[b.line] = append(line[:b.col-1], line[b.col:]...)
		b.col--
		return
	}
	if b.line == 0 {
		return
	}
	prev := b.lines[b.line-1]
	b.col = len(prev)
	b.lines[b.line-1] = append(prev, b.lines[b.line]...)
	b.lines = append(b.lines[:b.line], b.lines[b.line+1:]...)
	b.line--
}

// DeleteForward removes the rune under the cursor, joining the next line up
// when the cursor sits at a line end.
func (b *Buffer) DeleteForward() {
	line := b.lines[b.line]
	if b.col < len(line) {
		b.lines[b.line] = append(line[:b.col], line[b.col+1:]...)
		return
	}
	if b.line == len(b.lines)-1 {
		return
	}
	b.lines[b.line] = append(line, b.lines[b.line+1]...)
	b.lines = append(b.lines[:b.line+1], b.lines[b.line+2:]...)
}

func (b *Buffer) CursorLeft() {
	if b.col > 0 {
		b.col--
		return
	}
	if b.line > 0 {
		b.line--
		b.col = len(b.lines[b.line])
	}
}

func (b *Buffer) CursorRight() {
	if b.col < len(b.lines[b.line]) {
		b.col++
		return
	}
	if b.line < len(b.lines)-1 {
		b.line++
		b.col = 0
	}
}

func (b *Buffer) CursorUp() {
	if b.line == 0 {
		return
	}
	b.line--
	b.col = min(b.col, len(b.lines[b.line]))
}

func (b *Buffer) CursorDown() {
	if b.line == len(b.lines)-1 {
		return
	}
	b.line++
	b.col = min(b.col, len(b.lines[b.line]))
}

func (b *Buffer) CursorHome() {
	b.col = 0
}

func (b *Buffer) CursorEnd() {
	b.col = len(b.lines[b.line])
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
