// Package wrap reflows logical buffer lines into fixed-width display lines
// and maps buffer cursors onto them. Words are never broken: a word wider
// than the viewport overflows alone on its own display line.
package wrap

// Line is one wrapped visual row. Source and Start point back at the
// logical line and rune offset the row begins at.
type Line struct {
	Text   string
	Source int
	Start  int
}

// Reflow recomputes the full display line sequence for the given viewport
// width. Each display line is a contiguous slice of its logical line;
// breaks land on spaces, and the space at a break is consumed. Explicit
// newlines stay hard breaks, and an empty logical line yields one empty
// display line.
func Reflow(lines [][]rune, width int) []Line {
	if width < 1 {
		width = 1
	}

	var out []Line
	for src, line := range lines {
		i := 0
		for {
			if len(line)-i <= width {
				out = append(out, Line{Text: string(line[i:]), Source: src, Start: i})
				break
			}
			brk := -1
			for j := i + width; j > i; j-- {
				if line[j] == ' ' {
					brk = j
					break
				}
			}
			if brk == -1 {
				// single word wider than the viewport: emit it whole
				end := i + width
				for end < len(line) && line[end] != ' ' {
					end++
				}
				out = append(out, Line{Text: string(line[i:end]), Source: src, Start: i})
				if end < len(line) {
					end++ // consume the breaking space
				}
				i = end
				if i >= len(line) {
					break
				}
				continue
			}
			out = append(out, Line{Text: string(line[i:brk]), Source: src, Start: i})
			i = brk + 1
		}
	}
	return out
}

// Locate maps a buffer cursor (logical line, column) onto its display row
// and visual column for the same width Reflow was given. Positions on a
// consumed breaking space clamp to the end of the row before the break.
func Locate(lines [][]rune, width, cline, ccol int) (int, int) {
	if len(lines) == 0 {
		return 0, 0
	}
	if cline < 0 {
		cline = 0
	}
	if cline >= len(lines) {
		cline = len(lines) - 1
	}
	if ccol < 0 {
		ccol = 0
	}
	if ccol > len(lines[cline]) {
		ccol = len(lines[cline])
	}

	display := Reflow(lines, width)
	for row, dl := range display {
		if dl.Source != cline {
			continue
		}
		next := len(lines[cline]) + 1
		if row+1 < len(display) && display[row+1].Source == cline {
			next = display[row+1].Start
		}
		if ccol >= dl.Start && ccol < next {
			vcol := ccol - dl.Start
			if w := len([]rune(dl.Text)); vcol > w {
				vcol = w
			}
			return row, vcol
		}
	}
	return 0, 0
}
