package teaui

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// accent is the single source color; dimmer shades are derived from it so
// the palette stays consistent if the accent changes.
var accent = mustHex("#00b7c3")

type theme struct {
	header lipgloss.Style
	label  lipgloss.Style
	clock  lipgloss.Style
	status lipgloss.Style
	help   lipgloss.Style
	box    lipgloss.Style
	caret  lipgloss.Style
}

func newTheme() theme {
	border := accent.BlendRgb(colorful.Color{R: 0, G: 0, B: 0}, 0.45)
	return theme{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent.Hex())),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		clock:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		help:   lipgloss.NewStyle().Faint(true),
		box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(border.Hex())).
			Padding(0, 1),
		caret: lipgloss.NewStyle().Reverse(true),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
