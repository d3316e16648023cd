package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box draws content inside a rounded border with the title set into the
// top edge.
type Box struct {
	Title   string
	Content string
	Border  lipgloss.TerminalColor
}

// Render returns the box at exactly width cells wide. Widths too small for
// a border and one cell of content render as plain content.
func (b Box) Render(width int) string {
	if width < 4 {
		return b.Content
	}
	border := lipgloss.RoundedBorder()
	edge := lipgloss.NewStyle()
	style := lipgloss.NewStyle().Border(border).Padding(0, 1).Width(width - 2)
	if b.Border != nil {
		edge = edge.Foreground(b.Border)
		style = style.BorderForeground(b.Border)
	}
	out := style.Render(b.Content)
	if b.Title == "" {
		return out
	}

	lines := strings.Split(out, "\n")
	inner := width - 2
	title := ansi.Truncate(" "+b.Title+" ", max(0, inner-1), "…")
	fill := inner - 1 - ansi.StringWidth(title)
	if fill < 0 {
		fill = 0
	}
	lines[0] = edge.Render(border.TopLeft+border.Top) + title +
		edge.Render(strings.Repeat(border.Top, fill)+border.TopRight)
	return strings.Join(lines, "\n")
}
