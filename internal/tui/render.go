package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/focus/internal/view"
	"github.com/jask/focus/widgets"
)

const (
	defaultWidth = 60
	minBoxWidth  = 20
	maxBoxWidth  = 60
)

// layout holds what the renderer needs besides the render model.
type layout struct {
	width      int
	height     int
	inputTitle string
	footer     string
	// progress is drawn under the timer when set.
	progress string
}

func (l layout) contentWidth() int {
	if l.width <= 0 {
		return defaultWidth
	}
	return l.width
}

// renderFrame draws the regions top to bottom. The prompt and timer regions
// get a blank line after them and the input region is boxed.
func renderFrame(m view.RenderModel, l layout) string {
	width := l.contentWidth()

	var blocks []string
	for _, r := range m.Regions {
		switch r.Label {
		case view.LabelPrompt:
			blocks = append(blocks, fit(promptStyle.Render(r.Text), width), "")
		case view.LabelTimer:
			blocks = append(blocks, fit(emphasisStyle(r.Emphasis).Render(r.Text), width))
			if l.progress != "" {
				blocks = append(blocks, fit(l.progress, width))
			}
			blocks = append(blocks, "")
		case view.LabelInput:
			box := widgets.Box{Title: l.inputTitle, Content: r.Text, Border: colorFocus}
			blocks = append(blocks, box.Render(boxWidth(width)))
		default:
			blocks = append(blocks, fit(neutralStyle.Render(r.Text), width))
		}
	}
	body := strings.Join(blocks, "\n")
	if l.footer == "" {
		return body
	}
	footer := fit(l.footer, width)
	if l.height <= 0 || lipgloss.Height(body)+2 > l.height {
		return body + "\n\n" + footer
	}
	return lipgloss.PlaceVertical(l.height-1, lipgloss.Top, body) + "\n" + footer
}

func boxWidth(width int) int {
	w := min(width, maxBoxWidth)
	if w < minBoxWidth {
		return width
	}
	return w
}

// fit truncates s to width cells.
func fit(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
