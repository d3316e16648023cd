package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/focus/internal/view"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette: true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"
	colorMauve    lipgloss.Color = "#cba6f7"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorBrand   = colorMauve
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorAlert   = colorRed
	colorMuted   = colorOverlay1
)

// paletteColors lists the palette entries above.
func paletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorRed, colorGreen, colorTeal, colorLavender, colorMauve,
		colorText, colorSubtext0, colorOverlay1, colorSurface1,
	}
}

var (
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	neutralStyle = lipgloss.NewStyle().Foreground(colorText)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	alertStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAlert)
	helpKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSubtext0)
	helpStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	placeholder  = lipgloss.NewStyle().Foreground(colorSurface1)
)

// emphasisStyle maps a region's emphasis to its style.
func emphasisStyle(e view.Emphasis) lipgloss.Style {
	switch e {
	case view.EmphasisSuccess:
		return successStyle
	case view.EmphasisAlert:
		return alertStyle
	default:
		return neutralStyle
	}
}
