package tui

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/focus/internal/timer"
	"github.com/jask/focus/internal/view"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestPaletteColorsAreValidHex(t *testing.T) {
	for _, c := range paletteColors() {
		if !hexColorRegex.MatchString(string(c)) {
			t.Errorf("invalid hex color: %q", c)
		}
	}
}

func TestEmphasisStyles(t *testing.T) {
	tests := []struct {
		emphasis view.Emphasis
		want     lipgloss.Color
	}{
		{view.EmphasisNone, colorText},
		{view.EmphasisSuccess, colorSuccess},
		{view.EmphasisAlert, colorAlert},
	}
	for _, tt := range tests {
		t.Run(tt.emphasis.String(), func(t *testing.T) {
			if got := emphasisStyle(tt.emphasis).GetForeground(); got != lipgloss.TerminalColor(tt.want) {
				t.Fatalf("foreground = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderFrameNoSizeYet(t *testing.T) {
	m := view.Project(timer.Finished{}, epoch, "> ")
	out := ansi.Strip(renderFrame(m, layout{inputTitle: "Enter Duration", footer: "q quit"}))
	lines := strings.Split(out, "\n")

	if lines[0] != view.PromptText || lines[2] != view.FinishedText {
		t.Fatalf("unexpected header lines:\n%s", out)
	}
	if w := ansi.StringWidth(lines[4]); w != defaultWidth {
		t.Fatalf("box width = %d, want %d", w, defaultWidth)
	}
	if lines[len(lines)-1] != "q quit" || lines[len(lines)-2] != "" {
		t.Fatalf("footer should follow one blank line:\n%s", out)
	}
}

func TestRenderFrameNarrowTerminal(t *testing.T) {
	m := view.Project(timer.Running{StartedAt: epoch, Duration: 5 * time.Minute}, epoch, "> 300")
	out := ansi.Strip(renderFrame(m, layout{width: 16, inputTitle: "Enter Duration"}))
	for i, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 16 {
			t.Fatalf("line %d is %d cells wide, want <= 16: %q", i, w, line)
		}
	}
	if !strings.Contains(out, "…") {
		t.Fatalf("expected truncated text:\n%s", out)
	}
}

func TestRenderFrameShortTerminalSkipsPadding(t *testing.T) {
	m := view.Project(timer.Idle{}, epoch, "> ")
	out := ansi.Strip(renderFrame(m, layout{width: 40, height: 5, inputTitle: "t", footer: "help"}))
	if !strings.HasSuffix(out, "\n\nhelp") {
		t.Fatalf("footer should be appended after the body:\n%s", out)
	}
}

func TestBoxWidth(t *testing.T) {
	cases := map[int]int{10: 10, 20: 20, 45: 45, 60: 60, 120: 60}
	for in, want := range cases {
		if got := boxWidth(in); got != want {
			t.Errorf("boxWidth(%d) = %d, want %d", in, got, want)
		}
	}
}
