package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestBoxRenderWidthAndTitle(t *testing.T) {
	out := Box{Title: "Enter Duration", Content: "> 25", Border: lipgloss.Color("#b4befe")}.Render(30)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3\n%s", len(lines), out)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 30 {
			t.Fatalf("line %d width = %d, want 30: %q", i, w, line)
		}
	}
	if !strings.HasPrefix(lines[0], "╭─ Enter Duration ") || !strings.HasSuffix(lines[0], "╮") {
		t.Fatalf("top edge = %q", lines[0])
	}
	if !strings.Contains(lines[1], "> 25") {
		t.Fatalf("content line = %q", lines[1])
	}
}

func TestBoxTruncatesLongTitle(t *testing.T) {
	out := Box{Title: "A very long title indeed", Content: "x"}.Render(12)
	top := strings.Split(ansi.Strip(out), "\n")[0]
	if w := ansi.StringWidth(top); w != 12 {
		t.Fatalf("top width = %d, want 12: %q", w, top)
	}
	if !strings.Contains(top, "…") {
		t.Fatalf("expected truncated title, got %q", top)
	}
}

func TestBoxWithoutTitle(t *testing.T) {
	out := ansi.Strip(Box{Content: "x"}.Render(10))
	if !strings.HasPrefix(out, "╭────────╮") {
		t.Fatalf("unexpected top edge: %q", strings.Split(out, "\n")[0])
	}
}

func TestBoxTooNarrow(t *testing.T) {
	if got := (Box{Title: "t", Content: "abc"}).Render(3); got != "abc" {
		t.Fatalf("Render(3) = %q, want bare content", got)
	}
}
