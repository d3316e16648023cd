package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/focus/internal/input"
)

// Editor is the duration field, a single-line textinput that consumes
// duration characters and line-editing keys and declines everything else.
type Editor struct {
	input textinput.Model
	cmd   tea.Cmd
}

func NewEditor() *Editor {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "seconds"
	ti.CharLimit = 20
	ti.PromptStyle = helpKeyStyle
	ti.TextStyle = neutralStyle
	ti.PlaceholderStyle = placeholder
	ti.Focus()
	return &Editor{input: ti}
}

// HandleKey implements input.Editor.
func (e *Editor) HandleKey(k input.Key) bool {
	if !e.edits(k) {
		return false
	}
	e.apply(toTea(k))
	return true
}

func (e *Editor) edits(k input.Key) bool {
	if k.Plain() {
		return input.DurationRune(k.Rune)
	}
	return input.EditKey(k.String())
}

// Paste inserts the duration characters of runes and drops the rest.
func (e *Editor) Paste(runes []rune) {
	for _, r := range runes {
		if input.DurationRune(r) {
			e.apply(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
}

func (e *Editor) apply(msg tea.Msg) {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	e.cmd = tea.Batch(e.cmd, cmd)
}

// Update forwards non-key messages such as cursor blinks.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

// TakeCmd returns and clears the commands produced by edits since the last call.
func (e *Editor) TakeCmd() tea.Cmd {
	cmd := e.cmd
	e.cmd = nil
	return cmd
}

func (e *Editor) Value() string { return e.input.Value() }

func (e *Editor) Reset() { e.input.Reset() }

func (e *Editor) View() string { return e.input.View() }

func (e *Editor) position() int { return e.input.Position() }
