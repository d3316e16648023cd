package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/focus/internal/input"
)

var namedFromTea = map[tea.KeyType]input.Code{
	tea.KeyEnter:     input.CodeEnter,
	tea.KeyBackspace: input.CodeBackspace,
	tea.KeyDelete:    input.CodeDelete,
	tea.KeyLeft:      input.CodeLeft,
	tea.KeyRight:     input.CodeRight,
	tea.KeyUp:        input.CodeUp,
	tea.KeyDown:      input.CodeDown,
	tea.KeyHome:      input.CodeHome,
	tea.KeyEnd:       input.CodeEnd,
	tea.KeyTab:       input.CodeTab,
	tea.KeyEsc:       input.CodeEsc,
	tea.KeySpace:     input.CodeSpace,
}

var namedToTea = func() map[input.Code]tea.KeyType {
	out := make(map[input.Code]tea.KeyType, len(namedFromTea))
	for t, c := range namedFromTea {
		out[c] = t
	}
	return out
}()

// fromTea decodes a single-key Bubble Tea message. Multi-rune messages are
// split by the caller first.
func fromTea(msg tea.KeyMsg) input.Key {
	var k input.Key
	if msg.Alt {
		k.Mods |= input.ModAlt
	}
	if code, ok := namedFromTea[msg.Type]; ok {
		k.Code = code
		return k
	}
	switch {
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		k.Code = input.CodeRune
		k.Rune = msg.Runes[0]
	case msg.Type == tea.KeyShiftTab:
		k.Code = input.CodeTab
		k.Mods |= input.ModShift
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		k.Code = input.CodeRune
		k.Rune = 'a' + rune(msg.Type-tea.KeyCtrlA)
		k.Mods |= input.ModCtrl
	default:
		k.Code = input.CodeOther
	}
	return k
}

// toTea encodes k back into the message the bubbles widgets expect.
func toTea(k input.Key) tea.KeyMsg {
	msg := tea.KeyMsg{Alt: k.Mods&input.ModAlt != 0}
	if k.Code == input.CodeRune {
		if k.Mods&input.ModCtrl != 0 && k.Rune >= 'a' && k.Rune <= 'z' {
			msg.Type = tea.KeyCtrlA + tea.KeyType(k.Rune-'a')
			return msg
		}
		msg.Type = tea.KeyRunes
		msg.Runes = []rune{k.Rune}
		return msg
	}
	if k.Code == input.CodeTab && k.Mods&input.ModShift != 0 {
		msg.Type = tea.KeyShiftTab
		return msg
	}
	if t, ok := namedToTea[k.Code]; ok {
		msg.Type = t
		if t == tea.KeySpace {
			msg.Runes = []rune{' '}
		}
	}
	return msg
}

// helpBindings builds footer bindings from the router's keymap.
func helpBindings(km input.Keymap) []key.Binding {
	entry := func(keys []string, desc string) key.Binding {
		if len(keys) == 0 {
			return key.NewBinding(key.WithDisabled())
		}
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
	}
	return []key.Binding{
		entry(km.Submit, "start"),
		entry(km.Reset, "reset"),
		entry(km.Quit, "quit"),
	}
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, helpKeyStyle.Render(help.Key)+" "+helpStyle.Render(help.Desc))
	}
	return strings.Join(parts, helpStyle.Render("  •  "))
}
