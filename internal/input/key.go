package input

import (
	"strings"
	"unicode/utf8"
)

// Code names a non-character key. CodeRune means the key carries a
// character in Key.Rune.
type Code int

const (
	CodeRune Code = iota
	CodeEnter
	CodeBackspace
	CodeDelete
	CodeLeft
	CodeRight
	CodeUp
	CodeDown
	CodeHome
	CodeEnd
	CodeTab
	CodeEsc
	CodeSpace
	CodeOther
)

var codeNames = map[Code]string{
	CodeEnter:     "enter",
	CodeBackspace: "backspace",
	CodeDelete:    "delete",
	CodeLeft:      "left",
	CodeRight:     "right",
	CodeUp:        "up",
	CodeDown:      "down",
	CodeHome:      "home",
	CodeEnd:       "end",
	CodeTab:       "tab",
	CodeEsc:       "esc",
	CodeSpace:     "space",
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
)

// Key is one decoded keyboard event, independent of any terminal toolkit.
type Key struct {
	Code Code
	Rune rune
	Mods Modifiers
}

// Char returns an unmodified character key.
func Char(r rune) Key {
	return Key{Code: CodeRune, Rune: r}
}

// Named returns an unmodified non-character key.
func Named(c Code) Key {
	return Key{Code: c}
}

// Ctrl returns r pressed with the control modifier.
func Ctrl(r rune) Key {
	return Key{Code: CodeRune, Rune: r, Mods: ModCtrl}
}

// String renders the key the way bindings are written, for example "q",
// "enter", "ctrl+c" or "alt+backspace".
func (k Key) String() string {
	var b strings.Builder
	if k.Mods&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if k.Mods&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if k.Mods&ModShift != 0 && k.Code != CodeRune {
		b.WriteString("shift+")
	}
	switch {
	case k.Code == CodeRune:
		b.WriteRune(k.Rune)
	case codeNames[k.Code] != "":
		b.WriteString(codeNames[k.Code])
	default:
		b.WriteString("unknown")
	}
	return b.String()
}

// Plain reports whether the key is a character typed without ctrl or alt.
func (k Key) Plain() bool {
	return k.Code == CodeRune && k.Mods&(ModCtrl|ModAlt) == 0
}

// DurationRune reports whether r may be typed into a duration field. It
// admits more than ParseSeconds accepts so a user can type a malformed value
// and see it ignored on submit; letters stay free for command bindings.
func DurationRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.', r == '-', r == '+':
		return true
	}
	return false
}

// editKeys are the non-character keys a duration field edits with. They
// match the default textinput key map, minus clipboard paste.
var editKeys = map[string]bool{
	"backspace":     true,
	"delete":        true,
	"left":          true,
	"right":         true,
	"home":          true,
	"end":           true,
	"ctrl+a":        true,
	"ctrl+b":        true,
	"ctrl+d":        true,
	"ctrl+e":        true,
	"ctrl+f":        true,
	"ctrl+h":        true,
	"ctrl+k":        true,
	"ctrl+u":        true,
	"ctrl+w":        true,
	"alt+backspace": true,
	"alt+delete":    true,
	"alt+left":      true,
	"alt+right":     true,
	"alt+b":         true,
	"alt+d":         true,
	"alt+f":         true,
}

// EditKey reports whether the key named name is consumed by a duration
// field, either as a duration character or as a line-editing key. A binding
// on such a key never fires.
func EditKey(name string) bool {
	name = normalizeKey(name)
	if r := []rune(name); len(r) == 1 {
		return DurationRune(r[0])
	}
	return editKeys[name]
}

// normalizeKey folds case for named keys only; "Q" and "q" stay distinct.
func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if utf8.RuneCountInString(k) == 1 {
		return k
	}
	return strings.ToLower(k)
}
