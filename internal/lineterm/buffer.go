package lineterm

import "github.com/jask/focus/internal/input"

// Buffer is the line-mode editing widget. The user's terminal already does
// line editing, so it only collects duration characters and honours
// backspace.
type Buffer struct {
	text []rune
}

func (b *Buffer) HandleKey(k input.Key) bool {
	switch {
	case k.Plain() && input.DurationRune(k.Rune):
		b.text = append(b.text, k.Rune)
		return true
	case k.Code == input.CodeBackspace:
		if len(b.text) > 0 {
			b.text = b.text[:len(b.text)-1]
		}
		return true
	}
	return false
}

func (b *Buffer) Value() string { return string(b.text) }

func (b *Buffer) Reset() { b.text = b.text[:0] }

// View shows a pending value, or nothing when the buffer is empty.
func (b *Buffer) View() string {
	if len(b.text) == 0 {
		return ""
	}
	return "pending: " + string(b.text)
}
