// Package input turns decoded key events into timer commands.
//
// Every key is offered to the editing widget first. Only keys the widget
// declines are matched against the application bindings, so a binding on a
// key the widget edits with is unreachable.
package input

import (
	"slices"

	"github.com/jask/focus/internal/timer"
)

// Editor is the editing widget as the router sees it.
type Editor interface {
	// HandleKey applies k to the buffer and reports whether it was consumed.
	HandleKey(k Key) bool
	// Value returns the full buffer contents.
	Value() string
	// Reset clears the buffer.
	Reset()
}

type Action string

const (
	ActionQuit   Action = "quit"
	ActionSubmit Action = "submit"
	ActionReset  Action = "reset"
)

// Keymap maps each action to the key names that trigger it.
type Keymap struct {
	Quit   []string
	Submit []string
	Reset  []string
}

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Quit:   []string{"q", "ctrl+c"},
		Submit: []string{"enter"},
		Reset:  []string{"r"},
	}
}

// Keys returns the key names bound to action.
func (km Keymap) Keys(action Action) []string {
	switch action {
	case ActionQuit:
		return km.Quit
	case ActionSubmit:
		return km.Submit
	case ActionReset:
		return km.Reset
	}
	return nil
}

// Is reports whether k triggers action.
func (km Keymap) Is(k Key, action Action) bool {
	pressed := normalizeKey(k.String())
	return slices.ContainsFunc(km.Keys(action), func(bound string) bool {
		return normalizeKey(bound) == pressed
	})
}

// WithDefaults drops bindings on editing keys, which could never fire, and
// fills every action left empty from DefaultKeymap.
func (km Keymap) WithDefaults() Keymap {
	def := DefaultKeymap()
	km.Quit = orDefault(live(km.Quit), def.Quit)
	km.Submit = orDefault(live(km.Submit), def.Submit)
	km.Reset = orDefault(live(km.Reset), def.Reset)
	return km
}

func live(keys []string) []string {
	var out []string
	for _, k := range keys {
		if !EditKey(k) {
			out = append(out, k)
		}
	}
	return out
}

func orDefault(keys, def []string) []string {
	if len(keys) == 0 {
		return def
	}
	return keys
}

// Router resolves keys against a keymap.
type Router struct {
	keys Keymap
}

func NewRouter(keys Keymap) *Router {
	return &Router{keys: keys.WithDefaults()}
}

// Keymap returns the bindings the router resolves against.
func (r *Router) Keymap() Keymap {
	return r.keys
}

// Route offers k to the editor and, if declined, maps it to a command.
// Quit is checked before submit and submit before reset.
func (r *Router) Route(k Key, ed Editor) timer.Command {
	if ed.HandleKey(k) {
		return timer.None{}
	}
	switch {
	case r.keys.Is(k, ActionQuit):
		return timer.Quit{}
	case r.keys.Is(k, ActionSubmit):
		return timer.Submit{Text: ed.Value()}
	case r.keys.Is(k, ActionReset):
		return timer.Reset{}
	}
	return timer.None{}
}
