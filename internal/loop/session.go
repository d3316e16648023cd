// Package loop owns the mutable state of a running program and drives one
// iteration at a time: route a key, apply the command, tick, project.
package loop

import (
	"log"
	"time"

	"github.com/jask/focus/internal/input"
	"github.com/jask/focus/internal/timer"
	"github.com/jask/focus/internal/view"
)

// Widget is an editor that can also draw itself.
type Widget interface {
	input.Editor
	View() string
}

// Session holds the timer state and the widget for one program run. It is
// not safe for concurrent use; exactly one driver owns it.
type Session struct {
	state  timer.State
	widget Widget
	router *input.Router
	logger *log.Logger
}

type Option func(*Session)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewSession(w Widget, r *input.Router, opts ...Option) *Session {
	if r == nil {
		r = input.NewRouter(input.DefaultKeymap())
	}
	s := &Session{
		state:  timer.Idle{},
		widget: w,
		router: r,
		logger: log.New(log.Writer(), "", log.Flags()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() timer.State { return s.state }

func (s *Session) Widget() Widget { return s.widget }

func (s *Session) Keymap() input.Keymap { return s.router.Keymap() }

// Step runs one iteration's update phase. When hasKey is set the key is
// routed and its command applied; the expiry tick runs either way. The
// returned flag asks the driver to stop once it has rendered this frame.
func (s *Session) Step(k input.Key, hasKey bool, now time.Time) (quit bool) {
	if hasKey {
		cmd := s.router.Route(k, s.widget)
		res := timer.Apply(s.state, cmd, now)
		if res.ClearInput {
			s.widget.Reset()
		}
		s.transition(res.State)
		quit = res.Quit
	}
	s.transition(timer.Tick(s.state, now))
	return quit
}

// Frame projects the current state at now.
func (s *Session) Frame(now time.Time) view.RenderModel {
	return view.Project(s.state, now, s.widget.View())
}

func (s *Session) transition(next timer.State) {
	prev := s.state
	s.state = next
	if next == prev {
		return
	}
	switch st := next.(type) {
	case timer.Running:
		s.logger.Printf("timer started: %s", st.Duration)
	case timer.Finished:
		s.logger.Printf("timer finished")
	case timer.Idle:
		s.logger.Printf("timer reset from %s", timer.Name(prev))
	}
}
