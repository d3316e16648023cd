package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/focus/internal/input"
	"github.com/jask/focus/internal/loop"
	"github.com/jask/focus/internal/timer"
)

// App is the Bubble Tea model. Bubble Tea's runtime is the rendering
// backend here: it owns raw mode and the alternate screen, decodes keys and
// restores the terminal when Run returns. App owns the session and performs
// the route, apply and tick phases inside Update.
type App struct {
	session  *loop.Session
	editor   *Editor
	now      func() time.Time
	interval time.Duration
	title    string
	help     []key.Binding
	bar      progress.Model
	width    int
	height   int
}

type Options struct {
	Keymap       input.Keymap
	PollInterval time.Duration
	InputTitle   string
	Logger       *log.Logger
	// Now overrides the clock, for tests.
	Now func() time.Time
}

type tickMsg time.Time

func New(opts Options) *App {
	if opts.PollInterval <= 0 {
		opts.PollInterval = loop.DefaultPollInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	editor := NewEditor()
	router := input.NewRouter(opts.Keymap)
	session := loop.NewSession(editor, router, loop.WithLogger(opts.Logger))
	return &App{
		session:  session,
		editor:   editor,
		now:      opts.Now,
		interval: opts.PollInterval,
		title:    opts.InputTitle,
		help:     helpBindings(router.Keymap()),
		bar: progress.New(
			progress.WithGradient(string(colorTeal), string(colorGreen)),
			progress.WithoutPercentage(),
		),
	}
}

// Session exposes the underlying session, for tests and diagnostics.
func (a *App) Session() *loop.Session { return a.session }

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.tick())
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case tickMsg:
		a.session.Step(input.Key{}, false, a.now())
		return a, a.tick()
	}
	return a, a.editor.Update(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := a.now()
	if msg.Paste {
		a.editor.Paste(msg.Runes)
		a.session.Step(input.Key{}, false, now)
		return a, a.editor.TakeCmd()
	}
	// Runes that arrive in one read are handled as if typed one by one.
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		for _, r := range msg.Runes {
			k := fromTea(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt})
			if a.session.Step(k, true, now) {
				return a, tea.Quit
			}
		}
		return a, a.editor.TakeCmd()
	}
	if a.session.Step(fromTea(msg), true, now) {
		return a, tea.Quit
	}
	return a, a.editor.TakeCmd()
}

func (a *App) View() string {
	now := a.now()
	l := layout{
		width:      a.width,
		height:     a.height,
		inputTitle: a.title,
		footer:     renderHelp(a.help),
	}
	if r, ok := a.session.State().(timer.Running); ok {
		l.progress = a.progressView(r, now, l.contentWidth())
	}
	return renderFrame(a.session.Frame(now), l)
}

// progressView draws the elapsed share of r as a bar.
func (a *App) progressView(r timer.Running, now time.Time, width int) string {
	done := 1.0
	if r.Duration > 0 {
		done = min(1, float64(r.Elapsed(now))/float64(r.Duration))
	}
	a.bar.Width = boxWidth(width)
	return a.bar.ViewAs(done)
}
