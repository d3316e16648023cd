// Package view derives what to draw from the timer state. It has no side
// effects and never touches the state it reads.
package view

import (
	"fmt"
	"time"

	"github.com/jask/focus/internal/timer"
)

const (
	PromptText   = "How long would you like to focus?"
	IdleText     = "Ready to start…"
	FinishedText = "Time's up! Press 'r' to reset"
)

type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisSuccess
	EmphasisAlert
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisSuccess:
		return "success"
	case EmphasisAlert:
		return "alert"
	default:
		return "none"
	}
}

type Label string

const (
	LabelPrompt Label = "prompt"
	LabelTimer  Label = "timer"
	LabelInput  Label = "input"
)

// Region is one labeled block of text.
type Region struct {
	Label    Label
	Text     string
	Emphasis Emphasis
}

// RenderModel is the ordered list of regions for one frame.
type RenderModel struct {
	Regions []Region
}

// Region returns the region with the given label.
func (m RenderModel) Region(l Label) (Region, bool) {
	for _, r := range m.Regions {
		if r.Label == l {
			return r, true
		}
	}
	return Region{}, false
}

// Project maps the timer state at now and the editing widget's own view to
// a render model: prompt, timer, then input.
func Project(s timer.State, now time.Time, input string) RenderModel {
	return RenderModel{Regions: []Region{
		{Label: LabelPrompt, Text: PromptText},
		timerRegion(s, now),
		{Label: LabelInput, Text: input},
	}}
}

func timerRegion(s timer.State, now time.Time) Region {
	switch st := s.(type) {
	case timer.Running:
		return Region{
			Label:    LabelTimer,
			Text:     "Time remaining: " + FormatClock(st.Remaining(now)),
			Emphasis: EmphasisSuccess,
		}
	case timer.Finished:
		return Region{Label: LabelTimer, Text: FinishedText, Emphasis: EmphasisAlert}
	default:
		return Region{Label: LabelTimer, Text: IdleText}
	}
}

// FormatClock renders d as MM:SS from its whole seconds, truncating any
// fraction. Minutes are not capped at 59 and grow past two digits.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
