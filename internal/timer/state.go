// Package timer holds the countdown lifecycle: the State sum type, the
// Command values that drive it, and the pure transition functions.
//
// Remaining time is never stored. A Running state keeps the instant it was
// started and its fixed duration, and every reader derives the remainder from
// the current instant. That keeps the display exact however irregular the
// caller's polling is.
package timer

import "time"

// State is one of Idle, Running or Finished.
type State interface {
	isState()
}

// Idle means no countdown is active.
type Idle struct{}

// Running is an active countdown.
type Running struct {
	StartedAt time.Time
	Duration  time.Duration
}

// Finished means a countdown elapsed and has not been reset.
type Finished struct{}

func (Idle) isState()     {}
func (Running) isState()  {}
func (Finished) isState() {}

// Elapsed returns how long the countdown has been running at now.
func (r Running) Elapsed(now time.Time) time.Duration {
	return now.Sub(r.StartedAt)
}

// Remaining returns the time left at now, clamped at zero.
func (r Running) Remaining(now time.Time) time.Duration {
	left := r.Duration - r.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether the countdown has reached its duration at now.
// The boundary is inclusive: elapsed == duration is expired.
func (r Running) Expired(now time.Time) bool {
	return r.Elapsed(now) >= r.Duration
}

// Name returns a short lowercase label for a state, used in logs.
func Name(s State) string {
	switch s.(type) {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}
