package timer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrInvalidDuration is returned by ParseSeconds for text that is not a
// non-negative whole number of seconds.
var ErrInvalidDuration = errors.New("invalid duration")

// maxSeconds is the largest count of seconds a time.Duration can hold.
const maxSeconds = math.MaxInt64 / int64(time.Second)

// Result is the outcome of applying one command.
type Result struct {
	State State
	// Quit is set when the loop must stop after this iteration.
	Quit bool
	// ClearInput is set when the input buffer must be emptied.
	ClearInput bool
}

// Apply returns the state that follows current when cmd is applied at now.
// Invalid submissions leave current untouched and request no effects.
func Apply(current State, cmd Command, now time.Time) Result {
	switch c := cmd.(type) {
	case Quit:
		return Result{State: current, Quit: true}
	case Submit:
		d, err := ParseSeconds(c.Text)
		if err != nil {
			return Result{State: current}
		}
		return Result{State: Running{StartedAt: now, Duration: d}, ClearInput: true}
	case Reset:
		return Result{State: Idle{}}
	default:
		return Result{State: current}
	}
}

// Tick re-evaluates time-based transitions. Only a Running state whose
// elapsed time has reached its duration changes, to Finished.
func Tick(current State, now time.Time) State {
	r, ok := current.(Running)
	if !ok {
		return current
	}
	if r.Expired(now) {
		return Finished{}
	}
	return r
}

// ParseSeconds parses text as a whole number of seconds. Only ASCII digits
// are accepted: no sign, no surrounding space, no fraction.
func ParseSeconds(text string) (time.Duration, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
		}
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil || n > maxSeconds {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidDuration, text)
	}
	return time.Duration(n) * time.Second, nil
}
