package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jask/focus/internal/input"
	"github.com/jask/focus/internal/view"
)

// DefaultPollInterval bounds each wait for input and so sets the tick rate.
const DefaultPollInterval = 100 * time.Millisecond

// Size is the terminal client area in cells.
type Size struct {
	Width  int
	Height int
}

// Frame is what the backend is asked to draw.
type Frame struct {
	Size  Size
	Model view.RenderModel
}

// Backend is the terminal the loop draws to and reads keys from.
type Backend interface {
	// Open prepares the terminal for interactive use.
	Open() error
	// Close restores the terminal. It is called once after a successful Open,
	// on every exit path.
	Close() error
	Size() (Size, error)
	// Poll waits up to timeout for a key. ok is false when the timeout
	// elapsed first. io.EOF means no more input will arrive.
	Poll(ctx context.Context, timeout time.Duration) (k input.Key, ok bool, err error)
	Draw(f Frame) error
}

// Clock reports the current instant.
type Clock func() time.Time

type RunOptions struct {
	PollInterval time.Duration
	Now          Clock
}

func (o RunOptions) withDefaults() RunOptions {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Run drives s against b until a quit command, end of input, context
// cancellation or a fatal backend error. The terminal is restored before Run
// returns; a restore failure is joined to any loop error.
func Run(ctx context.Context, b Backend, s *Session, opts RunOptions) (err error) {
	opts = opts.withDefaults()

	if err := b.Open(); err != nil {
		return fmt.Errorf("setup terminal: %w", err)
	}
	defer func() {
		if cerr := b.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("restore terminal: %w", cerr))
		}
	}()

	size, err := b.Size()
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}
	if err := b.Draw(Frame{Size: size, Model: s.Frame(opts.Now())}); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}

	for {
		if size, err = b.Size(); err != nil {
			return fmt.Errorf("read terminal size: %w", err)
		}

		k, ok, err := b.Poll(ctx, opts.PollInterval)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("poll input: %w", err)
		}

		now := opts.Now()
		quit := s.Step(k, ok, now)
		if err := b.Draw(Frame{Size: size, Model: s.Frame(now)}); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
		if quit {
			return nil
		}
	}
}
