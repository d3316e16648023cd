// Package lineterm is a loop.Backend for plain line-oriented streams, used
// when stdin or stdout is not a terminal. Each input line becomes one key
// event per character followed by enter, and frames are printed as text
// lines only where a region changed.
//
// End of input ends the program even while a countdown is running, so
// `echo 5 | focus` prints the start of the countdown and exits. Keep stdin
// open to wait for the alert.
package lineterm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/focus/internal/input"
	"github.com/jask/focus/internal/loop"
	"github.com/jask/focus/internal/view"
)

// maxLine bounds one input line. Longer lines are dropped whole.
const maxLine = 4096

var errLineTooLong = errors.New("line too long")

// Size is reported for every frame; a stream has no real geometry.
var Size = loop.Size{Width: 80, Height: 24}

type lineResult struct {
	line string
	err  error
}

// Terminal reads lines from in and writes frames to out.
type Terminal struct {
	in      io.Reader
	out     io.Writer
	lines   chan lineResult
	done    chan struct{}
	pending []input.Key
	err     error
	last    map[view.Label]string
	styles  map[view.Emphasis]lipgloss.Style
}

func New(in io.Reader, out io.Writer) *Terminal {
	r := lipgloss.NewRenderer(out)
	return &Terminal{
		in:   in,
		out:  out,
		last: make(map[view.Label]string),
		styles: map[view.Emphasis]lipgloss.Style{
			view.EmphasisNone:    r.NewStyle(),
			view.EmphasisSuccess: r.NewStyle().Foreground(lipgloss.Color("2")),
			view.EmphasisAlert:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		},
	}
}

// Open starts the reader. Reads block on the underlying stream, so they run
// on their own goroutine and hand lines over a channel; nothing else is
// shared with it.
func (t *Terminal) Open() error {
	if t.lines != nil {
		return errors.New("lineterm: already open")
	}
	t.lines = make(chan lineResult)
	t.done = make(chan struct{})
	go t.read()
	return nil
}

func (t *Terminal) read() {
	br := bufio.NewReaderSize(t.in, maxLine)
	for {
		line, err := readLine(br)
		if errors.Is(err, errLineTooLong) {
			continue
		}
		res := lineResult{line: line, err: err}
		select {
		case t.lines <- res:
		case <-t.done:
			return
		}
		if err != nil {
			return
		}
	}
}

// readLine returns the next line without its terminator. A line that does
// not fit the reader's buffer is consumed and reported as errLineTooLong.
func readLine(br *bufio.Reader) (string, error) {
	line, isPrefix, err := br.ReadLine()
	if err != nil {
		return "", err
	}
	if !isPrefix {
		return string(line), nil
	}
	for isPrefix {
		if _, isPrefix, err = br.ReadLine(); err != nil {
			return "", err
		}
	}
	return "", errLineTooLong
}

// Close stops handing over lines. A read already blocked on the stream is
// abandoned.
func (t *Terminal) Close() error {
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
	return nil
}

func (t *Terminal) Size() (loop.Size, error) { return Size, nil }

// Poll returns the next decoded key, waiting up to timeout for a new line.
func (t *Terminal) Poll(ctx context.Context, timeout time.Duration) (input.Key, bool, error) {
	if len(t.pending) > 0 {
		return t.pop(), true, nil
	}
	if t.err != nil {
		return input.Key{}, false, t.err
	}
	if t.lines == nil {
		return input.Key{}, false, errors.New("lineterm: poll before open")
	}

	wait := time.NewTimer(timeout)
	defer wait.Stop()
	select {
	case <-ctx.Done():
		return input.Key{}, false, ctx.Err()
	case <-wait.C:
		return input.Key{}, false, nil
	case res := <-t.lines:
		if res.err != nil {
			t.err = res.err
			return input.Key{}, false, res.err
		}
		t.pending = DecodeLine(res.line)
		return t.pop(), true, nil
	}
}

func (t *Terminal) pop() input.Key {
	k := t.pending[0]
	t.pending = t.pending[1:]
	return k
}

// Draw prints each region whose text changed since the last frame. Empty
// regions are not printed, and the input region waits until the current
// line has been fully replayed.
func (t *Terminal) Draw(f loop.Frame) error {
	var b strings.Builder
	for _, r := range f.Model.Regions {
		if r.Label == view.LabelInput && len(t.pending) > 0 {
			continue
		}
		if t.last[r.Label] == r.Text {
			continue
		}
		t.last[r.Label] = r.Text
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		b.WriteString(t.styles[r.Emphasis].Render(r.Text))
		b.WriteByte('\n')
	}
	if b.Len() == 0 {
		return nil
	}
	if _, err := io.WriteString(t.out, b.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// DecodeLine turns one input line into the keys that would type it and
// an enter to commit it.
func DecodeLine(line string) []input.Key {
	line = strings.TrimRight(line, "\r")
	keys := make([]input.Key, 0, len(line)+1)
	for _, r := range line {
		if r == ' ' {
			keys = append(keys, input.Named(input.CodeSpace))
			continue
		}
		keys = append(keys, input.Char(r))
	}
	return append(keys, input.Named(input.CodeEnter))
}
