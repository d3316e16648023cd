package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func allStates() []State {
	return []State{
		Idle{},
		Running{StartedAt: epoch, Duration: 25 * time.Second},
		Finished{},
	}
}

func TestApplyQuitSignalsTermination(t *testing.T) {
	for _, s := range allStates() {
		res := Apply(s, Quit{}, epoch.Add(time.Minute))
		require.True(t, res.Quit, "state %s", Name(s))
		require.Equal(t, s, res.State)
		require.False(t, res.ClearInput)
	}
}

func TestApplySubmitValidStartsRunning(t *testing.T) {
	cases := map[string]time.Duration{
		"0":  0,
		"5":  5 * time.Second,
		"25": 25 * time.Second,
		"90": 90 * time.Second,
	}
	for text, want := range cases {
		t.Run(text, func(t *testing.T) {
			now := epoch.Add(3 * time.Second)
			for _, s := range allStates() {
				res := Apply(s, Submit{Text: text}, now)
				require.Equal(t, Running{StartedAt: now, Duration: want}, res.State)
				require.True(t, res.ClearInput)
				require.False(t, res.Quit)
			}
		})
	}
}

func TestApplySubmitMalformedIsIgnored(t *testing.T) {
	for _, text := range []string{"", "-3", "12.5", "abc", "+5", " 5", "5 ", "1e3", "٣"} {
		t.Run(text, func(t *testing.T) {
			for _, s := range allStates() {
				res := Apply(s, Submit{Text: text}, epoch.Add(time.Hour))
				require.Equal(t, s, res.State)
				require.False(t, res.ClearInput)
				require.False(t, res.Quit)
			}
		})
	}
}

func TestApplyResetIsIdempotent(t *testing.T) {
	for _, s := range allStates() {
		once := Apply(s, Reset{}, epoch)
		twice := Apply(once.State, Reset{}, epoch)
		require.Equal(t, Idle{}, once.State)
		require.Equal(t, Idle{}, twice.State)
		require.False(t, twice.ClearInput)
	}
}

func TestApplyNoneLeavesStateAlone(t *testing.T) {
	for _, s := range allStates() {
		require.Equal(t, Result{State: s}, Apply(s, None{}, epoch))
	}
}

func TestTickBoundaryIsInclusive(t *testing.T) {
	r := Running{StartedAt: epoch, Duration: 5 * time.Second}

	require.Equal(t, r, Tick(r, epoch.Add(4999*time.Millisecond)))
	require.Equal(t, Finished{}, Tick(r, epoch.Add(5*time.Second)))
	require.Equal(t, Finished{}, Tick(r, epoch.Add(5001*time.Millisecond)))
}

func TestTickZeroDurationFinishesImmediately(t *testing.T) {
	r := Running{StartedAt: epoch, Duration: 0}
	require.Equal(t, Finished{}, Tick(r, epoch))
}

func TestTickExpiryIsMonotonic(t *testing.T) {
	r := Running{StartedAt: epoch, Duration: 10 * time.Second}
	var finishedAt time.Time
	for ms := 0; ms <= 20000; ms += 250 {
		now := epoch.Add(time.Duration(ms) * time.Millisecond)
		next := Tick(r, now)
		if !finishedAt.IsZero() {
			require.Equal(t, Finished{}, next, "resurrected at %v", now.Sub(epoch))
			continue
		}
		if _, ok := next.(Finished); ok {
			finishedAt = now
		}
	}
	require.Equal(t, epoch.Add(10*time.Second), finishedAt)
}

func TestTickIdleAndFinishedAreStable(t *testing.T) {
	require.Equal(t, Idle{}, Tick(Idle{}, epoch.Add(time.Hour)))
	require.Equal(t, Finished{}, Tick(Finished{}, epoch.Add(time.Hour)))
}

func TestRunningRemainingClampsAtZero(t *testing.T) {
	r := Running{StartedAt: epoch, Duration: 2 * time.Minute}
	require.Equal(t, 2*time.Minute, r.Remaining(epoch))
	require.Equal(t, 90*time.Second, r.Remaining(epoch.Add(30*time.Second)))
	require.Equal(t, time.Duration(0), r.Remaining(epoch.Add(3*time.Minute)))
}

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "007", want: 7 * time.Second},
		{in: "3600", want: time.Hour},
		{in: "9223372036", want: 9223372036 * time.Second},
		{in: "9223372037", wantErr: true},
		{in: "99999999999999999999", wantErr: true},
		{in: "", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "1.0", wantErr: true},
		{in: "10s", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeconds(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestName(t *testing.T) {
	require.Equal(t, "idle", Name(Idle{}))
	require.Equal(t, "running", Name(Running{}))
	require.Equal(t, "finished", Name(Finished{}))
	require.Equal(t, "unknown", Name(nil))
}
