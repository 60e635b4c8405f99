package tracker

import (
	"testing"

	ts "github.com/samuelfneumann/landerbench/timestep"
)

// episode returns the timesteps of an episode with the given rewards,
// preceded by its First timestep
func episode(end ts.EndType, rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 1, nil, 0)}
	for i, r := range rewards {
		step := ts.New(ts.Mid, r, 1, nil, i+1)
		if i == len(rewards)-1 {
			step.SetEnd(end)
		}
		steps = append(steps, step)
	}
	return steps
}

func TestReturn(t *testing.T) {
	r := NewReturn()
	for _, step := range episode(ts.TerminalStateReached, 1, 2, 3) {
		r.Track(step)
	}
	for _, step := range episode(ts.Timeout, -1.5, -0.5) {
		r.Track(step)
	}

	// Unfinished episode
	for _, step := range episode(ts.Timeout, 10, 10)[:2] {
		r.Track(step)
	}

	want := []float64{6, -2}
	got := r.Data()
	if len(got) != len(want) || r.Len() != len(want) {
		t.Fatalf("data: want(%v) have(%v)", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("data[%v]: want(%v) have(%v)", i, want[i], got[i])
		}
	}

	// Data returns a copy
	got[0] = 100
	if r.Data()[0] != 6 {
		t.Error("data: modifying returned data changed the tracker")
	}
}

func TestReturnNonSequential(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("track: expected panic for non-sequential timesteps")
		}
	}()

	r := NewReturn()
	r.Track(ts.New(ts.First, 0, 1, nil, 0))
	r.Track(ts.New(ts.Mid, 0, 1, nil, 2))
}

func TestEpisodeLength(t *testing.T) {
	e := NewEpisodeLength()
	for _, step := range episode(ts.TerminalStateReached, 1, 2, 3) {
		e.Track(step)
	}
	for _, step := range episode(ts.Timeout, 1) {
		e.Track(step)
	}

	got := e.Data()
	if len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Errorf("data: want([3 1]) have(%v)", got)
	}
	if e.Truncated() != 1 {
		t.Errorf("truncated: want(1) have(%v)", e.Truncated())
	}
}
