//go:build gogym

package gym_test

import (
	"os"
	"testing"

	"github.com/samuelfneumann/gogym"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/landerbench/agent/random"
	"github.com/samuelfneumann/landerbench/environment"
	"github.com/samuelfneumann/landerbench/environment/box2d/lunarlander"
	"github.com/samuelfneumann/landerbench/environment/gym"
	"github.com/samuelfneumann/landerbench/experiment"
	"github.com/samuelfneumann/landerbench/experiment/tracker"
)

func TestMain(m *testing.M) {
	code := m.Run()
	gogym.Close()
	os.Exit(code)
}

func TestLunarLander(t *testing.T) {
	env, step, err := gym.New("LunarLander-v2", lunarlander.DefaultCutoff,
		0.99, 123)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer env.Close()

	if !step.First() || step.Number != 0 {
		t.Errorf("new: expected first step numbered 0, got %v", step)
	}
	if n := env.ObservationSpec().Shape.Len(); n != lunarlander.StateObservations {
		t.Errorf("observationSpec: want(%v) have(%v)",
			lunarlander.StateObservations, n)
	}
	if c := env.ActionSpec().Cardinality; c != environment.Discrete {
		t.Errorf("actionSpec: expected discrete actions, got %v", c)
	}

	policy, err := random.New(env.ActionSpec(), 124)
	if err != nil {
		t.Fatalf("random: %v", err)
	}

	episodes := 3
	returns := tracker.NewReturn()
	lengths := tracker.NewEpisodeLength()
	exp := experiment.NewEpisodic(env, policy, episodes, returns, lengths)
	if err := exp.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	if returns.Len() != episodes {
		t.Errorf("run: want(%v) returns have(%v)", episodes, returns.Len())
	}
	for i, l := range lengths.Data() {
		if l <= 0 || l > lunarlander.DefaultCutoff {
			t.Errorf("episode %v: length %v outside (0, %v]", i, l,
				lunarlander.DefaultCutoff)
		}
	}
}

func TestSeeded(t *testing.T) {
	var starts [2]*mat.VecDense
	for i := range starts {
		env, step, err := gym.New("LunarLander-v2",
			lunarlander.DefaultCutoff, 0.99, 7)
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		starts[i] = step.Observation
		env.Close()
	}

	if !mat.Equal(starts[0], starts[1]) {
		t.Errorf("new: equal seeds gave different first observations %v "+
			"and %v", mat.Formatted(starts[0].T()),
			mat.Formatted(starts[1].T()))
	}
}
