package experiment

import (
	"fmt"

	"github.com/samuelfneumann/landerbench/agent"
	env "github.com/samuelfneumann/landerbench/environment"
	"github.com/samuelfneumann/landerbench/experiment/tracker"
	ts "github.com/samuelfneumann/landerbench/timestep"
)

// Episodic is an Experiment that runs a policy for a fixed number of
// episodes. Episodes run one after another on a single environment.
type Episodic struct {
	env.Environment
	agent.Policy
	episodes  int
	completed int
	trackers  []tracker.Tracker
}

// NewEpisodic creates and returns a new episodic experiment on a given
// environment with a given policy. The episodes parameter determines
// how many episodes the experiment is run for, and the t parameter
// is a slice of tracker.Tracker which determine what data is tracked.
func NewEpisodic(e env.Environment, p agent.Policy, episodes int,
	t ...tracker.Tracker) *Episodic {
	return &Episodic{
		Environment: e,
		Policy:      p,
		episodes:    episodes,
		trackers:    t,
	}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked
func (e *Episodic) Register(t tracker.Tracker) {
	e.trackers = append(e.trackers, t)
}

// Episodes returns the number of episodes the experiment runs for
func (e *Episodic) Episodes() int {
	return e.episodes
}

// Completed returns the number of episodes that have finished
func (e *Episodic) Completed() int {
	return e.completed
}

// RunEpisode runs a single episode of the experiment. The episode
// ends once the environment reports that it is done, whether it was
// terminated or truncated.
func (e *Episodic) RunEpisode() error {
	episode := e.completed

	step, err := e.Environment.Reset()
	if err != nil {
		return fmt.Errorf("episode %v: %w", episode, err)
	}
	e.track(step)

	for done := false; !done; {
		action, err := e.Policy.SelectAction(step)
		if err != nil {
			return fmt.Errorf("episode %v: select action: %w", episode, err)
		}

		step, done, err = e.Environment.Step(action)
		if err != nil {
			return fmt.Errorf("episode %v: %w", episode, err)
		}

		// Trackers rely on the last step being marked as such
		done = done || step.Last()
		if done && !step.Last() {
			step.SetEnd(ts.TerminalStateReached)
		}

		e.track(step)
	}

	e.completed++
	return nil
}

// Run runs all remaining episodes of the experiment
func (e *Episodic) Run() error {
	for e.completed < e.episodes {
		if err := e.RunEpisode(); err != nil {
			return err
		}
	}
	return nil
}

// track tracks the current timestep by sending it to each tracker
func (e *Episodic) track(t ts.TimeStep) {
	for _, tr := range e.trackers {
		tr.Track(t)
	}
}
