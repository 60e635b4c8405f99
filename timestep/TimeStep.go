// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended. A TimeStep that is not the
// last in its episode has EndType NotEnded.
type EndType int

const (
	// NotEnded is the EndType of First and Mid timesteps
	NotEnded EndType = iota

	// TerminalStateReached denotes a natural end of the episode, for
	// example the lander crashing or coming to rest. This is what
	// Gym calls "terminated".
	TerminalStateReached

	// Timeout denotes an artificial end of the episode caused by a
	// step limit. This is what Gym calls "truncated".
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "NotEnded"
	}
}

// TimeStep packages together a single timestep in an environment
type TimeStep struct {
	StepType
	Reward      float64
	Discount    float64
	Observation *mat.VecDense
	Number      int

	endType EndType
}

// New returns a new TimeStep
func New(t StepType, r, d float64, o *mat.VecDense, n int) TimeStep {
	return TimeStep{StepType: t, Reward: r, Discount: d, Observation: o,
		Number: n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd marks the TimeStep as the last in its episode with the given
// ending type
func (t *TimeStep) SetEnd(e EndType) {
	t.StepType = Last
	t.endType = e
}

// EndType returns the reason the episode ended, or NotEnded if the
// TimeStep is not the last in its episode
func (t *TimeStep) EndType() EndType {
	if !t.Last() {
		return NotEnded
	}
	return t.endType
}

// Terminated returns whether the episode ended in a terminal state
func (t *TimeStep) Terminated() bool {
	return t.EndType() == TerminalStateReached
}

// Truncated returns whether the episode was cut off by a step limit
func (t *TimeStep) Truncated() bool {
	return t.EndType() == Timeout
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Step Number:  %v  |  End: %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.Number,
		t.EndType())
}
