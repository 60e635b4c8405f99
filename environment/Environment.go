// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/landerbench/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when episodes should end. If an episode should end,
// End marks the TimeStep as Last with the appropriate EndType and
// returns true.
type Ender interface {
	End(*ts.TimeStep) bool
}

// Task implements the reward scheme and episode termination for taking
// actions in some environment
type Task interface {
	Starter
	Ender
	GetReward(state, action, nextState *mat.VecDense) float64
	AtGoal(state *mat.VecDense) bool
}

// Environment implements a simulated environment. An Environment is
// not safe for concurrent use.
//
// Reset starts a new episode and returns its First TimeStep. Step
// takes an action and returns the resulting TimeStep along with
// whether the episode has ended, either because a terminal state was
// reached or because the episode was truncated. The TimeStep's EndType
// tells the two apart.
type Environment interface {
	Reset() (ts.TimeStep, error)
	Step(action *mat.VecDense) (ts.TimeStep, bool, error)
	CurrentTimeStep() ts.TimeStep
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}

// Closer is an Environment that holds resources which must be released
// once it is no longer needed
type Closer interface {
	Environment
	Close() error
}
