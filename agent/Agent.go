// Package agent defines the interface of agents which select actions
// in an environment
package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/landerbench/timestep"
)

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. SelectAction is called
// with the most recent TimeStep of the environment and returns the
// action to take next. An error means no action could be selected and
// should end the experiment.
type Policy interface {
	SelectAction(t timestep.TimeStep) (*mat.VecDense, error)
}
