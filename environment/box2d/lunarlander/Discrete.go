package lunarlander

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/landerbench/environment"
	"github.com/samuelfneumann/landerbench/timestep"
)

// Discrete implements the lunar lander environment with discrete
// actions. Actions are 1-dimensional vectors holding one of:
//
//	0. Do nothing
//	1. Fire the left orientation engine
//	2. Fire the main engine
//	3. Fire the right orientation engine
//
// Engines are always fired at full power. See Continuous for a
// description of the state observations.
//
// Discrete implements the environment.Environment interface.
type Discrete struct {
	*lunarLander
}

// NewDiscrete returns a new lunar lander environment with discrete
// actions
func NewDiscrete(task environment.Task, discount float64,
	seed uint64) (environment.Environment, timestep.TimeStep, error) {
	l, step, err := newLunarLander(task, discount, seed)
	if err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("newDiscrete: %v", err)
	}
	return &Discrete{l}, step, nil
}

// ActionSpec returns the action specification of the environment
func (d *Discrete) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{float64(MinDiscreteAction)})
	upperBound := mat.NewVecDense(1, []float64{float64(MaxDiscreteAction)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// Step takes a single environmental step
func (d *Discrete) Step(action *mat.VecDense) (timestep.TimeStep, bool,
	error) {
	if action.Len() != 1 {
		return timestep.TimeStep{}, true, fmt.Errorf("step: actions should "+
			"be 1-dimensional, received action of length %v", action.Len())
	}

	a := action.AtVec(0)
	if a != math.Trunc(a) {
		return timestep.TimeStep{}, true, fmt.Errorf("step: illegal "+
			"action selection, expected an integer, received action = %v", a)
	}

	switch int(a) {
	case 0:
		step, last := d.step(0.0, 0.0)
		return step, last, nil

	case 1:
		step, last := d.step(0.0, -1.0)
		return step, last, nil

	case 2:
		step, last := d.step(1.0, 0.0)
		return step, last, nil

	case 3:
		step, last := d.step(0.0, 1.0)
		return step, last, nil
	}

	return timestep.TimeStep{}, true, fmt.Errorf("step: illegal action "+
		"selection, expected action ϵ [0, 1, 2, 3], received action = %v", a)
}
