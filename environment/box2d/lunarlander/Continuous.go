package lunarlander

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/landerbench/environment"
	"github.com/samuelfneumann/landerbench/timestep"
)

// Continuous implements the lunar lander environment. In this
// environment, an agent can fly a ship within a viewport. At the
// bottom of the viewport is the moon, and the agent can land the ship
// on the moon. There is a landing pad on the moon, which is a
// completely horizontal portion of the moon in the middle of the
// viewport.
//
// State observations are vectors consisting of the following features
// in the following order:
//
//	1. The x distance from the lander to the center of the viewport,
//	   in units of half the viewport width
//	2. The y distance from the lander's legs to the landing pad, in
//	   units of half the viewport height
//	3. The x velocity of the lander
//	4. The y velocity of the lander
//	5. The angle of the lander
//	6. The angular velocity of the lander
//	7. Whether the left leg has contact with the ground
//	   Bounds: feature in the set {0, 1}
//	8. Whether the right leg has contact with the ground
//	   Bounds: feature in the set {0, 1}
//
// This follows the observations of Gym's LunarLander-v3. Unlike earlier
// versions of this environment there is no boundary around the
// viewport: flying off either side ends the episode with a crash.
//
// Any Task used in this struct must have a specific range of values
// for its Starter. The Starter should return a vector of 3 elements
// in the following order:
//
//	1. The x position to start at in the Box2D world. The specific
//	   values that this element can take on must be in the interval
//	   [0.05 * (ViewportW / Scale), 0.95 * (ViewportW / Scale)].
//	   The default value to use in the Starter is InitialX for the
//	   lower and upper bounds.
//	2. The y position to start at in the Box2D world. The specific
//	   values that this element can take on must be in the interval
//	   [ViewportH / Scale / 2, InitialY].
//	   The default value to use in the Starter is InitialY for the
//	   lower and upper bounds.
//	3. The initial random force to apply to the lander. This can be any
//	   value, but the default is InitialRandom for the lower and
//	   upper bounds for the Starter.
//
// Actions are 2-dimensional and continuous. The first coordinate
// corresponds to power that the main engine should apply and is
// bounded between [-1, 1]. The sub-interval [-1, 0] results in the
// main engine staying off. The sub-interval (0, 1] throttles the
// main engine from 50% to 100% power. The second action coordinate
// corresponds to the power to apply to one of the orientation/side
// engines. The interval [-1, -0.5) fires the left engine from 100% to
// 50% power. The interval [-0.5, 0.5] results in both orientation
// engines being off. The interval (0.5, 1.0] fires the right engine
// from 50% to 100% power. Actions in each dimension outside of the
// range [-1, 1] are clipped.
//
// Continuous implements the environment.Environment interface.
type Continuous struct {
	*lunarLander
}

// NewContinuous returns a new lunar lander environment with continuous
// actions
func NewContinuous(task environment.Task, discount float64,
	seed uint64) (environment.Environment, timestep.TimeStep, error) {
	l, step, err := newLunarLander(task, discount, seed)
	if err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("newContinuous: %v", err)
	}
	return &Continuous{l}, step, nil
}

// ActionSpec returns the action specification of the environment
func (c *Continuous) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(2, nil)
	lowerBound := mat.NewVecDense(2, []float64{MinContinuousAction,
		MinContinuousAction})
	upperBound := mat.NewVecDense(2, []float64{MaxContinuousAction,
		MaxContinuousAction})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Continuous)
}

// Step takes a single environmental step
func (c *Continuous) Step(action *mat.VecDense) (timestep.TimeStep, bool,
	error) {
	if action.Len() != 2 {
		return timestep.TimeStep{}, true, fmt.Errorf("step: actions should "+
			"be 2-dimensional, received action of length %v", action.Len())
	}

	step, last := c.step(action.AtVec(0), action.AtVec(1))
	return step, last, nil
}
