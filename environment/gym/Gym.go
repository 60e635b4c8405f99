//go:build gogym

// Package gym provides access to use OpenAI's Gym environments.
//
// Any environment registered with the Gym installation that GoGym
// embeds can be used, including LunarLander-v2. This is made possible
// through the Go bindings for OpenAI Gym, found at
// https://github.com/samuelfneumann/GoGym, which require cgo and a
// Python installation with Gym. The package is therefore only built
// with the gogym build tag.
package gym

import (
	"fmt"

	"github.com/samuelfneumann/gogym"
	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/landerbench/environment"
	ts "github.com/samuelfneumann/landerbench/timestep"
)

// GymEnv implements access to an OpenAI Gym environment using GoGym
//
// Gym reports a single done flag. If the environment's time limit is
// known it can be passed as the cutoff to New, and episodes ending on
// that step are reported as truncated. All other episode ends are
// reported as terminal.
type GymEnv struct {
	gogym.Environment

	currentStep ts.TimeStep
	discount    float64
	cutoff      int
}

// New returns a new GymEnv with the given name, which must be a legal
// name from the OpenAI Gym suite. A cutoff of zero means that the
// environment's time limit is unknown.
func New(name string, cutoff int, discount float64,
	seed uint64) (*GymEnv, ts.TimeStep, error) {
	goGymEnv, err := gogym.Make(name)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not create "+
			"environment: %w", err)
	}

	if _, err := goGymEnv.Seed(int(seed)); err != nil {
		goGymEnv.Close()
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not seed "+
			"environment: %w", err)
	}

	gymEnv := &GymEnv{
		Environment: goGymEnv,
		discount:    discount,
		cutoff:      cutoff,
	}

	t, err := gymEnv.Reset()
	if err != nil {
		goGymEnv.Close()
		return nil, ts.TimeStep{}, err
	}

	return gymEnv, t, nil
}

// Step takes a single environmental step
func (g *GymEnv) Step(a *mat.VecDense) (ts.TimeStep, bool, error) {
	obs, reward, done, err := g.Environment.Step(a)
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: could not step "+
			"GoGym environment: %w", err)
	}

	t := ts.New(ts.Mid, reward, g.discount, obs, g.currentStep.Number+1)
	if done {
		if g.cutoff > 0 && t.Number >= g.cutoff {
			t.SetEnd(ts.Timeout)
		} else {
			t.SetEnd(ts.TerminalStateReached)
		}
	}
	g.currentStep = t

	return t, done, nil
}

// Reset resets the environment to some starting state
func (g *GymEnv) Reset() (ts.TimeStep, error) {
	obs, err := g.Environment.Reset()
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not reset "+
			"environment: %w", err)
	}

	t := ts.New(ts.First, 0, g.discount, obs, 0)
	g.currentStep = t

	return t, nil
}

// CurrentTimeStep returns the current timestep in the environment
func (g *GymEnv) CurrentTimeStep() ts.TimeStep {
	return g.currentStep
}

// ObservationSpec returns the observation spec of the environment
func (g *GymEnv) ObservationSpec() env.Spec {
	space := g.ObservationSpace()

	var cardinality env.Cardinality
	switch space.(type) {
	case *gogym.BoxSpace:
		cardinality = env.Continuous
	case *gogym.DiscreteSpace:
		cardinality = env.Discrete
	default:
		panic("observationSpec: invalid space type, package gym supports " +
			"only GoGym's BoxSpace or DiscreteSpace")
	}

	return newSpec(space.Low()[0], space.High()[0], env.Observation,
		cardinality)
}

// ActionSpec returns the action specification of the environment
func (g *GymEnv) ActionSpec() env.Spec {
	space := g.ActionSpace()

	var cardinality env.Cardinality
	switch space.(type) {
	case *gogym.BoxSpace:
		cardinality = env.Continuous
	case *gogym.DiscreteSpace:
		cardinality = env.Discrete
	default:
		panic("actionSpec: invalid space type, package gym supports " +
			"only GoGym's BoxSpace or DiscreteSpace")
	}

	return newSpec(space.Low()[0], space.High()[0], env.Action, cardinality)
}

// DiscountSpec returns the discount specification of the environment
func (g *GymEnv) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	low := mat.NewVecDense(1, []float64{g.discount})

	return env.NewSpec(shape, env.Discount, low, low, env.Continuous)
}

// Close performs resource cleanup after the environment is no longer
// needed
func (g *GymEnv) Close() error {
	g.Environment.Close()
	return nil
}

func newSpec(low, high *mat.VecDense, t env.SpecType,
	cardinality env.Cardinality) env.Spec {
	shape := mat.NewVecDense(low.Len(), nil)
	return env.NewSpec(shape, t, low, high, cardinality)
}
