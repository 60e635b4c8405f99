// Package countdown implements a deterministic environment in which
// every step gives the same reward and every episode ends after the
// same number of steps. It is useful for checking experiment plumbing
// without simulating any physics.
package countdown

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/landerbench/environment"
	ts "github.com/samuelfneumann/landerbench/timestep"
)

// ErrEpisodeOver is returned by Step when it is called on an episode
// which has already ended, or before the first Reset
var ErrEpisodeOver = errors.New("episode is over, reset the environment")

// Countdown is an environment.Environment whose episodes last exactly
// a fixed number of steps, each giving a fixed reward. Observations
// hold the number of steps left in the episode. Actions are discrete.
type Countdown struct {
	steps    int
	reward   float64
	discount float64
	actions  int
	endType  ts.EndType

	failStepAt  int
	failResetAt int
	failure     error

	current    ts.TimeStep
	resets     int
	totalSteps int
}

// Option configures a Countdown
type Option func(*Countdown)

// WithEndType sets how episodes end. The default is
// timestep.TerminalStateReached.
func WithEndType(e ts.EndType) Option {
	return func(c *Countdown) {
		c.endType = e
	}
}

// WithActions sets the number of discrete actions, which is 4 by
// default
func WithActions(n int) Option {
	return func(c *Countdown) {
		c.actions = n
	}
}

// WithDiscount sets the discount reported on each timestep
func WithDiscount(d float64) Option {
	return func(c *Countdown) {
		c.discount = d
	}
}

// WithStepFailure makes the n-th call to Step (counted from 1 over the
// lifetime of the environment) return err
func WithStepFailure(n int, err error) Option {
	return func(c *Countdown) {
		c.failStepAt = n
		c.failure = err
	}
}

// WithResetFailure makes the n-th call to Reset (counted from 1)
// return err
func WithResetFailure(n int, err error) Option {
	return func(c *Countdown) {
		c.failResetAt = n
		c.failure = err
	}
}

// New returns a new Countdown environment with episodes of the given
// number of steps, each giving the given reward. The environment must
// be Reset before it is stepped.
func New(steps int, reward float64, opts ...Option) (*Countdown, error) {
	c := &Countdown{
		steps:    steps,
		reward:   reward,
		discount: 1.0,
		actions:  4,
		endType:  ts.TerminalStateReached,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.steps < 1 {
		return nil, fmt.Errorf("new: episodes must last at least one step, "+
			"got %v", c.steps)
	}
	if c.actions < 1 {
		return nil, fmt.Errorf("new: need at least one action, got %v",
			c.actions)
	}
	if c.endType != ts.TerminalStateReached && c.endType != ts.Timeout {
		return nil, fmt.Errorf("new: illegal end type %v", c.endType)
	}

	// Step refuses to run before the first Reset
	c.current = ts.New(ts.Last, 0, c.discount, c.observation(0), 0)
	return c, nil
}

// Reset starts a new episode
func (c *Countdown) Reset() (ts.TimeStep, error) {
	c.resets++
	if c.failResetAt > 0 && c.resets == c.failResetAt {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", c.failure)
	}

	c.current = ts.New(ts.First, 0, c.discount, c.observation(0), 0)
	return c.current, nil
}

// Step takes a single environmental step
func (c *Countdown) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	c.totalSteps++
	if c.failStepAt > 0 && c.totalSteps == c.failStepAt {
		return ts.TimeStep{}, true, fmt.Errorf("step: %w", c.failure)
	}
	if c.current.Last() {
		return ts.TimeStep{}, true, fmt.Errorf("step: %w", ErrEpisodeOver)
	}

	if action.Len() != 1 {
		return ts.TimeStep{}, true, fmt.Errorf("step: actions should be "+
			"1-dimensional, received action of length %v", action.Len())
	}
	a := action.AtVec(0)
	if a != math.Trunc(a) || a < 0 || a >= float64(c.actions) {
		return ts.TimeStep{}, true, fmt.Errorf("step: illegal action %v, "+
			"expected an integer in [0, %v]", a, c.actions-1)
	}

	n := c.current.Number + 1
	step := ts.New(ts.Mid, c.reward, c.discount, c.observation(n), n)
	if n >= c.steps {
		step.SetEnd(c.endType)
	}
	c.current = step

	return step, step.Last(), nil
}

// CurrentTimeStep returns the last timestep taken in the environment
func (c *Countdown) CurrentTimeStep() ts.TimeStep {
	return c.current
}

// Steps returns the number of times Step has been called
func (c *Countdown) Steps() int {
	return c.totalSteps
}

// Resets returns the number of times Reset has been called
func (c *Countdown) Resets() int {
	return c.resets
}

// ActionSpec returns the action specification of the environment
func (c *Countdown) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(c.actions - 1)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (c *Countdown) ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(c.steps)})

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound, environment.Discrete)
}

// DiscountSpec returns the discount specification of the environment
func (c *Countdown) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{c.discount})

	return environment.NewSpec(shape, environment.Discount, bound, bound,
		environment.Continuous)
}

func (c *Countdown) observation(n int) *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(c.steps - n)})
}
