//go:build gogym

package envconfig

import (
	env "github.com/samuelfneumann/landerbench/environment"
	"github.com/samuelfneumann/landerbench/environment/gym"
	ts "github.com/samuelfneumann/landerbench/timestep"
)

const defaultEnvironment = Gym

// Names of the Gym environments created for the Gym EnvName
const (
	GymDiscrete   = "LunarLander-v2"
	GymContinuous = "LunarLanderContinuous-v2"
)

// createGym creates Lunar Lander in Python Gym, truncating episodes
// after cutoff steps
func createGym(continuousActions bool, cutoff int, seed uint64,
	discount float64) (env.Environment, ts.TimeStep, error) {
	name := GymDiscrete
	if continuousActions {
		name = GymContinuous
	}

	g, step, err := gym.New(name, cutoff, discount, seed)
	if err != nil {
		return nil, ts.TimeStep{}, err
	}
	return g, step, nil
}
