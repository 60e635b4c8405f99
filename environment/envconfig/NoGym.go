//go:build !gogym

package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/landerbench/environment"
	ts "github.com/samuelfneumann/landerbench/timestep"
)

const defaultEnvironment = LunarLander

// ErrNoGym is returned when creating the Gym environment in a binary
// built without the gogym build tag
var ErrNoGym = fmt.Errorf("environment %v requires the gogym build tag", Gym)

func createGym(bool, int, uint64, float64) (env.Environment, ts.TimeStep,
	error) {
	return nil, ts.TimeStep{}, fmt.Errorf("create: %w", ErrNoGym)
}
