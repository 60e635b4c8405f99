// Package envconfig provides configuration structs for configuring
// environments with default physical parameters and tasks. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/landerbench/environment"
	"github.com/samuelfneumann/landerbench/environment/box2d/lunarlander"
	ts "github.com/samuelfneumann/landerbench/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	LunarLander EnvName = "LunarLander"

	// Gym runs Lunar Lander in Python Gym through GoGym. It is only
	// available in binaries built with the gogym build tag.
	Gym EnvName = "Gym"
)

// TaskName stores the tasks that can be configured with this package.
// Note that not all tasks can be used with all environments. The tasks
// that can be used with each environment are as follows:
//
//	Environment			Task
//	LunarLander			Land
//	Gym				Land
type TaskName string

// Tasks available for configuration
const (
	Land TaskName = "Land"
)

// Config implements a specific configuration of a specific environment
// and specific task. Not all environments can have all tasks.
type Config struct {
	Environment       EnvName
	Task              TaskName
	ContinuousActions bool
	EpisodeCutoff     uint
	Discount          float64
}

// NewConfig returns a new environment Config
func NewConfig(envName EnvName, taskName TaskName, continuousActions bool,
	episodeCutoff uint, discount float64) Config {
	return Config{
		Environment:       envName,
		Task:              taskName,
		ContinuousActions: continuousActions,
		EpisodeCutoff:     episodeCutoff,
		Discount:          discount,
	}
}

// Default returns the configuration of discrete-action Lunar Lander
// with Gym's default episode cutoff. Binaries built with the gogym
// build tag default to the Gym environment, all others to the
// in-process LunarLander.
func Default() Config {
	return NewConfig(defaultEnvironment, Land, false,
		uint(lunarlander.DefaultCutoff), 0.99)
}

// String returns a short description of the configured environment
func (c Config) String() string {
	actions := "Discrete"
	if c.ContinuousActions {
		actions = "Continuous"
	}
	return fmt.Sprintf("%v%v (task: %v, cutoff: %v, discount: %v)",
		c.Environment, actions, c.Task, c.EpisodeCutoff, c.Discount)
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create(seed uint64) (env.Environment, ts.TimeStep, error) {
	if c.EpisodeCutoff == 0 {
		return nil, ts.TimeStep{}, fmt.Errorf("create: episode cutoff " +
			"must be positive")
	}

	switch c.Environment {
	case LunarLander:
		return CreateLunarLander(c.ContinuousActions, c.Task,
			int(c.EpisodeCutoff), seed, c.Discount)

	case Gym:
		if c.Task != Land {
			return nil, ts.TimeStep{}, fmt.Errorf("create: Gym "+
				"environment has no task %v", c.Task)
		}
		return createGym(c.ContinuousActions, int(c.EpisodeCutoff), seed,
			c.Discount)
	}

	return nil, ts.TimeStep{}, fmt.Errorf("create: cannot create "+
		"environment %v, no such environment", c.Environment)
}

// CreateLunarLander is a factory for creating the LunarLander
// environment with default physical parameters and default task
// parameters.
func CreateLunarLander(continuousActions bool, taskName TaskName,
	cutoff int, seed uint64, discount float64) (env.Environment, ts.TimeStep,
	error) {
	s := lunarlander.NewDefaultStarter(seed)

	var task env.Task
	switch taskName {
	case Land:
		task = lunarlander.NewLand(s, cutoff)

	default:
		return nil, ts.TimeStep{}, fmt.Errorf("createLunarLander: "+
			"LunarLander environment has no task %v", taskName)
	}

	if continuousActions {
		return lunarlander.NewContinuous(task, discount, seed)
	}
	return lunarlander.NewDiscrete(task, discount, seed)
}
