// Package experiment implements functionality for running an experiment
package experiment

import (
	"github.com/samuelfneumann/landerbench/experiment/tracker"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send every environment TimeStep to their Trackers, which
// keep the data in memory. The Run() method will run all episodes
// until the experiment's episode limit is reached, or an error occurs.
// The RunEpisode() method will run a single episode.
//
// Experiments do no error recovery: the first error from the
// environment or the policy ends the experiment.
type Experiment interface {
	Run() error
	RunEpisode() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}
