// Package tracker implements Trackers, which keep track of data
// generated during an experiment
package tracker

import ts "github.com/samuelfneumann/landerbench/timestep"

// Interface Tracker keeps track of experiment data. An experiment
// calls Track on every TimeStep it sees, in order, starting with the
// First TimeStep of each episode. Trackers keep their data in memory.
type Tracker interface {
	Track(t ts.TimeStep)
}
