package tracker

import ts "github.com/samuelfneumann/landerbench/timestep"

// EpisodeLength tracks the lengths of episodes in an experiment, along
// with how each episode ended.
//
// Note that an episode must finish for this Tracker to record its
// length.
type EpisodeLength struct {
	episodeLengths []int
	truncated      int
}

// NewEpisodeLength returns a new EpisodeLength Tracker
func NewEpisodeLength() *EpisodeLength {
	return &EpisodeLength{}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in the episode
func (e *EpisodeLength) Track(t ts.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, t.Number)
		if t.Truncated() {
			e.truncated++
		}
	}
}

// Data returns a copy of the lengths of all finished episodes
func (e *EpisodeLength) Data() []int {
	data := make([]int, len(e.episodeLengths))
	copy(data, e.episodeLengths)
	return data
}

// Truncated returns the number of finished episodes which were
// truncated rather than reaching a terminal state
func (e *EpisodeLength) Truncated() int {
	return e.truncated
}
