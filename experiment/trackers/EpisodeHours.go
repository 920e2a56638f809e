package trackers

import (
	ts "github.com/samuelfneumann/gocab/timestep"
)

// EpisodeHours tracks and saves the total simulated time of each
// episode in an experiment, summing the Wait of every timestep. For a
// cab, this is how many hours of the week each episode covered, which
// generally exceeds the episode's step count since a single ride can
// consume many hours.
//
// An episode must finish for this Tracker to save its data.
type EpisodeHours struct {
	currentHours float64
	episodeHours []float64
	filename     string
}

// NewEpisodeHours returns a new EpisodeHours Tracker which will save
// its data at the specified location filename
func NewEpisodeHours(filename string) Tracker {
	return &EpisodeHours{filename: filename}
}

// Track accumulates the simulated time of the current episode, caching
// the total when the timestep passed to it is the last in its episode
func (e *EpisodeHours) Track(t ts.TimeStep) {
	if t.First() {
		// Reset gives no time to the new episode
		return
	}

	e.currentHours += float64(t.Wait)
	if t.Last() {
		e.episodeHours = append(e.episodeHours, e.currentHours)
		e.currentHours = 0
	}
}

// Save saves the data tracked by the EpisodeHours Tracker to disk
func (e *EpisodeHours) Save() {
	save(e.filename, e.episodeHours)
}
