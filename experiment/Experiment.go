// Package experiment implements functionality for running an
// experiment
package experiment

import (
	ts "github.com/samuelfneumann/gocab/timestep"

	"github.com/samuelfneumann/gocab/experiment/trackers"
)

// Experiment outlines structs that can run experiments. Experiments
// send each environment TimeStep to their trackers.Tracker values,
// which cache whatever data they are interested in; Save then writes
// all cached data to disk, usually after the experiment has finished.
// Run runs episodes until the maximum timestep limit is reached, and
// RunEpisode runs a single episode.
type Experiment interface {
	Run()
	RunEpisode() bool // Returns whether the step limit was reached

	// Tracks the current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save()

	// Register adds a new Tracker to the (possibly already running)
	// experiment. Useful to track data only after a specified event.
	Register(t trackers.Tracker)
}

// Type describes the types of experiments available
type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)
