package experiment

import (
	"time"

	"github.com/samuelfneumann/gocab/agent"
	env "github.com/samuelfneumann/gocab/environment"
	"github.com/samuelfneumann/gocab/experiment/trackers"
	ts "github.com/samuelfneumann/gocab/timestep"
	"github.com/samuelfneumann/gocab/utils/progressbar"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
type Online struct {
	env.Environment
	agent.Agent
	maxSteps     uint
	currentSteps uint
	trackers     []trackers.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The steps parameter determines how
// many timesteps the experiment is run for, and the t parameter is a
// slice of trackers.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, steps uint,
	t ...trackers.Tracker) *Online {
	return &Online{e, a, steps, 0, t}
}

// Register registers a trackers.Tracker with an Experiment so that
// data generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment, returning
// whether the experiment's step limit was reached during the episode
func (o *Online) RunEpisode() bool {
	step := o.Environment.Reset()
	o.Agent.ObserveFirst(step)
	o.track(step)

	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		step, _ = o.Environment.Step(action)

		// Cache the environment step in each Tracker
		o.track(step)

		// Observe the timestep and step the agent
		o.Agent.Observe(action, step)
		o.Agent.Step()
	}
	o.Agent.EndEpisode()

	return o.currentSteps >= o.maxSteps
}

// Run runs the entire experiment for all timesteps, displaying a
// progress bar over the experiment's step limit
func (o *Online) Run() {
	pbar := progressbar.New(40, int(o.maxSteps), time.Second)
	pbar.Display()
	defer pbar.Close()

	ended := false
	for !ended {
		stepsBefore := o.currentSteps
		ended = o.RunEpisode()
		pbar.IncrementBy(int(o.currentSteps - stepsBefore))
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, tracker := range o.trackers {
		tracker.Save()
	}
}

// track tracks the current timestep by caching its data in each
// Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
