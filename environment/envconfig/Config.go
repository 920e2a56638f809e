// Package envconfig provides configuration structs for configuring
// environments with default parameters and tasks. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/gocab/environment"
	"github.com/samuelfneumann/gocab/environment/cabworld"
	ts "github.com/samuelfneumann/gocab/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	CabWorld EnvName = "CabWorld"
)

// TaskName stores the tasks that can be configured with this package
type TaskName string

// Tasks available for configuration
const (
	Fare TaskName = "Fare"
)

// Config implements a specific configuration of a specific environment
// and specific task.
//
// TravelTimes names a file previously written by
// cabworld.TravelTimes.Save. If it is empty, a uniform one-hour table
// is used, which is only sensible for smoke tests.
type Config struct {
	Environment    EnvName
	Task           TaskName
	Locations      int
	CostPerHour    float64
	RevenuePerHour float64
	RequestRates   []float64 `json:",omitempty"`
	TravelTimes    string    `json:",omitempty"`
	EpisodeCutoff  uint
	Discount       float64
}

// NewConfig returns a new environment Config
func NewConfig(envName EnvName, taskName TaskName, locations int,
	costPerHour, revenuePerHour float64, travelTimes string,
	episodeCutoff uint, discount float64) Config {
	return Config{
		Environment:    envName,
		Task:           taskName,
		Locations:      locations,
		CostPerHour:    costPerHour,
		RevenuePerHour: revenuePerHour,
		TravelTimes:    travelTimes,
		EpisodeCutoff:  episodeCutoff,
		Discount:       discount,
	}
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment
func (c Config) Create(seed uint64) (env.Environment, ts.TimeStep, error) {
	switch c.Environment {
	case CabWorld:
		return CreateCabWorld(c, seed)
	}

	return nil, ts.TimeStep{}, fmt.Errorf("create: cannot create "+
		"environment %v, no such environment", c.Environment)
}

// CreateCabWorld is a factory for creating the CabWorld environment
// with the configured dispatch parameters
func CreateCabWorld(c Config, seed uint64) (env.Environment, ts.TimeStep,
	error) {
	config, err := cabworld.NewConfig(c.Locations, c.CostPerHour,
		c.RevenuePerHour, c.RequestRates)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createCabWorld: %v", err)
	}

	var times *cabworld.TravelTimes
	if c.TravelTimes == "" {
		times = cabworld.UniformTravelTimes(config.Locations, 1)
	} else {
		times, err = cabworld.LoadTravelTimes(c.TravelTimes)
		if err != nil {
			return nil, ts.TimeStep{}, fmt.Errorf("createCabWorld: %v", err)
		}
	}

	starter := cabworld.NewRandomStateStarter(config, seed)

	var task cabworld.Task
	switch c.Task {
	case Fare:
		task, err = cabworld.NewFare(starter, int(c.EpisodeCutoff), config,
			times)
		if err != nil {
			return nil, ts.TimeStep{}, fmt.Errorf("createCabWorld: %v", err)
		}

	default:
		return nil, ts.TimeStep{}, fmt.Errorf("createCabWorld: CabWorld "+
			"environment has no task %v", c.Task)
	}

	return cabworld.NewEnv(task, config, times, c.Discount, seed)
}
