package cabworld

import (
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gocab/environment"
	ts "github.com/samuelfneumann/gocab/timestep"
)

const (
	// ObservationDims is the dimensionality of observation vectors:
	// (location, hour, day)
	ObservationDims int = 3

	// ActionDims is the dimensionality of action vectors:
	// (pickup, drop)
	ActionDims int = 2
)

// Env wraps a CabWorld in the environment.Environment interface so
// that agents and experiments can drive it through vector-valued
// observations and actions. The Env tracks the current TimeStep
// between calls; the underlying CabWorld remains pure and can be used
// directly for explicit-state queries.
//
// Observation vectors are (location, hour, day) and action vectors are
// (pickup, drop), both in the same field order as the State and Action
// structs.
type Env struct {
	*CabWorld
	discount    float64
	currentStep ts.TimeStep
}

// NewEnv constructs the environment described by the task, config, and
// travel-time table, returning it along with the first timestep of the
// first episode
func NewEnv(task Task, config Config, times *TravelTimes, discount float64,
	seed uint64) (*Env, ts.TimeStep, error) {
	core, err := New(task, config, times, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newEnv: %v", err)
	}

	env := &Env{CabWorld: core, discount: discount}
	firstStep := env.Reset()

	return env, firstStep, nil
}

// Reset resets the environment between episodes, drawing a new
// starting state from the Starter, and returns the first timestep of
// the new episode
func (e *Env) Reset() ts.TimeStep {
	start := e.Start()

	// A malformed Starter is a construction bug, not a runtime
	// condition
	state := VecState(start)
	if err := e.validate(state, Idle); err != nil {
		panic(fmt.Sprintf("reset: illegal starting state: %v", err))
	}

	startStep := ts.New(ts.First, 0, e.discount, start, 0)
	e.currentStep = startStep

	return startStep
}

// Step takes one environmental step given a (pickup, drop) action
// vector and returns the next timestep and whether it is the last in
// the episode. The action must be 2-dimensional and denote either a
// sampled ride request or the (0, 0) idle action; anything else causes
// a panic.
func (e *Env) Step(action mat.Vector) (ts.TimeStep, bool) {
	state := VecState(e.currentStep.Observation)

	next, reward, wait, err := e.CabWorld.Step(state, VecAction(action))
	if err != nil {
		panic(fmt.Sprintf("step: %v", err))
	}

	nextStep := ts.NewWait(ts.Mid, reward, e.discount, StateVec(next),
		e.currentStep.Number+1, wait)
	e.End(&nextStep)

	e.currentStep = nextStep
	return nextStep, nextStep.Last()
}

// CurrentTimeStep returns the last TimeStep of the environment
func (e *Env) CurrentTimeStep() ts.TimeStep {
	return e.currentStep
}

// ObservationSpec returns the observation specification of the
// environment
func (e *Env) ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(ObservationDims, nil)
	lowerBound := mat.NewVecDense(ObservationDims, []float64{1, 0, 0})
	upperBound := mat.NewVecDense(ObservationDims, []float64{
		float64(e.config.Locations),
		float64(HoursPerDay - 1),
		float64(DaysPerWeek - 1),
	})

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound, environment.Discrete)
}

// ActionSpec returns the action specification of the environment. The
// lower bound (0, 0) is the idle sentinel; genuine rides have both
// components in [1, m].
func (e *Env) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(ActionDims, nil)
	lowerBound := mat.NewVecDense(ActionDims, []float64{0, 0})
	upperBound := mat.NewVecDense(ActionDims, []float64{
		float64(e.config.Locations),
		float64(e.config.Locations),
	})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// DiscountSpec returns the discounting specification of the
// environment
func (e *Env) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{e.discount})

	return environment.NewSpec(shape, environment.Discount, bound, bound,
		environment.Continuous)
}

// String returns a string representation of the environment
func (e *Env) String() string {
	state := VecState(e.currentStep.Observation)
	return fmt.Sprintf("CabWorld  |  At: %v", state)
}

// Render renders a text-based version of the environment
func (e *Env) Render() {
	state := VecState(e.currentStep.Observation)

	var row strings.Builder
	for location := 1; location <= e.config.Locations; location++ {
		if Location(location) == state.Location {
			fmt.Fprintf(&row, "[🚕]")
		} else {
			fmt.Fprintf(&row, "[%2d]", location)
		}
	}

	// Clear screen and draw
	os.Stdout.WriteString("\x1b[3;J\x1b[H\x1b[2J")
	fmt.Printf("%v   %v\n", row.String(), state.Clock())
}
