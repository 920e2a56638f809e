// Package cabworld implements a single-cab dispatch environment.
//
// A cab drives between m locations on a simulated week of whole-hour
// ticks. At each decision point the cab sees a random set of ride
// requests and either accepts one, driving (possibly empty) to the
// pickup and then the paid trip to the drop, or idles for an hour.
// Trip durations come from a read-only 4-dimensional travel-time
// table indexed by origin, destination, hour of day, and day of week.
//
// The CabWorld struct is the pure core: its methods are deterministic
// functions of their explicit arguments, save for the two designated
// random sources (initial-state sampling and request sampling), each
// seedable and owned by the environment instance. The Env struct wraps
// a CabWorld in the standard environment.Environment interface for
// consumption by agents and experiments.
package cabworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

// CabWorld is the dispatch environment over explicit states and
// actions. All methods are safe for concurrent use except
// SampleRequests and InitialState, which consult the environment's
// random sources; concurrent trajectory generation should give each
// worker its own CabWorld instance with its own seed.
type CabWorld struct {
	Task

	config  Config
	times   *TravelTimes
	actions []Action
	states  []State
	sampler *RequestSampler

	locationBounds r1.Interval
	hourBounds     r1.Interval
	dayBounds      r1.Interval
}

// New constructs a CabWorld from a task, a configuration, and a
// travel-time table. The table must cover exactly the configured
// number of locations. The seed drives request sampling only; the
// initial-state source is owned by the task's Starter.
func New(task Task, config Config, times *TravelTimes,
	seed uint64) (*CabWorld, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	if times.Locations() != config.Locations {
		return nil, fmt.Errorf("new: travel times cover %d locations, "+
			"config has %d", times.Locations(), config.Locations)
	}

	actions := ActionSpace(config.Locations)

	return &CabWorld{
		Task:    task,
		config:  config,
		times:   times,
		actions: actions,
		states:  StateSpace(config.Locations),
		sampler: NewRequestSampler(config, actions, seed),

		locationBounds: r1.Interval{Min: 1, Max: float64(config.Locations)},
		hourBounds:     r1.Interval{Min: 0, Max: float64(HoursPerDay - 1)},
		dayBounds:      r1.Interval{Min: 0, Max: float64(DaysPerWeek - 1)},
	}, nil
}

// Config returns the environment's immutable configuration
func (c *CabWorld) Config() Config {
	return c.config
}

// Actions returns the ordered action space: every ride by ascending
// pickup then drop, with the Idle sentinel last. The returned slice is
// shared and must not be modified.
func (c *CabWorld) Actions() []Action {
	return c.actions
}

// States returns the ordered state space: every state by ascending
// location, then hour, then day. The returned slice is shared and must
// not be modified.
func (c *CabWorld) States() []State {
	return c.states
}

// InitialState draws a fresh starting state from the environment's
// Starter. The draw is a convenience sample: the environment holds no
// authoritative current state, and callers own whatever state they
// thread through SampleRequests and Step.
func (c *CabWorld) InitialState() State {
	return VecState(c.Start())
}

// SampleRequests returns the ride requests visible from a state; see
// RequestSampler.Sample for the exact contract
func (c *CabWorld) SampleRequests(state State) ([]int, []Action) {
	return c.sampler.Sample(state)
}

// RewardOf prices an action from a state without advancing anything.
// It returns exactly the reward Step would report for the same
// arguments.
func (c *CabWorld) RewardOf(state State, action Action) (float64, error) {
	return c.Reward(state, action)
}

// Step computes the transition for taking an action from a state,
// returning the next state, the reward, and the number of simulated
// hours the action consumed.
//
// Idling leaves the cab where it is and burns one hour. Accepting a
// ride moves the cab to the drop location; if the pickup differs from
// the cab's location, the elapsed time and the clock both account for
// the deadhead drive before the paid trip, and the paid trip duration
// is read at the clock of arrival at the pickup.
//
// Step is a pure function of its arguments: it consults no random
// source and mutates nothing, so any caller may replay it freely.
func (c *CabWorld) Step(state State, action Action) (State, float64, int,
	error) {
	if err := c.validate(state, action); err != nil {
		return State{}, 0, 0, err
	}

	// One shared pricing path keeps Step and RewardOf identical
	reward, err := c.Reward(state, action)
	if err != nil {
		return State{}, 0, 0, err
	}

	if action.IsIdle() {
		clock := state.Clock().Advance(1)
		return State{state.Location, clock.Hour, clock.Day}, reward, 1, nil
	}

	if state.Location == action.Pickup {
		trip, err := c.times.Lookup(action.Pickup, action.Drop, state.Hour,
			state.Day)
		if err != nil {
			return State{}, 0, 0, err
		}

		clock := state.Clock().Advance(trip)
		return State{action.Drop, clock.Hour, clock.Day}, reward, trip, nil
	}

	deadhead, err := c.times.Lookup(state.Location, action.Pickup,
		state.Hour, state.Day)
	if err != nil {
		return State{}, 0, 0, err
	}

	atPickup := state.Clock().Advance(deadhead)
	trip, err := c.times.Lookup(action.Pickup, action.Drop, atPickup.Hour,
		atPickup.Day)
	if err != nil {
		return State{}, 0, 0, err
	}

	clock := atPickup.Advance(trip)
	return State{action.Drop, clock.Hour, clock.Day}, reward,
		deadhead + trip, nil
}

// validate checks that the state and action are within their declared
// domains and that the action is either the sentinel or a genuine ride
func (c *CabWorld) validate(state State, action Action) error {
	if !c.contains(c.locationBounds, float64(state.Location)) {
		return fmt.Errorf("step: location %v ∉ [1, %d]", state.Location,
			c.config.Locations)
	}
	if !c.contains(c.hourBounds, float64(state.Hour)) {
		return fmt.Errorf("step: hour %v ∉ [0, %d)", state.Hour,
			HoursPerDay)
	}
	if !c.contains(c.dayBounds, float64(state.Day)) {
		return fmt.Errorf("step: day %v ∉ [0, %d)", state.Day,
			DaysPerWeek)
	}

	if action.IsIdle() {
		return nil
	}
	if !c.contains(c.locationBounds, float64(action.Pickup)) ||
		!c.contains(c.locationBounds, float64(action.Drop)) {
		return fmt.Errorf("step: action %v outside [1, %d]", action,
			c.config.Locations)
	}
	if action.Pickup == action.Drop {
		return fmt.Errorf("step: action %v picks up and drops at the same "+
			"location", action)
	}
	return nil
}

func (c *CabWorld) contains(interval r1.Interval, value float64) bool {
	return value >= interval.Min && value <= interval.Max
}

// StateVec encodes a state as a (location, hour, day) vector
func StateVec(state State) *mat.VecDense {
	return mat.NewVecDense(3, []float64{float64(state.Location),
		float64(state.Hour), float64(state.Day)})
}

// VecState decodes a (location, hour, day) vector into a State. It
// panics if the vector is not 3-dimensional.
func VecState(v mat.Vector) State {
	if v.Len() != 3 {
		panic(fmt.Sprintf("vecState: states are 3-dimensional, have %d",
			v.Len()))
	}
	return State{Location(v.AtVec(0)), int(v.AtVec(1)), int(v.AtVec(2))}
}

// ActionVec encodes an action as a (pickup, drop) vector
func ActionVec(action Action) *mat.VecDense {
	return mat.NewVecDense(2, []float64{float64(action.Pickup),
		float64(action.Drop)})
}

// VecAction decodes a (pickup, drop) vector into an Action. It panics
// if the vector is not 2-dimensional.
func VecAction(v mat.Vector) Action {
	if v.Len() != 2 {
		panic(fmt.Sprintf("vecAction: actions are 2-dimensional, have %d",
			v.Len()))
	}
	return Action{Location(v.AtVec(0)), Location(v.AtVec(1))}
}
