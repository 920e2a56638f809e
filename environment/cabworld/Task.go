package cabworld

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gocab/environment"
	ts "github.com/samuelfneumann/gocab/timestep"
)

// Task is the reward scheme of a CabWorld environment. It extends the
// generic environment.Task with an explicit-state reward query so that
// planning code can price an action without building observation
// vectors or advancing the environment.
type Task interface {
	environment.Task

	// Reward returns the reward of taking an action from a state.
	// Repeated calls with the same arguments return the same value.
	Reward(State, Action) (float64, error)
}

// Fare implements the fare-economics Task of cab dispatch. Revenue
// accrues only while a passenger is in the cab; cost accrues for
// every hour of driving, with or without a passenger, and for every
// hour spent idling.
//
// Declining all requests costs one idle hour. Accepting a ride whose
// pickup differs from the cab's location first incurs a deadhead
// drive to the pickup; the paid trip is then priced at the clock of
// arrival at the pickup, not at the clock of the original request.
//
// CabWorld is a continuing environment, so Fare has no goal states and
// episodes end only at the step limit.
type Fare struct {
	environment.Starter
	stepLimit environment.StepLimit

	config  Config
	times   *TravelTimes
	maxTrip int
}

// NewFare returns a new Fare task. The Starter determines the starting
// states of the environment and episodeSteps determines the step limit
// at which episodes are cut off.
func NewFare(s environment.Starter, episodeSteps int, config Config,
	times *TravelTimes) (*Fare, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("newFare: %v", err)
	}
	if times.Locations() != config.Locations {
		return nil, fmt.Errorf("newFare: travel times cover %d locations, "+
			"config has %d", times.Locations(), config.Locations)
	}

	return &Fare{
		Starter:   s,
		stepLimit: environment.NewStepLimit(episodeSteps),
		config:    config,
		times:     times,
		maxTrip:   times.MaxDuration(),
	}, nil
}

// Reward returns the reward of taking an action from a state:
//
//	idle:			-C
//	otherwise:		R·trip - C·(trip + deadhead)
//
// where C and R are the configured cost and revenue per hour, trip is
// the duration of the paid segment, and deadhead is the duration of
// the empty drive to the pickup (zero when the cab is already there).
func (f *Fare) Reward(state State, action Action) (float64, error) {
	cost := f.config.CostPerHour
	revenue := f.config.RevenuePerHour

	if action.IsIdle() {
		return -cost, nil
	}

	if state.Location == action.Pickup {
		trip, err := f.times.Lookup(action.Pickup, action.Drop, state.Hour,
			state.Day)
		if err != nil {
			return 0, err
		}
		return (revenue - cost) * float64(trip), nil
	}

	deadhead, err := f.times.Lookup(state.Location, action.Pickup,
		state.Hour, state.Day)
	if err != nil {
		return 0, err
	}

	// The paid trip is priced at the clock of arrival at the pickup
	atPickup := state.Clock().Advance(deadhead)
	trip, err := f.times.Lookup(action.Pickup, action.Drop, atPickup.Hour,
		atPickup.Day)
	if err != nil {
		return 0, err
	}

	return revenue*float64(trip) - cost*float64(trip+deadhead), nil
}

// GetReward adapts Reward to the vector-valued environment.Task
// interface. The state and action vectors are laid out as the Env
// adapter lays them out. GetReward panics on indices outside their
// domains, which the Env adapter never produces.
func (f *Fare) GetReward(state, action, _ mat.Vector) float64 {
	reward, err := f.Reward(VecState(state), VecAction(action))
	if err != nil {
		panic(fmt.Sprintf("getReward: %v", err))
	}
	return reward
}

// AtGoal always returns false: CabWorld is a continuing environment
// with no goal states
func (f *Fare) AtGoal(_ mat.Matrix) bool {
	return false
}

// Min returns the minimum attainable reward over all timesteps
func (f *Fare) Min() float64 {
	cost := f.config.CostPerHour
	revenue := f.config.RevenuePerHour
	maxTrip := float64(f.maxTrip)

	// Worst cases: idling, a maximal unpaid drive, or a maximal
	// drive on both segments
	return math.Min(-cost, math.Min(-cost*maxTrip,
		(revenue-cost)*maxTrip-cost*maxTrip))
}

// Max returns the maximum attainable reward over all timesteps
func (f *Fare) Max() float64 {
	cost := f.config.CostPerHour
	revenue := f.config.RevenuePerHour

	// Best case: a maximal paid trip with no deadhead
	return math.Max(-cost, (revenue-cost)*float64(f.maxTrip))
}

// RewardSpec returns the reward specification of the Task
func (f *Fare) RewardSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{f.Min()})
	upperBound := mat.NewVecDense(1, []float64{f.Max()})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound, environment.Continuous)
}

// End determines if a timestep is the last in its episode, adjusting
// its StepType if so. Episodes in CabWorld end only at the step limit.
func (f *Fare) End(t *ts.TimeStep) bool {
	return f.stepLimit.End(t)
}
