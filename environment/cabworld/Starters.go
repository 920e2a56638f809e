package cabworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gocab/environment"
)

// RandomStateStarter samples starting states with one independent
// uniform draw per state axis: first the location from (1, ... m),
// then the hour from (0, ... 23), then the day from (0, ... 6). The
// axes are never drawn as a single joint pick over the whole state
// space; a Start call always consults the random source exactly three
// times, in that order.
type RandomStateStarter struct {
	axes environment.CategoricalStarter
}

// NewRandomStateStarter returns a starter over all states of the
// argument Config
func NewRandomStateStarter(config Config, seed uint64) RandomStateStarter {
	lows := []int{1, 0, 0}
	highs := []int{config.Locations, HoursPerDay - 1, DaysPerWeek - 1}

	return RandomStateStarter{environment.NewCategoricalStarter(lows, highs,
		seed)}
}

// Start returns a starting state as a (location, hour, day) vector
func (r RandomStateStarter) Start() mat.Vector {
	return r.axes.Start()
}

// FixedStateStarter always starts episodes from the same state.
// Useful for deterministic experiments and tests.
type FixedStateStarter struct {
	state State
}

// NewFixedStateStarter returns a starter fixed at the argument state
func NewFixedStateStarter(state State) (FixedStateStarter, error) {
	if state.Location < 1 {
		return FixedStateStarter{}, fmt.Errorf("newFixedStateStarter: "+
			"illegal location %v", state.Location)
	}
	if state.Hour < 0 || state.Hour >= HoursPerDay {
		return FixedStateStarter{}, fmt.Errorf("newFixedStateStarter: "+
			"illegal hour %v ∉ [0, %v)", state.Hour, HoursPerDay)
	}
	if state.Day < 0 || state.Day >= DaysPerWeek {
		return FixedStateStarter{}, fmt.Errorf("newFixedStateStarter: "+
			"illegal day %v ∉ [0, %v)", state.Day, DaysPerWeek)
	}

	return FixedStateStarter{state}, nil
}

// Start returns the fixed starting state as a (location, hour, day)
// vector
func (f FixedStateStarter) Start() mat.Vector {
	return StateVec(f.state)
}
