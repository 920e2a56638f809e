package cabworld

import "fmt"

// Location identifies a pickup or drop location. Valid locations are
// in (1, 2, ... m) for a Config with m locations; 0 appears only
// inside the Idle action.
type Location int

// State is the full observable state of the cab: where it is and what
// the clock reads. The field order (location, hour, day) is canonical
// and matches the observation vector layout used by the Env adapter.
type State struct {
	Location Location
	Hour     int
	Day      int
}

// Clock returns the clock component of the state
func (s State) Clock() Clock {
	return Clock{s.Hour, s.Day}
}

func (s State) String() string {
	return fmt.Sprintf("location %v on %v", s.Location, s.Clock())
}

// Action is a ride from a pickup location to a distinct drop location,
// or the Idle sentinel (0, 0) meaning that no ride is taken this tick
type Action struct {
	Pickup Location
	Drop   Location
}

// Idle is the sentinel action for taking no ride and waiting one hour
var Idle = Action{0, 0}

// IsIdle returns whether the action is the Idle sentinel
func (a Action) IsIdle() bool {
	return a == Idle
}

func (a Action) String() string {
	if a.IsIdle() {
		return "idle"
	}
	return fmt.Sprintf("ride %v→%v", a.Pickup, a.Drop)
}

// ActionSpace enumerates every valid action for an environment with
// the argument number of locations. Rides are ordered by ascending
// pickup, then ascending drop, skipping rides whose pickup and drop
// coincide. The Idle sentinel is always the last element, so the
// returned slice has length locations*(locations-1) + 1.
func ActionSpace(locations int) []Action {
	actions := make([]Action, 0, locations*(locations-1)+1)
	for pickup := 1; pickup <= locations; pickup++ {
		for drop := 1; drop <= locations; drop++ {
			if pickup == drop {
				continue
			}
			actions = append(actions, Action{Location(pickup),
				Location(drop)})
		}
	}
	return append(actions, Idle)
}

// StateSpace enumerates every valid state, ordered by ascending
// location, then hour, then day. The returned slice has length
// locations * HoursPerDay * DaysPerWeek.
func StateSpace(locations int) []State {
	states := make([]State, 0, locations*HoursPerDay*DaysPerWeek)
	for location := 1; location <= locations; location++ {
		for hour := 0; hour < HoursPerDay; hour++ {
			for day := 0; day < DaysPerWeek; day++ {
				states = append(states, State{Location(location), hour, day})
			}
		}
	}
	return states
}
