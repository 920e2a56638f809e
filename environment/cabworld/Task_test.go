package cabworld_test

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/samuelfneumann/gocab/environment/cabworld"
)

// newFare builds a Fare over the scenario fixture with a deterministic
// starting state
func newFare(t *testing.T) *cabworld.Fare {
	t.Helper()

	config := cabworld.DefaultConfig()
	starter, err := cabworld.NewFixedStateStarter(cabworld.State{
		Location: 1, Hour: 8, Day: 1})
	if err != nil {
		t.Fatalf("could not create starter: %v", err)
	}

	fare, err := cabworld.NewFare(starter, 168, config, scenarioTimes(t))
	if err != nil {
		t.Fatalf("could not create task: %v", err)
	}
	return fare
}

func TestFareRewardIdle(t *testing.T) {
	fare := newFare(t)

	state := cabworld.State{Location: 1, Hour: 8, Day: 1}
	reward, err := fare.Reward(state, cabworld.Idle)
	if err != nil {
		t.Fatalf("reward: %v", err)
	}
	if reward != -5 {
		t.Errorf("idle reward: got %v, want -5", reward)
	}
}

func TestFareRewardSameLocationPickup(t *testing.T) {
	fare := newFare(t)

	// The trip from 1 to 3 at 08:00 Tuesday takes 6 hours, so the cab
	// earns (9-5)*6
	state := cabworld.State{Location: 1, Hour: 8, Day: 1}
	action := cabworld.Action{Pickup: 1, Drop: 3}

	reward, err := fare.Reward(state, action)
	if err != nil {
		t.Fatalf("reward: %v", err)
	}
	if reward != 24 {
		t.Errorf("same-location reward: got %v, want 24", reward)
	}
}

func TestFareRewardDeadhead(t *testing.T) {
	fare := newFare(t)

	// Driving empty from 1 to 2 at 19:00 Wednesday takes 6 hours,
	// arriving at 01:00 Thursday; the paid trip from 2 to 3 at that
	// clock takes 7 hours. Reward is 9*7 - 5*(7+6).
	state := cabworld.State{Location: 1, Hour: 19, Day: 2}
	action := cabworld.Action{Pickup: 2, Drop: 3}

	reward, err := fare.Reward(state, action)
	if err != nil {
		t.Fatalf("reward: %v", err)
	}
	if reward != -2 {
		t.Errorf("deadhead reward: got %v, want -2", reward)
	}
}

func TestFareRewardDeterministic(t *testing.T) {
	fare := newFare(t)

	state := cabworld.State{Location: 1, Hour: 19, Day: 2}
	action := cabworld.Action{Pickup: 2, Drop: 3}

	first, err := fare.Reward(state, action)
	if err != nil {
		t.Fatalf("reward: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := fare.Reward(state, action)
		if err != nil {
			t.Fatalf("reward: %v", err)
		}
		if again != first {
			t.Fatalf("call %d: got %v, want %v", i, again, first)
		}
	}
}

func TestFareGetRewardMatchesReward(t *testing.T) {
	fare := newFare(t)

	state := cabworld.State{Location: 1, Hour: 19, Day: 2}
	action := cabworld.Action{Pickup: 2, Drop: 3}

	want, err := fare.Reward(state, action)
	if err != nil {
		t.Fatalf("reward: %v", err)
	}

	got := fare.GetReward(cabworld.StateVec(state),
		cabworld.ActionVec(action), nil)
	if !scalar.EqualWithinAbs(got, want, 1e-12) {
		t.Errorf("getReward: got %v, want %v", got, want)
	}
}

func TestFareBounds(t *testing.T) {
	fare := newFare(t)

	// Longest trip in the fixture is 7 hours: the best case is that
	// trip fully paid, the worst is driving it twice unpaid
	if got := fare.Max(); got != 28 {
		t.Errorf("max: got %v, want 28", got)
	}
	if got := fare.Min(); got != -35 {
		t.Errorf("min: got %v, want -35", got)
	}

	spec := fare.RewardSpec()
	if got := spec.LowerBound.AtVec(0); got != fare.Min() {
		t.Errorf("reward spec lower bound: got %v, want %v", got, fare.Min())
	}
	if got := spec.UpperBound.AtVec(0); got != fare.Max() {
		t.Errorf("reward spec upper bound: got %v, want %v", got, fare.Max())
	}
}

func TestNewFareMismatchedTable(t *testing.T) {
	config := cabworld.DefaultConfig() // five locations
	starter, err := cabworld.NewFixedStateStarter(cabworld.State{
		Location: 1, Hour: 0, Day: 0})
	if err != nil {
		t.Fatalf("could not create starter: %v", err)
	}

	times := cabworld.UniformTravelTimes(3, 1)
	if _, err := cabworld.NewFare(starter, 168, config, times); err == nil {
		t.Error("expected error for a table over the wrong location count")
	}
}
