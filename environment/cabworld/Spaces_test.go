package cabworld_test

import (
	"testing"

	"github.com/samuelfneumann/gocab/environment/cabworld"
)

func TestActionSpace(t *testing.T) {
	for m := 2; m <= 6; m++ {
		actions := cabworld.ActionSpace(m)

		if want := m*(m-1) + 1; len(actions) != want {
			t.Errorf("%d locations: got %d actions, want %d", m,
				len(actions), want)
		}
		if !actions[len(actions)-1].IsIdle() {
			t.Errorf("%d locations: last action is %v, want idle", m,
				actions[len(actions)-1])
		}

		for _, action := range actions[:len(actions)-1] {
			if action.Pickup == action.Drop {
				t.Errorf("%d locations: ride %v picks up and drops at the "+
					"same location", m, action)
			}
			if action.Pickup < 1 || int(action.Pickup) > m ||
				action.Drop < 1 || int(action.Drop) > m {
				t.Errorf("%d locations: ride %v out of range", m, action)
			}
		}
	}
}

func TestActionSpaceOrder(t *testing.T) {
	want := []cabworld.Action{
		{Pickup: 1, Drop: 2},
		{Pickup: 1, Drop: 3},
		{Pickup: 2, Drop: 1},
		{Pickup: 2, Drop: 3},
		{Pickup: 3, Drop: 1},
		{Pickup: 3, Drop: 2},
		cabworld.Idle,
	}

	actions := cabworld.ActionSpace(3)
	if len(actions) != len(want) {
		t.Fatalf("got %d actions, want %d", len(actions), len(want))
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("action %d: got %v, want %v", i, actions[i], want[i])
		}
	}
}

func TestStateSpace(t *testing.T) {
	for m := 2; m <= 6; m++ {
		states := cabworld.StateSpace(m)

		if want := m * 24 * 7; len(states) != want {
			t.Errorf("%d locations: got %d states, want %d", m, len(states),
				want)
		}
	}
}

func TestStateSpaceOrder(t *testing.T) {
	states := cabworld.StateSpace(3)

	// Day varies fastest, then hour, then location
	want := []cabworld.State{
		{Location: 1, Hour: 0, Day: 0},
		{Location: 1, Hour: 0, Day: 1},
		{Location: 1, Hour: 0, Day: 2},
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("state %d: got %v, want %v", i, states[i], want[i])
		}
	}

	if got, want := states[7], (cabworld.State{Location: 1, Hour: 1,
		Day: 0}); got != want {
		t.Errorf("state 7: got %v, want %v", got, want)
	}
	if got, want := states[24*7], (cabworld.State{Location: 2, Hour: 0,
		Day: 0}); got != want {
		t.Errorf("state %d: got %v, want %v", 24*7, got, want)
	}
}
