package cabworld_test

import (
	"testing"

	"github.com/samuelfneumann/gocab/environment/cabworld"
	ts "github.com/samuelfneumann/gocab/timestep"
)

// newEnv builds an Env over the scenario fixture, starting every
// episode at location 1 on Tuesday 08:00 with the argument step limit
func newEnv(t *testing.T, cutoff int) *cabworld.Env {
	t.Helper()

	config := cabworld.DefaultConfig()
	times := scenarioTimes(t)

	starter, err := cabworld.NewFixedStateStarter(cabworld.State{
		Location: 1, Hour: 8, Day: 1})
	if err != nil {
		t.Fatalf("could not create starter: %v", err)
	}

	task, err := cabworld.NewFare(starter, cutoff, config, times)
	if err != nil {
		t.Fatalf("could not create task: %v", err)
	}

	env, first, err := cabworld.NewEnv(task, config, times, 1.0, 42)
	if err != nil {
		t.Fatalf("could not create environment: %v", err)
	}
	if !first.First() {
		t.Fatalf("first step has type %v, want First", first.StepType)
	}
	return env
}

func TestEnvEpisode(t *testing.T) {
	env := newEnv(t, 3)

	first := env.Reset()
	if got := cabworld.VecState(first.Observation); got !=
		(cabworld.State{Location: 1, Hour: 8, Day: 1}) {
		t.Fatalf("starting state: got %v", got)
	}

	// Ride from the cab's own location: 6 paid hours
	step, done := env.Step(cabworld.ActionVec(cabworld.Action{Pickup: 1,
		Drop: 3}))
	if done {
		t.Fatal("episode ended on step 1 with a cutoff of 3")
	}
	if got := cabworld.VecState(step.Observation); got !=
		(cabworld.State{Location: 3, Hour: 14, Day: 1}) {
		t.Errorf("state after ride: got %v", got)
	}
	if step.Reward != 24 {
		t.Errorf("reward after ride: got %v, want 24", step.Reward)
	}
	if step.Wait != 6 {
		t.Errorf("wait after ride: got %v, want 6", step.Wait)
	}

	// Idle for an hour
	step, done = env.Step(cabworld.ActionVec(cabworld.Idle))
	if done {
		t.Fatal("episode ended on step 2 with a cutoff of 3")
	}
	if got := cabworld.VecState(step.Observation); got !=
		(cabworld.State{Location: 3, Hour: 15, Day: 1}) {
		t.Errorf("state after idling: got %v", got)
	}
	if step.Reward != -5 {
		t.Errorf("reward after idling: got %v, want -5", step.Reward)
	}

	// Third step hits the cutoff
	step, done = env.Step(cabworld.ActionVec(cabworld.Idle))
	if !done {
		t.Fatal("episode did not end at the step limit")
	}
	if !step.Last() {
		t.Errorf("final step has type %v, want Last", step.StepType)
	}
	if step.EndType != ts.Timeout {
		t.Errorf("final step has end type %v, want Timeout", step.EndType)
	}

	// Reset starts a fresh episode
	first = env.Reset()
	if !first.First() {
		t.Errorf("step after reset has type %v, want First", first.StepType)
	}
	if first.Number != 0 {
		t.Errorf("step after reset has number %v, want 0", first.Number)
	}
}

func TestEnvCurrentTimeStep(t *testing.T) {
	env := newEnv(t, 168)

	first := env.Reset()
	if got := env.CurrentTimeStep(); got.Number != first.Number {
		t.Errorf("current step number: got %v, want %v", got.Number,
			first.Number)
	}

	step, _ := env.Step(cabworld.ActionVec(cabworld.Idle))
	current := env.CurrentTimeStep()
	if current.Number != step.Number || current.Reward != step.Reward {
		t.Errorf("current step: got %v, want %v", current, step)
	}
}

func TestEnvSpecs(t *testing.T) {
	env := newEnv(t, 168)

	obs := env.ObservationSpec()
	if obs.Shape.Len() != cabworld.ObservationDims {
		t.Errorf("observation shape: got %d, want %d", obs.Shape.Len(),
			cabworld.ObservationDims)
	}
	if got := obs.UpperBound.AtVec(0); got != 5 {
		t.Errorf("observation location upper bound: got %v, want 5", got)
	}
	if got := obs.UpperBound.AtVec(1); got != 23 {
		t.Errorf("observation hour upper bound: got %v, want 23", got)
	}
	if got := obs.UpperBound.AtVec(2); got != 6 {
		t.Errorf("observation day upper bound: got %v, want 6", got)
	}

	action := env.ActionSpec()
	if action.Shape.Len() != cabworld.ActionDims {
		t.Errorf("action shape: got %d, want %d", action.Shape.Len(),
			cabworld.ActionDims)
	}
	if got := action.LowerBound.AtVec(0); got != 0 {
		t.Errorf("action lower bound: got %v, want 0 (idle)", got)
	}

	discount := env.DiscountSpec()
	if got := discount.LowerBound.AtVec(0); got != 1.0 {
		t.Errorf("discount: got %v, want 1.0", got)
	}
}

func TestEnvStepPanicsOnMalformedAction(t *testing.T) {
	env := newEnv(t, 168)
	env.Reset()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a diagonal ride action")
		}
	}()
	env.Step(cabworld.ActionVec(cabworld.Action{Pickup: 2, Drop: 2}))
}
