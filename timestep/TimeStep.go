// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either the
// first environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType denotes the reason an episode ended
type EndType int

const (
	// TerminalStateReached denotes that the episode ended in a
	// terminal state of the environment
	TerminalStateReached EndType = iota

	// Timeout denotes that the episode was cut off at a step limit
	Timeout

	// Nil denotes a step that did not end its episode
	Nil
)

// TimeStep packages together a single timestep in an environment.
//
// Wait records how much simulated time elapsed during the step. In
// environments whose steps all take the same amount of time, Wait is
// simply 1 on every step. In environments like CabWorld, where a
// single decision can burn many hours of simulated time, Wait holds
// the number of hours the chosen action took.
type TimeStep struct {
	StepType    StepType
	Reward      float64
	Discount    float64
	Observation mat.Vector
	Number      int
	Wait        int
	EndType     EndType
}

// New constructs a new TimeStep with a Wait of a single time unit
func New(t StepType, r, d float64, o mat.Vector, n int) TimeStep {
	return TimeStep{t, r, d, o, n, 1, Nil}
}

// NewWait constructs a new TimeStep that took wait units of simulated
// time to complete
func NewWait(t StepType, r, d float64, o mat.Vector, n, wait int) TimeStep {
	return TimeStep{t, r, d, o, n, wait, Nil}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd marks the TimeStep as the last in its episode for reason e
func (t *TimeStep) SetEnd(e EndType) {
	t.StepType = Last
	t.EndType = e
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Step Number:  %v  |  Wait:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.Number,
		t.Wait)
}
