// Package uniform implements a non-learning dispatch policy that
// chooses uniformly among the ride requests visible at each state
package uniform

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gocab/environment/cabworld"
	ts "github.com/samuelfneumann/gocab/timestep"
)

// Uniform selects uniformly at random among the requests the cab sees
// on each timestep, idling included. It learns nothing, which makes it
// a useful baseline and a driver for generating unbiased
// state/action/reward trajectories.
type Uniform struct {
	requests interface {
		SampleRequests(cabworld.State) ([]int, []cabworld.Action)
	}
	rng  *rand.Rand
	eval bool
}

// New returns a new Uniform policy drawing requests from the argument
// environment
func New(env *cabworld.Env, seed uint64) *Uniform {
	return &Uniform{
		requests: env,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// SelectAction samples the requests visible at the timestep's state
// and picks one of them, or the idle action, uniformly at random
func (u *Uniform) SelectAction(t ts.TimeStep) *mat.VecDense {
	state := cabworld.VecState(t.Observation)
	_, actions := u.requests.SampleRequests(state)

	return cabworld.ActionVec(actions[u.rng.Intn(len(actions))])
}

// Step performs a single update to the learner. Uniform has nothing
// to update.
func (u *Uniform) Step() error {
	return nil
}

// Observe records that an action led to some timestep
func (u *Uniform) Observe(_ mat.Vector, _ ts.TimeStep) error {
	return nil
}

// ObserveFirst records the first timestep in an episode
func (u *Uniform) ObserveFirst(_ ts.TimeStep) error {
	return nil
}

// EndEpisode performs cleanup at the end of an episode
func (u *Uniform) EndEpisode() {}

// Eval sets the policy to evaluation mode
func (u *Uniform) Eval() { u.eval = true }

// Train sets the policy to training mode
func (u *Uniform) Train() { u.eval = false }

// IsEval indicates if the policy is in evaluation mode
func (u *Uniform) IsEval() bool { return u.eval }
