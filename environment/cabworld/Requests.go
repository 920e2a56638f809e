package cabworld

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gocab/utils/intutils"
)

// MaxVisibleRequests caps how many ride requests a cab can see in a
// single tick, no matter how many the demand process generates. The
// cap is a business rule of the dispatch model, not an error.
const MaxVisibleRequests int = 15

// RequestSampler generates the set of ride requests a cab sees at a
// given state. The number of requests is Poisson distributed with a
// per-location rate, and each request is drawn uniformly, with
// replacement, from the ride actions. The same ride can therefore
// appear more than once in a single tick's visible set.
type RequestSampler struct {
	actions []Action
	counts  []distuv.Poisson
	rng     *rand.Rand
}

// NewRequestSampler returns a sampler over the argument action space,
// which must be ordered with the Idle sentinel last, as built by
// ActionSpace. The per-location request rates come from the Config.
func NewRequestSampler(config Config, actions []Action,
	seed uint64) *RequestSampler {
	source := rand.NewSource(seed)

	counts := make([]distuv.Poisson, config.Locations)
	for i := range counts {
		counts[i] = distuv.Poisson{Lambda: config.RequestRates[i],
			Src: source}
	}

	return &RequestSampler{actions, counts, rand.New(source)}
}

// Sample returns the ride requests visible from the argument state.
//
// The first return value holds the indices of the sampled rides into
// the full action space; it never contains the sentinel index. The
// second return value holds the corresponding actions with the Idle
// sentinel appended as the final element, since declining every
// request is always an available choice. Its length always exceeds
// the index slice's by exactly one.
func (r *RequestSampler) Sample(state State) ([]int, []Action) {
	if state.Location < 1 || int(state.Location) > len(r.counts) {
		panic(fmt.Sprintf("sample: illegal location %v ∉ [1, %v]",
			state.Location, len(r.counts)))
	}

	n := int(r.counts[state.Location-1].Rand())
	n = intutils.Clip(n, 0, MaxVisibleRequests)

	rides := len(r.actions) - 1 // exclude the sentinel slot

	indices := make([]int, n)
	actions := make([]Action, 0, n+1)
	for i := range indices {
		index := r.rng.Intn(rides)
		indices[i] = index
		actions = append(actions, r.actions[index])
	}

	return indices, append(actions, Idle)
}
