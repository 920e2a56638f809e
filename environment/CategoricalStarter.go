package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states as vectors sampled from a
// multi-dimensional uniform categorical distribution. Dimension i of a
// starting state takes values in (lows[i], lows[i]+1, ... highs[i]).
//
// Each dimension has its own categorical distribution, and Start
// consults the distributions in dimension order. The dimensions are
// therefore statistically independent, but a starting state is never
// drawn as one joint pick over all dimension combinations: a Start
// call always makes exactly one draw per dimension.
type CategoricalStarter struct {
	features int
	lows     []int
	seed     uint64
	rand     []distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// dimension i uniformly from (lows[i], lows[i]+1, ... highs[i])
func NewCategoricalStarter(lows, highs []int, seed uint64) CategoricalStarter {
	if len(lows) != len(highs) {
		panic("newCategoricalStarter: lows and highs must have equal length")
	}
	source := rand.NewSource(seed)

	rng := make([]distuv.Categorical, len(lows))
	for i := range rng {
		// Uniform weights over the values of dimension i
		weights := make([]float64, highs[i]-lows[i]+1)
		for j := range weights {
			weights[j] = 1.0 / float64(len(weights))
		}

		rng[i] = distuv.NewCategorical(weights, source)
	}

	lowsCopy := make([]int, len(lows))
	copy(lowsCopy, lows)

	return CategoricalStarter{len(lows), lowsCopy, seed, rng}
}

// Start returns a starting state vector
func (c CategoricalStarter) Start() mat.Vector {
	start := make([]float64, c.features)
	for i := range start {
		start[i] = float64(c.lows[i]) + c.rand[i].Rand()
	}

	return mat.NewVecDense(c.features, start)
}
