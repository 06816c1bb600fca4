package weights

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LinearUV initializes a single linear layer of weights, drawn from
// a univariate distribution. Each weight is drawn independently,
// regardless of which action (row) or feature (column) it belongs to.
type LinearUV struct {
	distuv.Rander
}

// NewLinearUV  creates and returns a new LinearUV
func NewLinearUV(rand distuv.Rander) LinearUV {
	if rand == nil {
		panic("rand cannot be nil")
	}
	return LinearUV{rand}
}

// NewUniform returns a LinearUV which draws weights uniformly from
// [min, max) using a source seeded with seed
func NewUniform(min, max float64, seed uint64) LinearUV {
	src := rand.NewSource(seed)
	return NewLinearUV(distuv.Uniform{Min: min, Max: max, Src: src})
}

// Initialize initializes a matrix of weights using values drawn from
// a univariate distribution
func (l LinearUV) Initialize(weights *mat.Dense) {
	if weights == nil {
		return
	}

	r, c := weights.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			weights.Set(i, j, l.Rand())
		}
	}
}
