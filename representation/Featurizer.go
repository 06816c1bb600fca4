package representation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golearn-policy/utils/matutils/tilecoder"
)

// Tabular implements a one-hot featurization of a finite number of
// states. States are vectors whose first element is the state index.
type Tabular struct {
	numStates int
}

// NewTabular returns a new Tabular featurizer over numStates states
func NewTabular(numStates int) *Tabular {
	if numStates < 1 {
		panic("newTabular: must have at least one state")
	}
	return &Tabular{numStates}
}

// Features returns the one-hot encoding of a state
func (t *Tabular) Features(state mat.Vector) *mat.VecDense {
	index := int(state.AtVec(0))
	if index < 0 || index >= t.numStates {
		panic(fmt.Sprintf("features: state %d outside [0, %d)", index,
			t.numStates))
	}

	features := mat.NewVecDense(t.numStates, nil)
	features.SetVec(index, 1.0)
	return features
}

// Len returns the number of features
func (t *Tabular) Len() int {
	return t.numStates
}

// Identity uses the state observation itself as the feature vector,
// optionally prepended with a bias unit
type Identity struct {
	dims int
	bias bool
}

// NewIdentity returns a new Identity featurizer for states of
// dimension dims
func NewIdentity(dims int, bias bool) *Identity {
	if dims < 1 {
		panic("newIdentity: states must have at least one dimension")
	}
	return &Identity{dims, bias}
}

// Features returns the features of a state
func (i *Identity) Features(state mat.Vector) *mat.VecDense {
	if state.Len() != i.dims {
		panic(fmt.Sprintf("features: expected state of length %d but "+
			"got %d", i.dims, state.Len()))
	}

	features := mat.NewVecDense(i.Len(), nil)
	offset := 0
	if i.bias {
		features.SetVec(0, 1.0)
		offset = 1
	}
	for j := 0; j < i.dims; j++ {
		features.SetVec(j+offset, state.AtVec(j))
	}
	return features
}

// Len returns the number of features
func (i *Identity) Len() int {
	if i.bias {
		return i.dims + 1
	}
	return i.dims
}

// TileCoded featurizes states by tile coding them
type TileCoded struct {
	coder *tilecoder.TileCoder
}

// NewTileCoded returns a new TileCoded featurizer. See
// tilecoder.New for details on the arguments.
func NewTileCoded(minDims, maxDims mat.Vector, bins [][]int, seed uint64,
	bias bool) *TileCoded {
	return &TileCoded{tilecoder.New(minDims, maxDims, bins, seed, bias)}
}

// Features returns the tile-coded features of a state
func (t *TileCoded) Features(state mat.Vector) *mat.VecDense {
	return t.coder.Encode(state)
}

// Len returns the number of features
func (t *TileCoded) Len() int {
	return t.coder.VecLength()
}

// String implements the fmt.Stringer interface
func (t *TileCoded) String() string {
	return fmt.Sprintf("TileCoded: %v", t.coder)
}
