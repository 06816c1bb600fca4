// Package tilecoder implements tile coding of vectors
package tilecoder

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"

	"github.com/samuelfneumann/golearn-policy/utils/floatutils"
)

// Controls tiling offsets. For each dimension, tilings are offset by
// randomly sampling from a uniform distribution with support
// [- tiling width/OffsetDiv, tiling width/OffsetDiv]
const OffsetDiv float64 = 1.5

// TileCoder implements functionality for tile coding a vector. Tile
// coding takes a low-dimensional vector and changes it into a large,
// sparse vector consisting of only 0's and 1's. Each 1 represents the
// coordinates of the original vector in some space of tilings. For
// example:
//
//		[0.5, 0.1] -> [0, 0, 0, 1, 0, 0, 1, 0]
//
// The number of nonzero elements in the tile-coded representation equals
// the number of tilings used to encode the vector (plus one if a bias
// unit is used). Tile coding requires that the space to be tiled be
// bounded; values outside the bounds fall into the edge tiles.
type TileCoder struct {
	numTilings  int
	minDims     mat.Vector
	offsets     *mat.Dense // numTilings x dims
	bins        [][]int
	binLengths  [][]float64
	includeBias bool
}

// New creates and returns a new TileCoder. The minDims and maxDims
// arguments are the bounds on each dimension between which tilings
// will be placed.
//
// The number of elements in the outer slice of bins determines the
// number of tilings to use, and the sub-slices determine how many
// tiles are placed along each dimension for the respective tiling.
// For example, bins := [][]int{{2, 2}, {4, 3}} uses a 2x2 tiling and
// a 4x3 tiling.
//
// If includeBias is true, a bias unit is kept as the first unit in the
// tile coded representation.
func New(minDims, maxDims mat.Vector, bins [][]int, seed uint64,
	includeBias bool) *TileCoder {
	if minDims.Len() != maxDims.Len() {
		msg := fmt.Sprintf("new: cannot specify minimum with different "+
			"dimensions than maximum: %d != %d", minDims.Len(),
			maxDims.Len())
		panic(msg)
	}
	if len(bins) == 0 {
		panic("new: cannot have less than 1 tiling")
	}

	dims := minDims.Len()
	numTilings := len(bins)
	binLengths := make([][]float64, numTilings)
	bounds := make([]r1.Interval, dims)

	for j := 0; j < numTilings; j++ {
		if len(bins[j]) != dims {
			msg := fmt.Sprintf("new: tiling %d should have a number of "+
				"tiles for each dimension \n\thave(%d) \n\twant(%d)", j,
				len(bins[j]), dims)
			panic(msg)
		}

		binLengths[j] = make([]float64, dims)
		for i := 0; i < dims; i++ {
			if bins[j][i] < 1 {
				panic("new: cannot have less than 1 tile per dimension")
			}
			binLength := maxDims.AtVec(i) - minDims.AtVec(i)
			binLengths[j][i] = binLength / float64(bins[j][i])

			// Offsets are bounded by the widest tile along the dimension
			bound := binLengths[j][i] / OffsetDiv
			if bound > bounds[i].Max {
				bounds[i] = r1.Interval{Min: -bound, Max: bound}
			}
		}
	}

	// Sample a random offset for each tiling
	offsets := mat.NewDense(numTilings, dims, nil)
	source := rand.NewSource(seed)
	u := distmv.NewUniform(bounds, source)
	sampler := samplemv.IID{Dist: u}
	sampler.Sample(offsets)

	return &TileCoder{
		numTilings:  numTilings,
		minDims:     minDims,
		offsets:     offsets,
		bins:        bins,
		binLengths:  binLengths,
		includeBias: includeBias,
	}
}

// featuresBeforeTiling returns how many features exist in the
// tile-coded representation before tiling number i
func (t *TileCoder) featuresBeforeTiling(i int) int {
	features := 0
	for j := 0; j < i; j++ {
		features += prod(t.bins[j])
	}
	return features
}

// encodeWithTiling returns the index of the tile coded feature vector
// which should be a 1.0 when the input vector v is encoded with tiling
// number tiling.
func (t *TileCoder) encodeWithTiling(v mat.Vector, tiling int) int {
	bias := 0
	if t.includeBias {
		bias = 1
	}

	index := 0
	bins := t.bins[tiling]
	for i := range bins {
		data := v.AtVec(i) + t.offsets.At(tiling, i)

		tile := math.Floor((data - t.minDims.AtVec(i)) /
			t.binLengths[tiling][i])
		tile = floatutils.Clip(tile, 0.0, float64(bins[i]-1))

		// Row-major index of the tile within the tiling
		index = index*bins[i] + int(tile)
	}
	return bias + t.featuresBeforeTiling(tiling) + index
}

// EncodeIndices returns the indices of the non-zero features in the
// tile coded representation of v. If a bias unit is used, index 0 is
// the first element of the returned slice.
func (t *TileCoder) EncodeIndices(v mat.Vector) []int {
	if v.Len() != t.minDims.Len() {
		panic(fmt.Sprintf("encodeIndices: expected vector of length %d "+
			"but got %d", t.minDims.Len(), v.Len()))
	}

	indices := make([]int, 0, t.numTilings+1)
	if t.includeBias {
		indices = append(indices, 0)
	}
	for i := 0; i < t.numTilings; i++ {
		indices = append(indices, t.encodeWithTiling(v, i))
	}
	return indices
}

// Encode encodes a single vector as a tile-coded vector
func (t *TileCoder) Encode(v mat.Vector) *mat.VecDense {
	tileCoded := mat.NewVecDense(t.VecLength(), nil)

	for _, index := range t.EncodeIndices(v) {
		tileCoded.SetVec(index, 1.0)
	}
	return tileCoded
}

// String returns a string representation of a *TileCoder
func (t *TileCoder) String() string {
	return fmt.Sprintf("Tilings %d  |  Tiles: %v", t.numTilings, t.bins)
}

// VecLength returns the number of features in a tile-coded vector
func (t *TileCoder) VecLength() int {
	length := t.featuresBeforeTiling(t.numTilings)
	if t.includeBias {
		return length + 1
	}
	return length
}

// NumTilings returns the number of tilings the tile coder uses for
// encoding vectors
func (t *TileCoder) NumTilings() int {
	return t.numTilings
}

// prod calculates the product of all integers in a []int
func prod(i []int) int {
	prod := 1
	for _, v := range i {
		prod *= v
	}
	return prod
}
