// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// MaxSlice gets the maximum value and indices of the maximum values in
// a slice of float64. Ties are returned in increasing index order.
func MaxSlice(values []float64) (max float64, indices []int) {
	max, indices = values[0], []int{0}

	for i, value := range values {
		if i == 0 {
			continue
		}
		if value > max {
			max = value
			indices = []int{i}
		} else if value == max {
			indices = append(indices, i)
		}
	}
	return
}

// InverseTransform samples an index from the discrete distribution
// proportional to weights using a single uniform draw u in [0, 1).
// The cumulative sum of weights is searched for the first entry which
// exceeds u * sum(weights). Weights must be non-negative with a
// positive sum.
func InverseTransform(weights []float64, u float64) int {
	cdf := make([]float64, len(weights))
	floats.CumSum(cdf, weights)

	target := u * cdf[len(cdf)-1]
	i := sort.Search(len(cdf), func(i int) bool { return cdf[i] > target })

	// Guard against u*sum rounding up to the total
	if i == len(cdf) {
		i = len(cdf) - 1
		for i > 0 && weights[i] == 0 {
			i--
		}
	}
	return i
}
