// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// IsFinite returns whether all elements of a vector are finite, i.e.
// neither NaN nor ±Inf
func IsFinite(v mat.Vector) bool {
	for i := 0; i < v.Len(); i++ {
		x := v.AtVec(i)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// HasNaN returns whether any element of a vector is NaN
func HasNaN(v mat.Vector) bool {
	for i := 0; i < v.Len(); i++ {
		if math.IsNaN(v.AtVec(i)) {
			return true
		}
	}
	return false
}

// Block returns a view of the i-th contiguous block of length n in v.
// The returned vector shares its backing data with v.
func Block(v *mat.VecDense, i, n int) *mat.VecDense {
	return v.SliceVec(i*n, (i+1)*n).(*mat.VecDense)
}

// AsMatrix returns a rows x (len/rows) matrix view of v, where the
// i-th row of the matrix is the i-th contiguous block of v. The
// returned matrix shares its backing data with v, so that changes to
// one are seen by the other.
func AsMatrix(v *mat.VecDense, rows int) *mat.Dense {
	raw := v.RawVector()
	if raw.Inc != 1 {
		panic("asMatrix: vector must have unit increment")
	}
	if rows <= 0 || raw.N%rows != 0 {
		panic(fmt.Sprintf("asMatrix: cannot split vector of length %d "+
			"into %d rows", raw.N, rows))
	}
	return mat.NewDense(rows, raw.N/rows, raw.Data[:raw.N])
}
