package matutils

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAsMatrixShares(t *testing.T) {
	v := mat.NewVecDense(6, []float64{0, 1, 2, 3, 4, 5})
	m := AsMatrix(v, 2)

	if r, c := m.Dims(); r != 2 || c != 3 {
		t.Fatalf("asMatrix: have dims (%d, %d) want (2, 3)", r, c)
	}
	if m.At(1, 0) != 3 {
		t.Errorf("asMatrix: have(%v) want(3) at (1, 0)", m.At(1, 0))
	}

	m.Set(0, 2, -1)
	if v.AtVec(2) != -1 {
		t.Errorf("asMatrix: write not visible in vector")
	}

	b := Block(v, 1, 3)
	b.SetVec(0, 10)
	if m.At(1, 0) != 10 {
		t.Errorf("block: write not visible in matrix")
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		data   []float64
		finite bool
		nan    bool
	}{
		{[]float64{0, 1, -1e300}, true, false},
		{[]float64{0, math.Inf(1)}, false, false},
		{[]float64{math.NaN(), 1}, false, true},
	}
	for _, test := range tests {
		v := mat.NewVecDense(len(test.data), test.data)
		if IsFinite(v) != test.finite {
			t.Errorf("isFinite(%v): have(%v)", test.data, IsFinite(v))
		}
		if HasNaN(v) != test.nan {
			t.Errorf("hasNaN(%v): have(%v)", test.data, HasNaN(v))
		}
	}
}
