package representation

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golearn-policy/utils/matutils/initializers/weights"
)

func newTabularLinear(t *testing.T, states, actions int) *Linear {
	t.Helper()
	l, err := NewLinear(NewTabular(states), actions, weights.NewZero())
	if err != nil {
		t.Fatalf("newLinear: %v", err)
	}
	return l
}

func TestLinearBestActions(t *testing.T) {
	l := newTabularLinear(t, 3, 4)

	// Action values in state 1: [2, 5, 5, -1]
	w := l.Weights()
	w.Set(0, 1, 2)
	w.Set(1, 1, 5)
	w.Set(2, 1, 5)
	w.Set(3, 1, -1)

	state := mat.NewVecDense(1, []float64{1})
	tests := []struct {
		actions []int
		want    []int
	}{
		{[]int{0, 1, 2, 3}, []int{1, 2}},
		{[]int{2, 1}, []int{2, 1}},
		{[]int{0, 3}, []int{0}},
		{[]int{3}, []int{3}},
	}

	for _, test := range tests {
		best := l.BestActions(state, false, test.actions)
		if len(best) != len(test.want) {
			t.Errorf("bestActions(%v): have(%v) want(%v)", test.actions,
				best, test.want)
			continue
		}
		for i := range best {
			if best[i] != test.want[i] {
				t.Errorf("bestActions(%v): have(%v) want(%v)",
					test.actions, best, test.want)
				break
			}
		}
	}

	// All values are zero in a terminal state, so every action ties
	best := l.BestActions(state, true, []int{3, 0})
	if len(best) != 2 || best[0] != 3 || best[1] != 0 {
		t.Errorf("bestActions(terminal): have(%v) want([3 0])", best)
	}
}

func TestLinearThetaShared(t *testing.T) {
	l := newTabularLinear(t, 2, 3)

	if l.Theta().Len() != 6 {
		t.Fatalf("theta: have length %d want 6", l.Theta().Len())
	}

	// Writing through the matrix view is visible in theta
	l.Weights().Set(2, 1, 4.0)
	if have := l.Theta().AtVec(2*2 + 1); have != 4.0 {
		t.Errorf("theta: have(%v) want(4)", have)
	}

	// SetTheta copies into the existing backing data
	view := l.Theta()
	next := mat.NewVecDense(6, []float64{1, 2, 3, 4, 5, 6})
	if err := l.SetTheta(next); err != nil {
		t.Fatalf("setTheta: %v", err)
	}
	if !floats.Equal(view.RawVector().Data, next.RawVector().Data) {
		t.Errorf("setTheta: view not updated, have(%v)", view.RawVector().Data)
	}
	if have := l.Weights().At(1, 0); have != 3 {
		t.Errorf("setTheta: weights(1, 0) have(%v) want(3)", have)
	}

	if err := l.SetTheta(mat.NewVecDense(5, nil)); err == nil {
		t.Error("setTheta: expected error for wrong length")
	}
}

func TestLinearPhi(t *testing.T) {
	l, err := NewLinear(NewIdentity(2, true), 2, weights.NewUniform(-1, 1, 3))
	if err != nil {
		t.Fatal(err)
	}
	state := mat.NewVecDense(2, []float64{0.5, -2})

	phi := l.Phi(state, false)
	want := []float64{1, 0.5, -2}
	if !floats.Equal(mat.Col(nil, 0, phi), want) {
		t.Errorf("phi: have(%v) want(%v)", mat.Col(nil, 0, phi), want)
	}

	phi = l.Phi(state, true)
	if floats.Norm(mat.Col(nil, 0, phi), 1) != 0 {
		t.Errorf("phi(terminal): have(%v) want zeros", mat.Col(nil, 0, phi))
	}

	// Values are the rows of the weights dotted with phi
	values := l.Values(state, false)
	for a := 0; a < 2; a++ {
		want := mat.Dot(l.Weights().RowView(a), mat.NewVecDense(3,
			[]float64{1, 0.5, -2}))
		if math.Abs(values.AtVec(a)-want) > 1e-12 {
			t.Errorf("values(%d): have(%v) want(%v)", a, values.AtVec(a),
				want)
		}
	}
}

func TestNewLinearErrors(t *testing.T) {
	if _, err := NewLinear(NewTabular(2), 0, nil); err == nil {
		t.Error("newLinear: expected error for zero actions")
	}
}
