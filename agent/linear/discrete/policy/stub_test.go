package policy

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// stubRep is a representation with fixed features and best actions
type stubRep struct {
	theta      *mat.VecDense
	features   int
	numActions int

	phi  []float64
	best []int

	bestCalls int
}

func newStubRep(features, numActions int, phi []float64) *stubRep {
	return &stubRep{
		theta:      mat.NewVecDense(features*numActions, nil),
		features:   features,
		numActions: numActions,
		phi:        phi,
	}
}

func (s *stubRep) Phi(state mat.Vector, terminal bool) mat.Vector {
	phi := make([]float64, len(s.phi))
	if !terminal {
		copy(phi, s.phi)
	}
	return mat.NewVecDense(len(phi), phi)
}

func (s *stubRep) Theta() *mat.VecDense { return s.theta }

func (s *stubRep) SetTheta(theta *mat.VecDense) error {
	if theta.Len() != s.theta.Len() {
		return errors.New("setTheta: wrong length")
	}
	s.theta.CopyVec(theta)
	return nil
}

func (s *stubRep) FeaturesNum() int { return s.features }

func (s *stubRep) NumActions() int { return s.numActions }

func (s *stubRep) BestActions(state mat.Vector, terminal bool,
	actions []int) []int {
	s.bestCalls++
	return s.best
}
