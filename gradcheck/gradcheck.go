// Package gradcheck verifies the log-probability gradients of policies
// against finite differences
package gradcheck

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golearn-policy/agent"
)

// DefaultStep is the finite difference step size used when no
// settings are given
const DefaultStep float64 = 1e-6

// Result is the outcome of checking the gradient of a policy for a
// single state, action, and set of parameters
type Result struct {
	State  mat.Vector
	Action int

	Analytic *mat.VecDense // Gradient computed by the policy
	Numeric  *mat.VecDense // Finite difference approximation

	// Error is the Euclidean distance between the analytic and
	// numeric gradients
	Error float64
}

// MaxAbsError returns the largest element-wise absolute difference
// between the analytic and numeric gradients
func (r Result) MaxAbsError() float64 {
	max := 0.0
	for i := 0; i < r.Analytic.Len(); i++ {
		max = math.Max(max, math.Abs(r.Analytic.AtVec(i)-r.Numeric.AtVec(i)))
	}
	return max
}

// String implements the fmt.Stringer interface
func (r Result) String() string {
	return fmt.Sprintf("State: %v  |  Action: %d  |  Error: %.3e",
		mat.Col(nil, 0, r.State), r.Action, r.Error)
}

// LogProbability compares p.LogProbabilityGradient(state, action) at
// parameters theta to the finite difference gradient of
// log(p.Probability(state, action)). The parameters of p are restored
// before returning. If settings is nil, central differences with step
// DefaultStep are used.
func LogProbability(p agent.LogProber, state mat.Vector, action int,
	theta *mat.VecDense, settings *fd.Settings) (result Result, err error) {
	if settings == nil {
		settings = &fd.Settings{Formula: fd.Central, Step: DefaultStep}
	}

	original := mat.VecDenseCopyOf(p.Theta())
	defer func() {
		if restoreErr := p.SetTheta(original); restoreErr != nil &&
			err == nil {
			result = Result{}
			err = errors.Wrap(restoreErr, "logProbability: restoring theta")
		}
	}()

	var evalErr error
	logProb := func(x []float64) float64 {
		if err := p.SetTheta(mat.NewVecDense(len(x), x)); err != nil {
			evalErr = err
			return math.NaN()
		}
		prob, err := p.Probability(state, action)
		if err != nil {
			evalErr = err
			return math.NaN()
		}
		return math.Log(prob)
	}

	x := mat.Col(nil, 0, theta)
	numeric := fd.Gradient(nil, logProb, x, settings)
	if evalErr != nil {
		return Result{}, errors.Wrap(evalErr, "logProbability")
	}

	if err := p.SetTheta(theta); err != nil {
		return Result{}, errors.Wrap(err, "logProbability")
	}
	analytic, err := p.LogProbabilityGradient(state, action)
	if err != nil {
		return Result{}, errors.Wrap(err, "logProbability")
	}

	return Result{
		State:    state,
		Action:   action,
		Analytic: analytic,
		Numeric:  mat.NewVecDense(len(numeric), numeric),
		Error:    floats.Distance(mat.Col(nil, 0, analytic), numeric, 2),
	}, nil
}
