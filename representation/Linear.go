package representation

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golearn-policy/utils/floatutils"
	"github.com/samuelfneumann/golearn-policy/utils/matutils"
	"github.com/samuelfneumann/golearn-policy/utils/matutils/initializers/weights"
)

// Linear implements a linear representation of action values over a
// Featurizer. The value of action a in state s is theta_a · phi(s),
// where theta_a is the a-th block of theta.
type Linear struct {
	featurizer Featurizer
	numActions int

	theta   *mat.VecDense
	weights *mat.Dense // rows = actions, cols = features; shares theta
}

// NewLinear returns a new Linear representation with numActions
// actions. The weights are initialized by init, which sees theta as a
// matrix with one row per action and one column per feature.
func NewLinear(f Featurizer, numActions int,
	init weights.Initializer) (*Linear, error) {
	if numActions < 1 {
		return nil, errors.New("newLinear: must have at least one action")
	}
	if f.Len() < 1 {
		return nil, errors.New("newLinear: featurizer must produce at " +
			"least one feature")
	}

	theta := mat.NewVecDense(numActions*f.Len(), nil)
	weights := matutils.AsMatrix(theta, numActions)
	if init != nil {
		init.Initialize(weights)
	}

	return &Linear{
		featurizer: f,
		numActions: numActions,
		theta:      theta,
		weights:    weights,
	}, nil
}

// Phi returns the features of a state. Terminal states have all-zero
// features.
func (l *Linear) Phi(state mat.Vector, terminal bool) mat.Vector {
	if terminal {
		return mat.NewVecDense(l.FeaturesNum(), nil)
	}
	return l.featurizer.Features(state)
}

// Theta returns the parameter vector of the representation
func (l *Linear) Theta() *mat.VecDense {
	return l.theta
}

// SetTheta copies the values of theta into the parameter vector of the
// representation. Any previously returned views of the parameters
// will see the new values.
func (l *Linear) SetTheta(theta *mat.VecDense) error {
	if theta.Len() != l.theta.Len() {
		return errors.Errorf("setTheta: expected theta of length %d "+
			"but got %d", l.theta.Len(), theta.Len())
	}
	if theta != l.theta {
		l.theta.CopyVec(theta)
	}
	return nil
}

// Weights returns theta as a matrix with one row per action and one
// column per feature. The returned matrix shares its data with theta.
func (l *Linear) Weights() *mat.Dense {
	return l.weights
}

// FeaturesNum returns the number of features per action
func (l *Linear) FeaturesNum() int {
	return l.featurizer.Len()
}

// NumActions returns the number of actions
func (l *Linear) NumActions() int {
	return l.numActions
}

// Values returns the estimated value of each action in a state
func (l *Linear) Values(state mat.Vector, terminal bool) *mat.VecDense {
	values := mat.NewVecDense(l.numActions, nil)
	values.MulVec(l.weights, l.Phi(state, terminal))
	return values
}

// BestActions returns the actions with maximum estimated value among
// actions, in the order they appear in actions
func (l *Linear) BestActions(state mat.Vector, terminal bool,
	actions []int) []int {
	if len(actions) == 0 {
		return nil
	}

	values := l.Values(state, terminal)
	candidates := make([]float64, len(actions))
	for i, a := range actions {
		candidates[i] = values.AtVec(a)
	}

	_, indices := floatutils.MaxSlice(candidates)
	best := make([]int, len(indices))
	for i, index := range indices {
		best[i] = actions[index]
	}
	return best
}

// String implements the fmt.Stringer interface
func (l *Linear) String() string {
	return fmt.Sprintf("Linear | Actions: %d  |  Features: %d",
		l.numActions, l.FeaturesNum())
}
