package policy

import (
	"math"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golearn-policy/representation"
	"github.com/samuelfneumann/golearn-policy/utils/floatutils"
	"github.com/samuelfneumann/golearn-policy/utils/matutils"
)

// MaxExp bounds each exponentiated action score before normalization
const MaxExp float64 = 1e50

// Gibbs implements a Gibbs (softmax) policy over a finite number of
// actions using linear function approximation. The probability of
// action a in state s is proportional to exp(theta_a · phi_a(s)),
// where theta_a and phi_a(s) are the a-th blocks of the parameters and
// features of the representation.
//
// The policy holds no parameters of its own. Theta and SetTheta read
// and write the parameters of the representation.
type Gibbs struct {
	rep representation.Representation

	// unrestricted samples actions from the distribution over all
	// actions, ignoring the valid actions passed to SelectAction
	unrestricted bool

	rng *rand.Rand
}

// NewGibbs returns a new Gibbs policy. By default, SelectAction
// samples from the distribution restricted to and renormalized over
// the valid actions it is given. If unrestricted is true, actions are
// sampled from the distribution over all actions instead, in which
// case every action must be valid in every state.
func NewGibbs(rep representation.Representation, unrestricted bool,
	src rand.Source) (*Gibbs, error) {
	if rep.FeaturesNum() < 1 || rep.NumActions() < 1 {
		return nil, errors.Wrapf(ErrPrecondition, "newGibbs: "+
			"representation has %d features and %d actions",
			rep.FeaturesNum(), rep.NumActions())
	}
	if src == nil {
		return nil, errors.Wrap(ErrPrecondition,
			"newGibbs: random source cannot be nil")
	}

	glog.V(1).Info("Policy: Gibbs")
	glog.V(1).Infof("Unrestricted\t%v", unrestricted)

	return &Gibbs{rep: rep, unrestricted: unrestricted, rng: rand.New(src)}, nil
}

// Theta returns the parameters of the representation
func (g *Gibbs) Theta() *mat.VecDense {
	return g.rep.Theta()
}

// SetTheta sets the parameters of the representation
func (g *Gibbs) SetTheta(theta *mat.VecDense) error {
	return g.rep.SetTheta(theta)
}

// Probabilities returns the probability of selecting each action in
// a state
func (g *Gibbs) Probabilities(state mat.Vector,
	terminal bool) (*mat.VecDense, error) {
	phi, err := g.phi(state, terminal)
	if err != nil {
		return nil, errors.Wrap(err, "probabilities")
	}

	probs, err := g.probabilities(phi)
	if err != nil {
		return nil, errors.Wrap(err, "probabilities")
	}
	return probs, nil
}

// Probability returns the probability of selecting action in a
// non-terminal state
func (g *Gibbs) Probability(state mat.Vector, action int) (float64, error) {
	if err := g.validAction(action); err != nil {
		return 0, errors.Wrap(err, "probability")
	}

	probs, err := g.Probabilities(state, false)
	if err != nil {
		return 0, errors.Wrap(err, "probability")
	}
	return probs.AtVec(action), nil
}

// SelectAction samples an action from the policy in a state. Each
// action in actions must be distinct.
func (g *Gibbs) SelectAction(state mat.Vector, terminal bool,
	actions []int) (int, error) {
	if len(actions) == 0 {
		return 0, errors.Wrap(ErrPrecondition,
			"selectAction: no valid actions")
	}
	seen := make(map[int]struct{}, len(actions))
	for _, a := range actions {
		if err := g.validAction(a); err != nil {
			return 0, errors.Wrap(err, "selectAction")
		}
		if _, ok := seen[a]; ok {
			return 0, errors.Wrapf(ErrPrecondition, "selectAction: "+
				"duplicate action %d in %v", a, actions)
		}
		seen[a] = struct{}{}
	}

	probs, err := g.Probabilities(state, terminal)
	if err != nil {
		return 0, errors.Wrap(err, "selectAction")
	}

	if g.unrestricted {
		weights := mat.Col(nil, 0, probs)
		return floatutils.InverseTransform(weights, g.rng.Float64()), nil
	}

	weights := make([]float64, len(actions))
	for i, a := range actions {
		weights[i] = probs.AtVec(a)
	}

	// Every valid action can underflow to probability 0 when other
	// actions dominate; fall back to uniform over the valid actions
	if floats.Sum(weights) == 0 {
		for i := range weights {
			weights[i] = 1.0
		}
	}

	i := floatutils.InverseTransform(weights, g.rng.Float64())
	return actions[i], nil
}

// LogProbabilityGradient returns the gradient of the log probability
// of selecting action in a non-terminal state with respect to theta:
//
//	∇ log π(a|s) = φ(s, a) − Σ_b π(b|s) φ(s, b)
//
// The gradient has the same layout as theta.
func (g *Gibbs) LogProbabilityGradient(state mat.Vector,
	action int) (*mat.VecDense, error) {
	if err := g.validAction(action); err != nil {
		return nil, errors.Wrap(err, "logProbabilityGradient")
	}

	phi, err := g.phi(state, false)
	if err != nil {
		return nil, errors.Wrap(err, "logProbabilityGradient")
	}
	probs, err := g.probabilities(phi)
	if err != nil {
		return nil, errors.Wrap(err, "logProbabilityGradient")
	}

	n := g.rep.FeaturesNum()
	numActions := g.rep.NumActions()
	grad := mat.NewVecDense(n*numActions, nil)

	if phi.Len() == n {
		// Shared features: −π ⊗ φ, one row per action
		matutils.AsMatrix(grad, numActions).Outer(-1.0, probs, phi)
	} else {
		for b := 0; b < numActions; b++ {
			block := matutils.Block(grad, b, n)
			block.ScaleVec(-probs.AtVec(b), g.block(phi, b))
		}
	}

	taken := matutils.Block(grad, action, n)
	taken.AddVec(taken, g.block(phi, action))

	if matutils.HasNaN(grad) {
		return nil, errors.Wrapf(ErrNumericAnomaly,
			"logProbabilityGradient: gradient %v", matutils.Format(grad.T()))
	}
	return grad, nil
}

// phi returns the features of a state, ensuring they have a valid
// length for the representation's parameters
func (g *Gibbs) phi(state mat.Vector, terminal bool) (*mat.VecDense, error) {
	n := g.rep.FeaturesNum()
	numActions := g.rep.NumActions()

	if theta := g.rep.Theta(); theta.Len() != n*numActions {
		return nil, errors.Wrapf(ErrDelegateContract, "theta has length "+
			"%d but expected %d features x %d actions", theta.Len(), n,
			numActions)
	}

	phi := g.rep.Phi(state, terminal)
	if phi.Len() != n && phi.Len() != n*numActions {
		return nil, errors.Wrapf(ErrDelegateContract, "features have "+
			"length %d but expected %d or %d", phi.Len(), n, n*numActions)
	}
	return mat.VecDenseCopyOf(phi), nil
}

// block returns the features of action a. If phi holds a single
// block, all actions share it.
func (g *Gibbs) block(phi *mat.VecDense, a int) *mat.VecDense {
	n := g.rep.FeaturesNum()
	if phi.Len() == n {
		return phi
	}
	return matutils.Block(phi, a, n)
}

// probabilities computes the softmax distribution over actions given
// the features of a state
func (g *Gibbs) probabilities(phi *mat.VecDense) (*mat.VecDense, error) {
	n := g.rep.FeaturesNum()
	numActions := g.rep.NumActions()
	theta := g.rep.Theta()

	probs := mat.NewVecDense(numActions, nil)
	for a := 0; a < numActions; a++ {
		score := mat.Dot(matutils.Block(theta, a, n), g.block(phi, a))

		v := math.Exp(score)
		if v > MaxExp {
			v = MaxExp
		}
		probs.SetVec(a, v)
	}

	sum := mat.Sum(probs)
	if !(sum > 0) || math.IsInf(sum, 0) {
		return nil, errors.Wrapf(ErrNumericAnomaly, "cannot normalize "+
			"exponentiated scores %v", matutils.Format(probs.T()))
	}
	// Divide rather than scale by 1/sum, which overflows for a
	// subnormal sum
	for a := 0; a < numActions; a++ {
		probs.SetVec(a, probs.AtVec(a)/sum)
	}

	if !matutils.IsFinite(probs) {
		return nil, errors.Wrapf(ErrNumericAnomaly, "probabilities %v",
			matutils.Format(probs.T()))
	}
	return probs, nil
}

func (g *Gibbs) validAction(a int) error {
	if a < 0 || a >= g.rep.NumActions() {
		return errors.Wrapf(ErrPrecondition, "action %d not in [0, %d)", a,
			g.rep.NumActions())
	}
	return nil
}
