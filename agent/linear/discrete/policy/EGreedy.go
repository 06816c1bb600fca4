// Package policy implements discrete-action policies using linear
// function approximation
package policy

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golearn-policy/representation"
)

// EGreedy implements an ε-greedy policy using linear function
// approximation. With probability ε an action is selected uniformly
// at random, otherwise one of the actions with the highest estimated
// value is selected.
//
// Exploration can be switched off and on again, for example for
// offline evaluation. Switching exploration off never changes the
// configured ε, it only changes the effective ε to 0.
type EGreedy struct {
	rep       representation.Representation
	epsilon   float64
	exploring bool

	// deterministic selects the first of the best actions rather than
	// breaking ties at random
	deterministic bool

	rng *rand.Rand
}

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected. If
// deterministic is true, ties between best actions are broken by
// taking the first best action that the representation returns.
func NewEGreedy(rep representation.Representation, e float64,
	deterministic bool, src rand.Source) (*EGreedy, error) {
	if err := validEpsilon(e); err != nil {
		return nil, errors.Wrap(err, "newEGreedy")
	}
	if src == nil {
		return nil, errors.Wrap(ErrPrecondition,
			"newEGreedy: random source cannot be nil")
	}

	glog.V(1).Info("Policy: eGreedy")
	glog.V(1).Infof("Epsilon\t\t%v", e)

	return &EGreedy{
		rep:           rep,
		epsilon:       e,
		exploring:     true,
		deterministic: deterministic,
		rng:           rand.New(src),
	}, nil
}

// NewGreedy creates a new greedy policy, which is an EGreedy policy
// with exploration disabled
func NewGreedy(rep representation.Representation, deterministic bool,
	src rand.Source) (*EGreedy, error) {
	return NewEGreedy(rep, 0.0, deterministic, src)
}

// SelectAction selects an action from an ε-greedy policy
func (p *EGreedy) SelectAction(state mat.Vector, terminal bool,
	actions []int) (int, error) {
	if len(actions) == 0 {
		return 0, errors.Wrap(ErrPrecondition,
			"selectAction: no valid actions")
	}

	coin := p.rng.Float64()
	if coin < p.Epsilon() {
		return actions[p.rng.Intn(len(actions))], nil
	}

	best := p.rep.BestActions(state, terminal, actions)
	if err := validBestActions(best, actions); err != nil {
		return 0, errors.Wrap(err, "selectAction")
	}

	if p.deterministic {
		return best[0], nil
	}
	return best[p.rng.Intn(len(best))], nil
}

// DisableExploration sets the effective ε to 0 so that the policy
// always acts greedily
func (p *EGreedy) DisableExploration() {
	glog.V(2).Info("eGreedy: exploration disabled")
	p.exploring = false
}

// EnableExploration restores the effective ε to the configured ε
func (p *EGreedy) EnableExploration() {
	glog.V(2).Infof("eGreedy: exploration enabled (ε = %v)", p.epsilon)
	p.exploring = true
}

// IsExploring indicates whether exploration is enabled
func (p *EGreedy) IsExploring() bool {
	return p.exploring
}

// Epsilon returns the effective ε of the policy, which is 0 when
// exploration is disabled
func (p *EGreedy) Epsilon() float64 {
	if !p.exploring {
		return 0.0
	}
	return p.epsilon
}

// SetEpsilon sets the configured ε of the policy. If exploration is
// disabled, the new ε takes effect once exploration is enabled.
func (p *EGreedy) SetEpsilon(e float64) error {
	if err := validEpsilon(e); err != nil {
		return errors.Wrap(err, "setEpsilon")
	}
	p.epsilon = e
	return nil
}

func validEpsilon(e float64) error {
	// Written so that NaN is rejected
	if !(e >= 0 && e <= 1) {
		return errors.Wrapf(ErrPrecondition, "epsilon %v not in [0, 1]", e)
	}
	return nil
}

// validBestActions ensures best is a non-empty subset of actions
func validBestActions(best, actions []int) error {
	if len(best) == 0 {
		return errors.Wrap(ErrDelegateContract, "no best actions returned")
	}

	valid := make(map[int]struct{}, len(actions))
	for _, a := range actions {
		valid[a] = struct{}{}
	}
	for _, a := range best {
		if _, ok := valid[a]; !ok {
			return errors.Wrapf(ErrDelegateContract, "best action %d is "+
				"not a valid action %v", a, actions)
		}
	}
	return nil
}
