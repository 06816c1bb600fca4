// Package agent defines the interfaces of discrete-action policies and
// the configuration types used to construct them
package agent

import (
	"gonum.org/v1/gonum/mat"
)

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. A Policy is layered on
// top of a representation.Representation, which it shares with the
// learning algorithm. Any changes the learner makes to the
// representation's weights are reflected in the actions the Policy
// chooses.
type Policy interface {
	// SelectAction selects an action from actions in the given state.
	// The terminal argument indicates whether the state is terminal.
	SelectAction(state mat.Vector, terminal bool, actions []int) (int, error)
}

// Explorer is a Policy whose exploration can be switched off, for
// example to evaluate the greedy policy during training
type Explorer interface {
	Policy

	// DisableExploration makes the policy act greedily
	DisableExploration()

	// EnableExploration restores the exploration of the policy
	EnableExploration()

	// IsExploring indicates whether exploration is enabled
	IsExploring() bool
}

// LogProber implements a policy type that can calculate the
// probability of taking some action in some state, as well as the
// gradient of the log of this probability with respect to the
// parameters of the policy. This is what policy gradient methods
// need from a policy.
type LogProber interface {
	Policy

	// Probability returns the probability of taking action in state
	Probability(state mat.Vector, action int) (float64, error)

	// LogProbabilityGradient returns the gradient of the log
	// probability of taking action in state with respect to Theta()
	LogProbabilityGradient(state mat.Vector, action int) (*mat.VecDense, error)

	// Theta returns the parameters of the policy
	Theta() *mat.VecDense

	// SetTheta sets the parameters of the policy
	SetTheta(*mat.VecDense) error
}
