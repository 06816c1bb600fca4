// Package representation defines the function approximation layer that
// discrete-action policies are built on top of.
//
// A Representation owns a parameter vector theta and maps states to
// feature vectors. Theta is laid out action-major: for n features per
// action, the weights for action a are theta[a*n:(a+1)*n]. Policies
// never copy theta, they read and write it through the Representation
// so that a learning algorithm and any number of policies always see
// the same weights.
package representation

import (
	"gonum.org/v1/gonum/mat"
)

// Representation implements a linear function approximator over
// state-action features
type Representation interface {
	// Phi returns the feature vector of a state. If terminal is true,
	// the state is a terminal state. The returned vector is either a
	// single block of FeaturesNum() features shared by all actions, or
	// NumActions() blocks of FeaturesNum() features stacked in action
	// order.
	Phi(state mat.Vector, terminal bool) mat.Vector

	// Theta returns the parameter vector. Modifying the returned
	// vector modifies the Representation.
	Theta() *mat.VecDense

	// SetTheta sets the values of the parameter vector
	SetTheta(*mat.VecDense) error

	// FeaturesNum returns the number of features per action
	FeaturesNum() int

	// NumActions returns the number of actions theta has weights for
	NumActions() int

	// BestActions returns the subset of actions with the maximum
	// estimated value in the state, including ties
	BestActions(state mat.Vector, terminal bool, actions []int) []int
}

// Featurizer maps states to feature vectors of a fixed length
type Featurizer interface {
	Features(state mat.Vector) *mat.VecDense
	Len() int
}
