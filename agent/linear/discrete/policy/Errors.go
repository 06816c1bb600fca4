package policy

import (
	"github.com/pkg/errors"
)

// Errors returned by policies. Errors are wrapped with context, use
// errors.Is to check for a specific kind.
var (
	// ErrPrecondition indicates that a policy was called with invalid
	// arguments, such as an empty set of actions
	ErrPrecondition = errors.New("precondition violation")

	// ErrNumericAnomaly indicates that a probability distribution
	// contained a non-finite entry, which means theta or the features
	// have been corrupted
	ErrNumericAnomaly = errors.New("numeric anomaly")

	// ErrDelegateContract indicates that the representation returned a
	// value violating its contract
	ErrDelegateContract = errors.New("representation contract violation")
)
