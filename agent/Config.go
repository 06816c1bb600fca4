package agent

import (
	"github.com/samuelfneumann/golearn-policy/representation"
)

// Config represents a configuration for creating a policy
type Config interface {
	// CreatePolicy creates the policy that the config describes on top
	// of a representation. The seed seeds the policy's random source.
	CreatePolicy(rep representation.Representation, seed uint64) (Policy,
		error)

	// ValidPolicy returns whether the argument policy is valid for the
	// Config
	ValidPolicy(Policy) bool

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of policy the Config creates
	Type() Type
}
