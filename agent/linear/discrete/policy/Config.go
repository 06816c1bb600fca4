package policy

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/golearn-policy/agent"
	"github.com/samuelfneumann/golearn-policy/representation"
)

func init() {
	// Register Config types so that they can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.EGreedyLinear, EGreedyConfig{})
	agent.Register(agent.GibbsLinear, GibbsConfig{})
}

// EGreedyConfig represents a configuration for the EGreedy policy
type EGreedyConfig struct {
	Epsilon float64

	// Deterministic breaks ties between best actions by taking the
	// first best action
	Deterministic bool
}

// NewEGreedyConfig returns a new EGreedyConfig as an agent.TypedConfig
// so that it can easily be JSON serialized/deserialized without
// knowing the underlying concrete type.
func NewEGreedyConfig(e float64, deterministic bool) agent.TypedConfig {
	return agent.NewTypedConfig(EGreedyConfig{e, deterministic})
}

// CreatePolicy creates the EGreedy policy from the Config
func (c EGreedyConfig) CreatePolicy(rep representation.Representation,
	seed uint64) (agent.Policy, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "createPolicy")
	}
	p, err := NewEGreedy(rep, c.Epsilon, c.Deterministic,
		rand.NewSource(seed))
	if err != nil {
		return nil, errors.Wrap(err, "createPolicy")
	}
	return p, nil
}

// ValidPolicy returns whether the argument policy is a valid policy
// for construction with the Config
func (c EGreedyConfig) ValidPolicy(p agent.Policy) bool {
	_, ok := p.(*EGreedy)
	return ok
}

// Validate ensures that the Config is valid
func (c EGreedyConfig) Validate() error {
	return validEpsilon(c.Epsilon)
}

// Type returns the type of the policy constructed by the Config
func (c EGreedyConfig) Type() agent.Type {
	return agent.EGreedyLinear
}

// GibbsConfig represents a configuration for the Gibbs policy
type GibbsConfig struct {
	// Unrestricted samples from all actions rather than only from
	// the valid actions
	Unrestricted bool
}

// NewGibbsConfig returns a new GibbsConfig as an agent.TypedConfig
func NewGibbsConfig(unrestricted bool) agent.TypedConfig {
	return agent.NewTypedConfig(GibbsConfig{unrestricted})
}

// CreatePolicy creates the Gibbs policy from the Config
func (c GibbsConfig) CreatePolicy(rep representation.Representation,
	seed uint64) (agent.Policy, error) {
	p, err := NewGibbs(rep, c.Unrestricted, rand.NewSource(seed))
	if err != nil {
		return nil, errors.Wrap(err, "createPolicy")
	}
	return p, nil
}

// ValidPolicy returns whether the argument policy is a valid policy
// for construction with the Config
func (c GibbsConfig) ValidPolicy(p agent.Policy) bool {
	_, ok := p.(*Gibbs)
	return ok
}

// Validate ensures that the Config is valid
func (c GibbsConfig) Validate() error {
	return nil
}

// Type returns the type of the policy constructed by the Config
func (c GibbsConfig) Type() agent.Type {
	return agent.GibbsLinear
}
