package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/golearn-policy/representation"
	"github.com/samuelfneumann/golearn-policy/utils/matutils/initializers/weights"
)

var (
	seed       uint64
	numStates  int
	numActions int
)

// AddFlags adds the flags shared by all commands
func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Uint64Var(&seed, "seed", 1, "Seed for all random number generation")
	cmd.PersistentFlags().IntVar(&numStates, "states", 20, "Number of states of the tabular representation")
	cmd.PersistentFlags().IntVar(&numActions, "actions", 4, "Number of actions")
}

// newTabular returns a tabular representation with weights drawn
// uniformly from [min, max)
func newTabular(min, max float64) (*representation.Linear, error) {
	if numStates < 1 {
		return nil, errors.Errorf("newTabular: --states %d must be at "+
			"least 1", numStates)
	}
	if numActions < 1 {
		return nil, errors.Errorf("newTabular: --actions %d must be at "+
			"least 1", numActions)
	}
	init := weights.NewUniform(min, max, seed)
	return representation.NewLinear(representation.NewTabular(numStates),
		numActions, init)
}

// newRNG returns a random number generator for the command, independent
// of the generators used by the representation and policy
func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(seed + 1))
}
