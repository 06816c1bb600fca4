package cmd

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golearn-policy/agent/linear/discrete/policy"
	"github.com/samuelfneumann/golearn-policy/gradcheck"
)

var (
	trials    int
	thetas    int
	tolerance float64
)

// GradCheckCommand returns the command which checks the gradient of
// the log probability of a Gibbs policy against finite differences
// for random parameters, states, and actions
func GradCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gradcheck",
		Short: "Check Gibbs policy gradients against finite differences",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := newTabular(0, 1)
			if err != nil {
				return err
			}
			g, err := policy.NewGibbs(rep, false, rand.NewSource(seed))
			if err != nil {
				return err
			}

			rng := newRNG()
			failed := 0
			for i := 0; i < trials; i++ {
				state := mat.NewVecDense(1, []float64{
					float64(rng.Intn(numStates)),
				})
				action := rng.Intn(numActions)

				for j := 0; j < thetas; j++ {
					theta := mat.NewVecDense(rep.Theta().Len(), nil)
					for k := 0; k < theta.Len(); k++ {
						theta.SetVec(k, rng.Float64())
					}

					result, err := gradcheck.LogProbability(g, state, action,
						theta, nil)
					if err != nil {
						return err
					}

					status := aurora.Green("PASS")
					if result.MaxAbsError() > tolerance {
						status = aurora.Red("FAIL")
						failed++
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%v  %v\n", status, result)
				}
			}

			if failed > 0 {
				return errors.Errorf("gradcheck: %d of %d checks exceeded "+
					"tolerance %v", failed, trials*thetas, tolerance)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&trials, "trials", 10, "Number of random state-action pairs")
	cmd.Flags().IntVar(&thetas, "thetas", 10, "Number of random parameter vectors per state-action pair")
	cmd.Flags().Float64Var(&tolerance, "tol", 1e-4, "Maximum element-wise gradient error")

	return cmd
}
