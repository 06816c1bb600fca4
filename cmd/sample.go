package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golearn-policy/agent"
	"github.com/samuelfneumann/golearn-policy/agent/linear/discrete/policy"
)

var (
	configPath string
	samples    int
	state      int
	valid      []int
	chartPath  string
)

// SampleCommand returns the command which samples actions from a
// policy in a single state and reports the empirical frequency of
// each action
func SampleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample actions from a policy and report their frequencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples < 1 {
				return errors.Errorf("sample: --samples %d must be at "+
					"least 1", samples)
			}

			config, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			rep, err := newTabular(-1, 1)
			if err != nil {
				return err
			}
			p, err := config.CreatePolicy(rep, seed)
			if err != nil {
				return err
			}

			if state < 0 || state >= numStates {
				return errors.Errorf("sample: state %d not in [0, %d)",
					state, numStates)
			}
			for _, a := range valid {
				if a < 0 || a >= numActions {
					return errors.Errorf("sample: action %d not in "+
						"[0, %d)", a, numActions)
				}
			}

			actions := valid
			if len(actions) == 0 {
				actions = make([]int, numActions)
				for i := range actions {
					actions[i] = i
				}
			}

			s := mat.NewVecDense(1, []float64{float64(state)})
			counts := make([]int, numActions)
			for i := 0; i < samples; i++ {
				a, err := p.SelectAction(s, false, actions)
				if err != nil {
					return err
				}
				counts[a]++
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%v  |  State: %d  |  Values: %v\n", config.Type,
				state, mat.Col(nil, 0, rep.Values(s, false)))
			for a, count := range counts {
				fmt.Fprintf(out, "Action %d:\t%.4f", a,
					float64(count)/float64(samples))
				if prober, ok := p.(agent.LogProber); ok {
					prob, err := prober.Probability(s, a)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "\t(π = %.4f)", prob)
				}
				fmt.Fprintln(out)
			}

			if chartPath != "" {
				return renderChart(chartPath, config.Type, counts)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "JSON policy configuration file (default ε-greedy with ε = 0.1)")
	cmd.Flags().IntVar(&samples, "samples", 10000, "Number of actions to sample")
	cmd.Flags().IntVar(&state, "state", 0, "State to sample actions in")
	cmd.Flags().IntSliceVar(&valid, "valid", nil, "Valid actions (default all actions)")
	cmd.Flags().StringVar(&chartPath, "chart", "", "Render a bar chart of action frequencies to this HTML file")

	return cmd
}

// loadConfig reads a TypedConfig from a JSON file
func loadConfig(path string) (agent.TypedConfig, error) {
	if path == "" {
		return policy.NewEGreedyConfig(0.1, false), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return agent.TypedConfig{}, errors.Wrap(err, "loadConfig")
	}

	var config agent.TypedConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return agent.TypedConfig{}, errors.Wrapf(err, "loadConfig: %v", path)
	}
	if err := config.Validate(); err != nil {
		return agent.TypedConfig{}, errors.Wrapf(err, "loadConfig: %v", path)
	}

	glog.V(1).Infof("Loaded %v configuration from %v", config.Type, path)
	return config, nil
}

// renderChart renders a bar chart of action counts to an HTML file
func renderChart(path string, policyType agent.Type, counts []int) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    string(policyType),
			Subtitle: fmt.Sprintf("Action frequencies over %d samples", samples),
		}),
	)

	labels := make([]string, len(counts))
	items := make([]opts.BarData, len(counts))
	for i, count := range counts {
		labels[i] = strconv.Itoa(i)
		items[i] = opts.BarData{Value: float64(count) / float64(samples)}
	}
	bar.SetXAxis(labels).AddSeries("Frequency", items)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "renderChart")
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return errors.Wrap(err, "renderChart")
	}
	return nil
}
