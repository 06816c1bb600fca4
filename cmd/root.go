// Package cmd implements the command line interface for inspecting
// policies
package cmd

import (
	"flag"

	"github.com/spf13/cobra"
)

// RootCommand returns the root command of the command line interface
func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Inspect linear discrete-action policies",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// glog flags are parsed by cobra, mark the Go flag set as
			// parsed so glog does not complain
			flag.CommandLine.Parse([]string{})
		},
		SilenceUsage: true,
	}
	AddFlags(cmd)
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	cmd.AddCommand(
		GradCheckCommand(),
		SampleCommand(),
	)

	return cmd
}
