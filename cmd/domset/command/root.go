// Package command wires the domset CLI's cobra commands: a root command
// that configures logging, and the solve subcommand that drives the
// parse -> validate/build -> traverse -> print pipeline.
package command

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the base "domset" command with its subcommands
// attached, mirroring the teacher example's NewRootCmd(dockerCli) shape:
// a single root command, a persistent flag resolved before any
// subcommand runs, and subcommands attached via AddCommand.
func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "domset",
		Short: "Exact minimum dominating set size via nice tree decomposition",
		Long: "domset computes the exact minimum dominating set size of a graph\n" +
			"by running a dynamic program over a caller-supplied nice tree decomposition.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(newSolveCmd())

	return cmd
}
