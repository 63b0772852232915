package command

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/domset/solve"
	"github.com/katalvlaran/domset/tdbuilder"
	"github.com/katalvlaran/domset/tdfile"
)

// newSolveCmd returns the "domset solve <file.yaml>" subcommand: it loads
// a decomposition file, builds a *decomp.Decomposition from it, runs
// solve.Solve, and prints the resulting integer to stdout. Each phase is
// logged at debug level (enabled by the root command's --verbose flag),
// matching original_source/decomp.cpp's main() phase sequence: parse ->
// validate/build -> traverse -> print.
func newSolveCmd() *cobra.Command {
	var parallelJoins bool

	cmd := &cobra.Command{
		Use:   "solve <file.yaml>",
		Short: "Compute the minimum dominating set size of a decomposition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			logrus.WithField("path", path).Debug("domset: parsing decomposition file")
			specs, err := tdfile.Load(path)
			if err != nil {
				return fmt.Errorf("domset: %w", err)
			}

			logrus.WithField("bags", len(specs)).Debug("domset: building decomposition")
			dec, err := tdbuilder.Build(specs)
			if err != nil {
				return fmt.Errorf("domset: %w", err)
			}

			var opts []solve.Option
			if parallelJoins {
				opts = append(opts, solve.WithParallelJoins())
			}

			logrus.Debug("domset: traversing decomposition")
			result, err := solve.Solve(dec, opts...)
			if err != nil {
				return fmt.Errorf("domset: %w", err)
			}

			logrus.WithField("result", result).Debug("domset: done")
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&parallelJoins, "parallel-joins", false, "process each join bag's two children concurrently")

	return cmd
}
