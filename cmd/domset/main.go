// Command domset is a CLI front-end over tdfile/tdbuilder/solve: it reads
// a decomposition file, validates and materializes it, runs the dynamic
// program, and prints the resulting minimum dominating set size.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/domset/cmd/domset/command"
)

func main() {
	if err := command.NewRootCmd().Execute(); err != nil {
		logrus.WithField("error", err).Error("domset: command failed")
		os.Exit(1)
	}
}
