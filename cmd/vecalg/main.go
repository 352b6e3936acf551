// SPDX-License-Identifier: MIT

// Command vecalg evaluates Fraction, RealNumber, vector and quaternion
// operations from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/vecalg/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vecalg:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
