// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/vecalg/vector"
)

// maxRandomCount bounds `vecalg random` output.
const maxRandomCount = 100000

// NewRandomCommand creates the random command.
func NewRandomCommand(rootOpts *RootOptions) *cobra.Command {
	var dim int
	cmd := &cobra.Command{
		Use:   "random <count>",
		Short: "Seeded random unit vectors (dim 3) or rotations (dim 4)",
		Long: `Print count uniformly distributed unit vectors. With --dim 4 the
vectors are unit quaternions, i.e. uniformly random rotations. The same
--seed always produces the same sequence.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(rootOpts, cmd, args[0], dim)
		},
	}
	cmd.Flags().IntVar(&dim, "dim", 3, "vector dimension (3 or 4)")

	return cmd
}

func runRandom(opts *RootOptions, cmd *cobra.Command, arg string, dim int) error {
	count, err := strconv.Atoi(arg)
	if err != nil || count < 0 || count > maxRandomCount {
		return opts.fail(cmd, NewExitError(ExitUsage, "count must be an integer in [0, 100000]"))
	}
	if dim != 3 && dim != 4 {
		return opts.fail(cmd, NewExitError(ExitUsage, "dim must be 3 or 4"))
	}
	opts.Logger().Debug("random", zap.Int("count", count), zap.Int("dim", dim), zap.Uint64("seed", opts.Seed))

	r := vector.NewRand(opts.Seed)
	out := make([]string, count)
	for i := range out {
		if dim == 4 {
			out[i] = vector.RandomUnitVec4(r).String()
		} else {
			out[i] = vector.RandomUnitVec3(r).String()
		}
	}

	return opts.formatter(cmd).Success(Result{Command: "random", Inputs: []string{arg}, Value: out})
}
