// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/vecalg/scalar"
)

// NewFactorialCommand creates the factorial command.
func NewFactorialCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "factorial <n>",
		Short: "Exact n! for integers 0..20, Gamma(n+1) for real n",
		Long: `Integral n in 0..20 uses the exact table. Larger integers fail with an
overflow error and negative integers with a domain error; any non-integral
n is evaluated as Gamma(n+1) with the Lanczos approximation.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFactorial(rootOpts, cmd, args[0])
		},
	}
}

func runFactorial(opts *RootOptions, cmd *cobra.Command, arg string) error {
	x, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitUsage, "invalid number", err))
	}

	var value any
	if scalar.IsIntegral(x) {
		// Clamp before the int conversion; the table bounds still decide the error.
		n, ferr := scalar.Factorial(int(scalar.Clamp(x, -1, scalar.MaxFactorial+1)))
		if ferr != nil {
			return opts.fail(cmd, WrapExitError(ExitFailure, "factorial", ferr))
		}
		value = n
	} else {
		value = number(scalar.FactorialReal(x))
	}
	opts.Logger().Debug("factorial", zap.Float64("n", x), zap.Any("value", value))

	return opts.formatter(cmd).Success(Result{Command: "factorial", Inputs: []string{arg}, Value: value})
}
