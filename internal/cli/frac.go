// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/vecalg/fraction"
)

// defaultMaxDen bounds the denominator for `frac approx` without a limit.
const defaultMaxDen = 1e6

// FracInfo is the payload of `frac info`.
type FracInfo struct {
	Value     string `json:"value" yaml:"value"`
	Float     any    `json:"float" yaml:"float"`
	Sign      string `json:"sign" yaml:"sign"`
	Finite    bool   `json:"finite" yaml:"finite"`
	Rational  bool   `json:"rational" yaml:"rational"`
	Repeating bool   `json:"repeating" yaml:"repeating"`
}

func (i FracInfo) String() string {
	return fmt.Sprintf("%s = %v (sign %s, finite %t, rational %t, repeating %t)",
		i.Value, i.Float, i.Sign, i.Finite, i.Rational, i.Repeating)
}

// NewFracCommand creates the frac command.
func NewFracCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "frac <add|sub|mul|div|compare|simplify|info|approx> <a> [b]",
		Short: "Fraction arithmetic on n/d values",
		Long: `Evaluate an exact two-field Fraction operation.

Binary ops (add, sub, mul, div, compare) take two fractions; simplify and info
take one. approx turns a decimal into a fraction with denominator at most b
(default 1e6). Non-finite fractions such as 1/0 and 0/0 are valid inputs, but
add and sub reject them.`,
		Args: rangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrac(rootOpts, cmd, args)
		},
	}
}

func runFrac(opts *RootOptions, cmd *cobra.Command, args []string) error {
	op, in := args[0], args[1:]
	log := opts.Logger().With(zap.String("command", "frac"), zap.String("op", op))

	if op == "approx" {
		return runFracApprox(opts, cmd, in)
	}
	if err := checkArity(op, in, fracBinary); err != nil {
		return opts.fail(cmd, err)
	}

	a, err := fraction.Parse(in[0])
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitUsage, "invalid fraction", err))
	}
	var b fraction.Fraction
	if len(in) == 2 {
		if b, err = fraction.Parse(in[1]); err != nil {
			return opts.fail(cmd, WrapExitError(ExitUsage, "invalid fraction", err))
		}
	}
	log.Debug("parsed operands", zap.Stringer("a", a), zap.Stringer("b", b))

	var value any
	switch op {
	case "add":
		value, err = stringerOf(a.Add(b))
	case "sub":
		value, err = stringerOf(a.Sub(b))
	case "mul":
		value = a.Mul(b).String()
	case "div":
		value, err = stringerOf(a.Div(b))
	case "compare":
		value = a.Compare(b)
	case "simplify":
		value = a.Simplify().String()
	case "info":
		value = FracInfo{
			Value:     a.String(),
			Float:     number(a.Float64()),
			Sign:      a.Sign().String(),
			Finite:    a.IsFinite(),
			Rational:  a.IsRational(),
			Repeating: a.IsRepeating(),
		}
	}
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitFailure, "frac "+op, err))
	}

	return opts.formatter(cmd).Success(Result{Command: "frac", Op: op, Inputs: in, Value: value})
}

func runFracApprox(opts *RootOptions, cmd *cobra.Command, in []string) error {
	x, err := strconv.ParseFloat(in[0], 64)
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitUsage, "invalid number", err))
	}
	maxDen := float64(defaultMaxDen)
	if len(in) == 2 {
		if maxDen, err = strconv.ParseFloat(in[1], 64); err != nil {
			return opts.fail(cmd, WrapExitError(ExitUsage, "invalid max denominator", err))
		}
	}
	f, err := fraction.Approximate(x, maxDen)
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitFailure, "frac approx", err))
	}

	return opts.formatter(cmd).Success(Result{Command: "frac", Op: "approx", Inputs: in, Value: f.String()})
}

var fracBinary = map[string]bool{"add": true, "sub": true, "mul": true, "div": true, "compare": true, "simplify": false, "info": false}

// checkArity validates op against table (op -> binary?) and the operand count.
func checkArity(op string, in []string, table map[string]bool) error {
	binary, ok := table[op]
	if !ok {
		return NewExitError(ExitUsage, fmt.Sprintf("unknown op %q", op))
	}
	want := 1
	if binary {
		want = 2
	}
	if len(in) != want {
		return NewExitError(ExitUsage, fmt.Sprintf("op %q takes %d operand(s), got %d", op, want, len(in)))
	}
	return nil
}

// stringerOf adapts a (value, error) pair to (string, error).
func stringerOf[S fmt.Stringer](v S, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v.String(), nil
}
