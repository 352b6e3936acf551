// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/vecalg/realnum"
)

// NewRealCommand creates the real command.
func NewRealCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "real <add|sub|mul|div|sqrt|compare> <a> [b]",
		Short: "RealNumber (2^e * m) arithmetic beyond float64 range",
		Long: `Evaluate a RealNumber operation. Operands are RealNumber{e=.., m=..}
text or plain decimals. Results print in RealNumber form; --format json
adds the float64 value (saturated to ±Inf outside its range).`,
		Args: rangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReal(rootOpts, cmd, args)
		},
	}
}

var realBinary = map[string]bool{"add": true, "sub": true, "mul": true, "div": true, "compare": true, "sqrt": false}

// RealValue is the payload of real arithmetic results.
type RealValue struct {
	Text  string `json:"text" yaml:"text"`
	Float any    `json:"float" yaml:"float"`
	Log2  any    `json:"log2" yaml:"log2"`
}

func (v RealValue) String() string { return v.Text }

func realValue(n realnum.Number) RealValue {
	return RealValue{Text: n.String(), Float: number(n.Float64()), Log2: number(n.Log2())}
}

func runReal(opts *RootOptions, cmd *cobra.Command, args []string) error {
	op, in := args[0], args[1:]
	log := opts.Logger().With(zap.String("command", "real"), zap.String("op", op))

	if err := checkArity(op, in, realBinary); err != nil {
		return opts.fail(cmd, err)
	}
	a, err := realnum.Parse(in[0])
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitUsage, "invalid real number", err))
	}
	var b realnum.Number
	if len(in) == 2 {
		if b, err = realnum.Parse(in[1]); err != nil {
			return opts.fail(cmd, WrapExitError(ExitUsage, "invalid real number", err))
		}
	}
	log.Debug("parsed operands", zap.Stringer("a", a), zap.Stringer("b", b))

	var value any
	switch op {
	case "add":
		value = realValue(a.Add(b))
	case "sub":
		value = realValue(a.Sub(b))
	case "mul":
		value = realValue(a.Mul(b))
	case "div":
		var q realnum.Number
		if q, err = a.Div(b); err == nil {
			value = realValue(q)
		}
	case "sqrt":
		value = realValue(a.Sqrt())
	case "compare":
		value = a.Compare(b)
	}
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitFailure, "real "+op, err))
	}

	return opts.formatter(cmd).Success(Result{Command: "real", Op: op, Inputs: in, Value: value})
}
