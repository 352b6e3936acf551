// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewVecCommand creates the vec command.
func NewVecCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vec <add|sub|dot|cross|normalize|magnitude|distance|angle> <a> [b]",
		Short: "Vector arithmetic on float64 components",
		Long: `Evaluate a vector operation. Vectors are Vec2/Vec3/Vec4{...} or
Vector{0=..} text, or comma lists such as 1,0,0. Binary ops require equal
lengths; cross requires 3 components.`,
		Args: rangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVec(rootOpts, cmd, args)
		},
	}
}

var vecBinary = map[string]bool{
	"add": true, "sub": true, "dot": true, "cross": true, "distance": true, "angle": true,
	"normalize": false, "magnitude": false,
}

func runVec(opts *RootOptions, cmd *cobra.Command, args []string) error {
	op, in := args[0], args[1:]
	log := opts.Logger().With(zap.String("command", "vec"), zap.String("op", op))

	if err := checkArity(op, in, vecBinary); err != nil {
		return opts.fail(cmd, err)
	}
	a, err := parseVector(in[0])
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitUsage, "invalid vector", err))
	}
	b := a
	if len(in) == 2 {
		if b, err = parseVector(in[1]); err != nil {
			return opts.fail(cmd, WrapExitError(ExitUsage, "invalid vector", err))
		}
	}
	log.Debug("parsed operands", zap.Int("len_a", a.Len()), zap.Int("len_b", b.Len()))

	var value any
	switch op {
	case "add":
		var r vec
		if r, err = a.Add(b); err == nil {
			value = formatVector(r)
		}
	case "sub":
		var r vec
		if r, err = a.Sub(b); err == nil {
			value = formatVector(r)
		}
	case "dot":
		d, e := a.Dot(b)
		value, err = number(float64(d)), e
	case "distance":
		d, e := a.Distance(b)
		value, err = number(float64(d)), e
	case "cross":
		value, err = cross(a, b)
	case "angle":
		r, e := a.Angle(b)
		value, err = number(r), e
	case "normalize":
		var r vec
		if r, err = a.Normalize(); err == nil {
			value = formatVector(r)
		}
	case "magnitude":
		value = number(float64(a.Magnitude()))
	}
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitFailure, "vec "+op, err))
	}

	return opts.formatter(cmd).Success(Result{Command: "vec", Op: op, Inputs: in, Value: value})
}

func cross(a, b vec) (any, error) {
	va, err := a.ToVec3()
	if err != nil {
		return nil, err
	}
	vb, err := b.ToVec3()
	if err != nil {
		return nil, err
	}
	return va.Cross(vb).String(), nil
}
