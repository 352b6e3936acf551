// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/vecalg/interp"
	"github.com/katalvlaran/vecalg/scalar"
	"github.com/katalvlaran/vecalg/vector"
)

// NewLerpCommand creates the lerp command.
func NewLerpCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lerp <a> <b> <t>",
		Short: "Linear interpolation a + (b-a)·t between two vectors",
		Long: `Linearly interpolate between two vectors of equal length.
t is not clamped: values outside [0, 1] extrapolate.`,
		Args: exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLerp(rootOpts, cmd, args)
		},
	}
}

// NewSlerpCommand creates the slerp command.
func NewSlerpCommand(rootOpts *RootOptions) *cobra.Command {
	var nlerp bool
	cmd := &cobra.Command{
		Use:   "slerp <q0> <q1> <t>",
		Short: "Spherical interpolation between two quaternions (x,y,z,w)",
		Long: `Interpolate along the shortest arc between two unit quaternions given
as Vec4{x, y, z, w} or a 4-element list with w last. Nearly identical
rotations fall back to linear interpolation. t is not clamped.`,
		Args: exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlerp(rootOpts, cmd, args, nlerp)
		},
	}
	cmd.Flags().BoolVar(&nlerp, "nlerp", false, "use normalized linear interpolation instead")

	return cmd
}

func runLerp(opts *RootOptions, cmd *cobra.Command, args []string) error {
	a, err := parseVector(args[0])
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitUsage, "invalid vector", err))
	}
	b, err := parseVector(args[1])
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitUsage, "invalid vector", err))
	}
	t, err := parseT(args[2])
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitUsage, "invalid arguments", err))
	}
	if a.Len() != b.Len() {
		return opts.fail(cmd, WrapExitError(ExitFailure, "lerp", vector.ErrDimensionMismatch))
	}
	opts.Logger().Debug("lerp", zap.Int("len", a.Len()), zap.Float64("t", t))

	value, err := lerpDynamic(a, b, scalar.F64(t))
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitFailure, "lerp", err))
	}

	return opts.formatter(cmd).Success(Result{Command: "lerp", Inputs: args, Value: value})
}

// lerpDynamic dispatches fixed arities to interp.Lerp and falls back to
// in-place Dynamic arithmetic for other lengths.
func lerpDynamic(a, b vec, t scalar.F64) (string, error) {
	switch a.Len() {
	case 2:
		va, _ := a.ToVec2()
		vb, _ := b.ToVec2()
		return interp.Lerp(va, vb, t).String(), nil
	case 3:
		va, _ := a.ToVec3()
		vb, _ := b.ToVec3()
		return interp.Lerp(va, vb, t).String(), nil
	case 4:
		va, _ := a.ToVec4()
		vb, _ := b.ToVec4()
		return interp.Lerp(va, vb, t).String(), nil
	}
	d, err := b.Sub(a)
	if err != nil {
		return "", err
	}
	d.ScaleAssign(t)
	if err := d.AddAssign(a); err != nil {
		return "", err
	}
	return d.String(), nil
}

func runSlerp(opts *RootOptions, cmd *cobra.Command, args []string, nlerp bool) error {
	p, err := parseQuaternion(args[0])
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitUsage, "invalid quaternion", err))
	}
	q, err := parseQuaternion(args[1])
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitUsage, "invalid quaternion", err))
	}
	t, err := parseT(args[2])
	if err != nil {
		return opts.fail(cmd, WrapExitError(ExitUsage, "invalid arguments", err))
	}
	opts.Logger().Debug("slerp",
		zap.Stringer("q0", p), zap.Stringer("q1", q),
		zap.Float64("t", t), zap.Float64("dot", float64(p.Dot(q))),
	)

	op := "slerp"
	r := interp.Slerp(p, q, t)
	if nlerp {
		op = "nlerp"
		if r, err = interp.Nlerp(p, q, t); err != nil {
			return opts.fail(cmd, WrapExitError(ExitFailure, op, err))
		}
	}

	return opts.formatter(cmd).Success(Result{Command: "slerp", Op: op, Inputs: args, Value: r.String()})
}
