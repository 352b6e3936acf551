// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string
	ConfigPath string
	Seed       uint64
	Precision  int

	logger *zap.Logger
}

// Logger returns the logger built for the running command, or a no-op
// logger before PersistentPreRunE has run.
func (o *RootOptions) Logger() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// NewRootCommand creates the root command for the vecalg CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	def := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "vecalg",
		Short: "Extended-precision numbers, fractions and vector algebra",
		Long: `vecalg evaluates Fraction, RealNumber, vector and quaternion operations
from the command line. Values use the same text forms the library prints,
e.g. 3/4, RealNumber{e=3, m=1.5}, Vec3{x=1, y=0, z=0} or 1,0,0.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose (debug) logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", def.Format, "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "TOML config file")
	cmd.PersistentFlags().Uint64Var(&opts.Seed, "seed", def.Seed, "random generator seed")
	cmd.PersistentFlags().IntVar(&opts.Precision, "precision", def.Precision, "significant digits for text output (-1 = shortest)")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitUsage, "invalid flags", err)
	})

	cmd.AddCommand(NewFracCommand(opts))
	cmd.AddCommand(NewRealCommand(opts))
	cmd.AddCommand(NewVecCommand(opts))
	cmd.AddCommand(NewLerpCommand(opts))
	cmd.AddCommand(NewSlerpCommand(opts))
	cmd.AddCommand(NewFactorialCommand(opts))
	cmd.AddCommand(NewRandomCommand(opts))

	return cmd
}

// resolve merges the config file under the flags, validates the result and
// builds the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	o.logger = newLogger(o.Verbose, cmd.ErrOrStderr())

	if o.ConfigPath != "" {
		cfg, err := LoadConfig(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitUsage, "invalid config", err)
		}
		flags := cmd.Flags()
		if !flags.Changed("format") {
			o.Format = cfg.Format
		}
		if !flags.Changed("seed") {
			o.Seed = cfg.Seed
		}
		if !flags.Changed("precision") {
			o.Precision = cfg.Precision
		}
		o.logger.Debug("config loaded", zap.String("path", o.ConfigPath))
	}

	eff := Config{Format: o.Format, Seed: o.Seed, Precision: o.Precision}
	if err := eff.Validate(); err != nil {
		return WrapExitError(ExitUsage, "invalid flags", err)
	}
	o.logger.Debug("options resolved",
		zap.String("format", o.Format),
		zap.Uint64("seed", o.Seed),
		zap.Int("precision", o.Precision),
	)

	return nil
}

// formatter returns an OutputFormatter bound to cmd's stdout.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Precision: o.Precision, Writer: cmd.OutOrStdout()}
}

// fail logs err, emits it in structured formats and returns it unchanged
// for the exit code.
func (o *RootOptions) fail(cmd *cobra.Command, err error) error {
	o.Logger().Debug("command failed", zap.String("command", cmd.Name()), zap.Error(err))
	_ = o.formatter(cmd).Error(err)
	return err
}

// exactArgs is cobra.ExactArgs reporting ExitUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitUsage, "invalid arguments", err)
		}
		return nil
	}
}

// rangeArgs is cobra.RangeArgs reporting ExitUsage.
func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(lo, hi)(cmd, args); err != nil {
			return WrapExitError(ExitUsage, "invalid arguments", err)
		}
		return nil
	}
}
