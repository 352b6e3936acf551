// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the command logger on w: a human-readable debug logger
// when verbose, a JSON logger at warn level otherwise, so normal runs keep
// stderr quiet apart from failures.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	var (
		enc   zapcore.Encoder
		level zapcore.Level
	)
	if verbose {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.WarnLevel
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}
