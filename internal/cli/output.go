// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess = 0 // successful execution
	ExitFailure = 1 // the operation itself failed (division by zero, overflow, ...)
	ExitUsage   = 2 // bad arguments, flags, input text or config
)

// ExitError carries an exit code alongside the error.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError creates an ExitError without an underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches code and message to err.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err. Errors that are not
// ExitErrors come from cobra's own argument and flag parsing, so they map to
// ExitUsage.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// Result is the payload every command emits.
type Result struct {
	Command string   `json:"command" yaml:"command"`
	Op      string   `json:"op,omitempty" yaml:"op,omitempty"`
	Inputs  []string `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Value   any      `json:"value" yaml:"value"`
}

// Response wraps a Result or an error for json/yaml output.
type Response struct {
	Status string  `json:"status" yaml:"status"`
	Data   *Result `json:"data,omitempty" yaml:"data,omitempty"`
	Error  string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// OutputFormatter renders results as text, json or yaml.
type OutputFormatter struct {
	Format    string
	Precision int
	Writer    io.Writer
}

// Success writes r in the configured format.
func (f *OutputFormatter) Success(r Result) error {
	switch f.Format {
	case FormatJSON:
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: &r})
	case FormatYAML:
		return f.encodeYAML(Response{Status: "ok", Data: &r})
	}
	_, err := fmt.Fprintln(f.Writer, f.text(r.Value))
	return err
}

// Error writes err in the configured format; text mode writes nothing since
// the caller reports errors on stderr.
func (f *OutputFormatter) Error(err error) error {
	switch f.Format {
	case FormatJSON:
		return json.NewEncoder(f.Writer).Encode(Response{Status: "error", Error: err.Error()})
	case FormatYAML:
		return f.encodeYAML(Response{Status: "error", Error: err.Error()})
	}
	return nil
}

func (f *OutputFormatter) encodeYAML(v any) error {
	enc := yaml.NewEncoder(f.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (f *OutputFormatter) text(v any) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', f.Precision, 64)
	case []string:
		return strings.Join(v, "\n")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// number keeps non-finite floats encodable: JSON has no NaN or Inf.
func number(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}
