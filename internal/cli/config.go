// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// Config is the optional TOML file passed with --config. Flags given on the
// command line override it.
type Config struct {
	// Format is the output format: text, json or yaml.
	Format string `toml:"format"`

	// Seed initializes the generator used by `vecalg random`.
	Seed uint64 `toml:"seed"`

	// Precision is the number of significant digits for float output in
	// text mode; -1 selects the shortest exact representation.
	Precision int `toml:"precision"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{Format: FormatText, Seed: 1, Precision: -1}
}

// LoadConfig reads path on top of DefaultConfig. Unknown keys are rejected so
// typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("read config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if !isValidFormat(c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	if c.Precision < -1 || c.Precision > 17 {
		return fmt.Errorf("invalid precision %d: must be in [-1, 17]", c.Precision)
	}

	return nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
