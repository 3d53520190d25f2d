package config

import (
	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/output"
	"github.com/arthur-debert/pathmaster/pkg/pathsd"
)

// Scan holds discovery settings
type Scan struct {
	// Root is the directory whose immediate subdirectories are scanned
	Root string `koanf:"root" toml:"root" yaml:"root"`
	// Pattern matches paths.d directory names and must declare the group "env"
	Pattern string `koanf:"pattern" toml:"pattern" yaml:"pattern"`
}

// Output holds emission settings
type Output struct {
	Format    string `koanf:"format" toml:"format" yaml:"format"`
	Separator string `koanf:"separator" toml:"separator" yaml:"separator"`
}

// Log holds logging settings
type Log struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity" yaml:"verbosity"`
}

// Config is the main configuration structure
type Config struct {
	Scan   Scan   `koanf:"scan" toml:"scan" yaml:"scan"`
	Output Output `koanf:"output" toml:"output" yaml:"output"`
	Log    Log    `koanf:"log" toml:"log" yaml:"log"`

	// Source is the user file that was loaded, empty when none
	Source string `koanf:"-" toml:"-" yaml:"-"`
}

// Default returns the built-in configuration without reading any user input
func Default() *Config {
	return &Config{
		Scan: Scan{
			Root:    pathsd.DefaultRoot,
			Pattern: pathsd.DefaultPattern,
		},
		Output: Output{
			Format:    output.FormatEnv.String(),
			Separator: pathsd.DefaultSeparator,
		},
	}
}

// Validate checks that the configuration can drive a scan
func (c *Config) Validate() error {
	if c.Scan.Root == "" {
		return errors.New(errors.ErrConfigValid, "scan.root must not be empty")
	}
	if _, err := pathsd.NewMatcher(c.Scan.Pattern); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "scan.pattern is invalid")
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "output.format is invalid")
	}
	if c.Output.Separator == "" {
		return errors.New(errors.ErrConfigValid, "output.separator must not be empty")
	}
	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}
	return nil
}
