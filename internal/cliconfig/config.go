// Package cliconfig holds CLI configuration for the uireplay tool, merged
// from a TOML file, UIREPLAY_* environment variables, and flags, in that
// order of increasing precedence.
package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/uireplay/pkg/codec"
)

// Config holds CLI configuration for uireplay.
type Config struct {
	// Dir is the recordings directory.
	Dir string

	// Prefix is the recording file name prefix.
	Prefix string

	// Format names the recording wire format ("binary" or "json").
	Format string

	// Postprocess applies the merge pass when converting or compacting.
	Postprocess bool

	// Simplify enables pointer-move simplification.
	Simplify bool

	// Debug enables debug-level logging.
	Debug bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Dir:         ".",
		Prefix:      codec.DefaultPrefix,
		Format:      "binary",
		Postprocess: true,
		Simplify:    true,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("dir is required")
	}
	if _, err := codec.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// ParsedFormat returns the configured format. Call Validate first.
func (c *Config) ParsedFormat() codec.Format {
	f, _ := codec.ParseFormat(c.Format)
	return f
}

// Logger returns the console logger for the CLI, honoring the debug flag.
func Logger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// configSetter applies configuration values while respecting flag
// precedence: a value is skipped when its flag was set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value if present and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses and sets a bool if the string is non-empty and
// the flag not changed. Unparseable values are ignored.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	if b, err := strconv.ParseBool(value); err == nil {
		*dst = b
	}
}
