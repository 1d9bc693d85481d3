package replay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bft-labs/uireplay/pkg/codec"
)

// Manager errors, checkable with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("replay: invalid configuration")

	// ErrRecordingActive is returned when a replay is requested while a
	// recording is in progress.
	ErrRecordingActive = errors.New("replay: recording in progress")

	// ErrReplayActive is returned when a replay is requested while one is
	// already running.
	ErrReplayActive = errors.New("replay: replay already running")
)

// Config holds the recording settings for a Manager.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// Dir is the directory recordings are written to and discovered in.
	Dir string

	// FilePrefix distinguishes recording files from unrelated files.
	FilePrefix string

	// Format selects the wire format for new recordings.
	Format codec.Format

	// Postprocess applies the merge pass when a recording stops,
	// collapsing same-category frames to reduce file size.
	Postprocess bool

	// SimplifyPointerMoves records only the first pointer move of a
	// contiguous run instead of every sample.
	SimplifyPointerMoves bool
}

// DefaultConfig returns the recording defaults: binary format in the
// working directory, with postprocessing and pointer simplification on.
func DefaultConfig() Config {
	return Config{
		Dir:                  ".",
		FilePrefix:           codec.DefaultPrefix,
		Format:               codec.FormatBinary,
		Postprocess:          true,
		SimplifyPointerMoves: true,
	}
}

// SetDefaults fills empty fields with their default values.
func (c *Config) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.FilePrefix == "" {
		c.FilePrefix = codec.DefaultPrefix
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.FilePrefix, `/\`) {
		return fmt.Errorf("%w: file prefix %q contains a path separator", ErrInvalidConfig, c.FilePrefix)
	}
	if c.Format != codec.FormatBinary && c.Format != codec.FormatJSON {
		return fmt.Errorf("%w: unknown format %d", ErrInvalidConfig, c.Format)
	}
	return nil
}
