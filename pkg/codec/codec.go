// Package codec persists recorded sessions to disk and loads them back, in
// one of two interchangeable formats: a compact binary container or a
// human-readable JSON one. The format is chosen by file extension, at save
// time and at load time.
package codec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bft-labs/uireplay/pkg/session"
	"github.com/bft-labs/uireplay/pkg/timestamp"
)

// DefaultPrefix distinguishes recording files from unrelated files in the
// working directory.
const DefaultPrefix = "uireplay"

// Codec errors.
var (
	// ErrUnknownFormat is returned for a file extension no codec handles.
	ErrUnknownFormat = errors.New("codec: unknown file extension")

	// ErrCorrupt is returned when a recording fails structural validation
	// while decoding.
	ErrCorrupt = errors.New("codec: corrupt recording")
)

// Format identifies a session wire format.
type Format int

const (
	// FormatBinary is the compact binary container (".bin").
	FormatBinary Format = iota
	// FormatJSON is the human-readable container (".json").
	FormatJSON
)

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatJSON {
		return "json"
	}
	return "bin"
}

// String returns the format name.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "binary"
}

// ParseFormat converts a format name ("binary", "bin", "json") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "binary", "bin":
		return FormatBinary, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatForPath infers the format from a file path's extension.
func FormatForPath(path string) (Format, error) {
	switch filepath.Ext(path) {
	case ".bin":
		return FormatBinary, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// FileName builds a recording file name: the prefix, the capture start time
// in RFC 3339, and the format's extension.
func FileName(prefix string, now timestamp.Timestamp, f Format) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.RFC3339(), f.Ext())
}

// Discover returns the lexicographically smallest regular file in dir whose
// name starts with prefix. The pick is stable and deterministic among
// same-prefix files. The second return is false when nothing matches.
func Discover(dir, prefix string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasPrefix(e.Name(), prefix) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0]), true
}

// Store reads and writes sessions. Event payloads pass through the bound
// session.Marshaler; the store itself only frames them.
type Store struct {
	marshaler session.Marshaler
}

// NewStore returns a store using the given event marshaler.
func NewStore(m session.Marshaler) *Store {
	return &Store{marshaler: m}
}

// Save writes frames to path in the format implied by its extension. The
// write goes to a temporary file first and is renamed into place, so a
// failed write never leaves a partial recording behind.
func (s *Store) Save(path string, frames []session.FrameEvents) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatJSON:
		data, err = s.encodeJSON(frames)
	default:
		data, err = s.encodeBinary(frames)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads a session from path, dispatching the decoder by extension.
func (s *Store) Load(path string) ([]session.FrameEvents, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON:
		return s.decodeJSON(data)
	default:
		return s.decodeBinary(data)
	}
}
