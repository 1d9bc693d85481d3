// Package uireplay records and replays deterministic UI input sessions.
//
// Example usage:
//
//	cfg := uireplay.DefaultConfig()
//	cfg.Dir = "/path/to/recordings"
//	mgr, err := uireplay.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mgr.OpenWindow()
//	// each frame:
//	events, err = mgr.InterceptInput(now, events)
package uireplay

import (
	"github.com/bft-labs/uireplay/pkg/replay"
	"github.com/bft-labs/uireplay/pkg/session"
	"github.com/bft-labs/uireplay/pkg/timestamp"
)

// Config holds the recording and replay configuration.
// Use DefaultConfig() for sensible defaults.
type Config = replay.Config

// Manager intercepts a host application's per-frame input, recording it
// while a session is active and substituting it during replay.
type Manager = replay.Manager

// Option customizes a Manager at construction time.
type Option = replay.Option

// Event is the host-toolkit input event as seen by the recorder.
type Event = session.Event

// FrameEvents is one frame's worth of events with its capture timestamp.
type FrameEvents = session.FrameEvents

// Timestamp is a nanosecond instant since the Unix epoch.
type Timestamp = timestamp.Timestamp

// New constructs a Manager for the given configuration.
func New(cfg Config, opts ...Option) (*Manager, error) {
	return replay.New(cfg, opts...)
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return replay.DefaultConfig()
}

// WithLogger routes the Manager's diagnostics to the given logger.
var WithLogger = replay.WithLogger

// WithMarshaler replaces the event codec used for persistence.
var WithMarshaler = replay.WithMarshaler

// WithPointerMoveFactory replaces the constructor for synthetic pointer
// moves, letting hosts emit their own event types.
var WithPointerMoveFactory = replay.WithPointerMoveFactory
