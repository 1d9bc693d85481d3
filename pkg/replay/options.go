package replay

import (
	"github.com/bft-labs/uireplay/pkg/log"
	"github.com/bft-labs/uireplay/pkg/session"
)

// Option configures optional behavior of a Manager.
type Option func(m *Manager, marshaler *session.Marshaler)

// WithLogger sets a logger for structured logging. If not provided, log
// output is discarded.
func WithLogger(logger log.Logger) Option {
	return func(m *Manager, _ *session.Marshaler) {
		m.log = logger
	}
}

// WithMarshaler sets the event marshaler used by the persistence codecs.
// Hosts whose toolkit events are adapted directly (rather than converted to
// the wire event set) supply their own marshaler here. The default is
// session.WireMarshaler.
func WithMarshaler(marshaler session.Marshaler) Option {
	return func(_ *Manager, dst *session.Marshaler) {
		*dst = marshaler
	}
}

// WithPointerMoveFactory sets the constructor for the synthetic
// pointer-move events the manager records: the anchor frame's move to the
// origin and the compensating move before each button event. Hosts using
// their own event type must produce it from the same type. The default
// builds session.PointerMoveEvent.
func WithPointerMoveFactory(fn func(session.Position) session.Event) Option {
	return func(m *Manager, _ *session.Marshaler) {
		m.newPointerMove = fn
	}
}
