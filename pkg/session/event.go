// Package session defines the capture model for input record/replay: the
// event capability interface the core classifies against, the frame and
// session aggregates, and the postprocessing merge that compacts a recorded
// session.
//
// Events are opaque to the core. Everything it needs to know about one is
// exposed through [Event]; hosts adapt their toolkit's input type to that
// interface at the integration boundary. The package also ships a minimal
// wire event set (see wire.go) used for persistence and tests.
package session

// Position is a pointer coordinate in the host's screen space.
type Position struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Origin is the pointer position the anchor frame establishes at the start
// of a recording.
var Origin = Position{X: 0, Y: 0}

// Event is a single host input event. The core classifies events only
// through these methods; payloads stay opaque.
type Event interface {
	// IsToggleKey reports whether the event is a press or release of the
	// designated record toggle key.
	IsToggleKey() bool

	// IsKeyPressed reports whether the event is the press edge of a key.
	IsKeyPressed() bool

	// IsPointerMove reports whether the event is semantic pointer motion
	// carrying a position.
	IsPointerMove() bool

	// ButtonPosition returns the pointer position of a button event, and
	// whether the event is one.
	ButtonPosition() (Position, bool)
}

// RawMotion marks coarse toolkit-level motion notifications that carry no
// usable position. Such events are never recorded. Hosts whose toolkits
// emit them implement this on the adapted event type.
type RawMotion interface {
	IsRawMotion() bool
}

// IsRawMotion reports whether e is a coarse motion notification.
func IsRawMotion(e Event) bool {
	r, ok := e.(RawMotion)
	return ok && r.IsRawMotion()
}
