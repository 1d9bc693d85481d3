package session

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ToggleKey is the designated key that starts and stops recording in the
// wire event set.
const ToggleKey = "F1"

// The wire event set. It is the persisted form of a session and the
// synthetic enumeration the core is tested against. Hosts with richer
// toolkit events convert to and from these at the boundary, or supply their
// own Marshaler.

// KeyEvent is a key press or release.
type KeyEvent struct {
	Key     string `json:"key"`
	Pressed bool   `json:"pressed"`
}

func (k KeyEvent) IsToggleKey() bool  { return k.Key == ToggleKey }
func (k KeyEvent) IsKeyPressed() bool { return k.Pressed }
func (k KeyEvent) IsPointerMove() bool { return false }
func (k KeyEvent) ButtonPosition() (Position, bool) { return Position{}, false }

// PointerMoveEvent is semantic pointer motion to an absolute position.
type PointerMoveEvent struct {
	Pos Position `json:"pos"`
}

func (p PointerMoveEvent) IsToggleKey() bool  { return false }
func (p PointerMoveEvent) IsKeyPressed() bool { return false }
func (p PointerMoveEvent) IsPointerMove() bool { return true }
func (p PointerMoveEvent) ButtonPosition() (Position, bool) { return Position{}, false }

// PointerButtonEvent is a pointer button press or release at a position.
type PointerButtonEvent struct {
	Pos     Position `json:"pos"`
	Button  int      `json:"button"`
	Pressed bool     `json:"pressed"`
}

func (b PointerButtonEvent) IsToggleKey() bool  { return false }
func (b PointerButtonEvent) IsKeyPressed() bool { return false }
func (b PointerButtonEvent) IsPointerMove() bool { return false }
func (b PointerButtonEvent) ButtonPosition() (Position, bool) { return b.Pos, true }

// RawMoveEvent is a coarse toolkit-level motion notification. It is dropped
// by the recorder and exists so hosts and tests can exercise that path.
type RawMoveEvent struct {
	Delta Position `json:"delta"`
}

func (r RawMoveEvent) IsToggleKey() bool  { return false }
func (r RawMoveEvent) IsKeyPressed() bool { return false }
func (r RawMoveEvent) IsPointerMove() bool { return false }
func (r RawMoveEvent) ButtonPosition() (Position, bool) { return Position{}, false }
func (r RawMoveEvent) IsRawMotion() bool  { return true }

// ErrUnknownEvent is returned when an event cannot be put on or taken off
// the wire.
var ErrUnknownEvent = errors.New("session: unknown event type")

// Marshaler converts events to and from their wire payloads. The codecs
// treat payloads as opaque bytes; hosts with their own event types plug in
// their own Marshaler.
type Marshaler interface {
	Marshal(Event) ([]byte, error)
	Unmarshal([]byte) (Event, error)
}

// Wire payload type tags.
const (
	wireKey           = "key"
	wirePointerMove   = "pointer_move"
	wirePointerButton = "pointer_button"
	wireRawMove       = "raw_move"
)

// envelope is the tagged JSON form of one wire event.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// WireMarshaler implements Marshaler for the wire event set using a
// type-tagged JSON envelope.
type WireMarshaler struct{}

// Marshal encodes a wire event. Events outside the wire set are rejected
// with ErrUnknownEvent.
func (WireMarshaler) Marshal(e Event) ([]byte, error) {
	var tag string
	switch e.(type) {
	case KeyEvent:
		tag = wireKey
	case PointerMoveEvent:
		tag = wirePointerMove
	case PointerButtonEvent:
		tag = wirePointerButton
	case RawMoveEvent:
		tag = wireRawMove
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownEvent, e)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Type: tag, Data: data})
}

// Unmarshal decodes a wire event payload.
func (WireMarshaler) Unmarshal(payload []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, err
	}
	switch env.Type {
	case wireKey:
		var e KeyEvent
		if err := json.Unmarshal(env.Data, &e); err != nil {
			return nil, err
		}
		return e, nil
	case wirePointerMove:
		var e PointerMoveEvent
		if err := json.Unmarshal(env.Data, &e); err != nil {
			return nil, err
		}
		return e, nil
	case wirePointerButton:
		var e PointerButtonEvent
		if err := json.Unmarshal(env.Data, &e); err != nil {
			return nil, err
		}
		return e, nil
	case wireRawMove:
		var e RawMoveEvent
		if err := json.Unmarshal(env.Data, &e); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, env.Type)
	}
}
