package session

import (
	"errors"
	"testing"
)

func TestWireClassification(t *testing.T) {
	toggle := KeyEvent{Key: ToggleKey, Pressed: true}
	if !toggle.IsToggleKey() || !toggle.IsKeyPressed() {
		t.Fatal("toggle press misclassified")
	}
	release := KeyEvent{Key: ToggleKey, Pressed: false}
	if !release.IsToggleKey() || release.IsKeyPressed() {
		t.Fatal("toggle release misclassified")
	}
	if (KeyEvent{Key: "A", Pressed: true}).IsToggleKey() {
		t.Fatal("ordinary key classified as toggle")
	}

	move := PointerMoveEvent{Pos: Position{X: 1, Y: 2}}
	if !move.IsPointerMove() {
		t.Fatal("pointer move misclassified")
	}
	if IsRawMotion(move) {
		t.Fatal("pointer move classified as raw motion")
	}

	button := PointerButtonEvent{Pos: Position{X: 3, Y: 4}, Button: 1, Pressed: true}
	pos, ok := button.ButtonPosition()
	if !ok || pos != (Position{X: 3, Y: 4}) {
		t.Fatalf("ButtonPosition() = %v, %v", pos, ok)
	}
	if button.IsPointerMove() {
		t.Fatal("button classified as pointer move")
	}

	if !IsRawMotion(RawMoveEvent{Delta: Position{X: 1, Y: 0}}) {
		t.Fatal("raw move not classified as raw motion")
	}
}

func TestWireMarshalerRoundTrip(t *testing.T) {
	var m WireMarshaler
	events := []Event{
		KeyEvent{Key: "Enter", Pressed: true},
		PointerMoveEvent{Pos: Position{X: 1.5, Y: -2}},
		PointerButtonEvent{Pos: Position{X: 10, Y: 20}, Button: 2, Pressed: false},
		RawMoveEvent{Delta: Position{X: 0.25, Y: 0.5}},
	}
	for _, e := range events {
		payload, err := m.Marshal(e)
		if err != nil {
			t.Fatalf("marshal %T: %v", e, err)
		}
		back, err := m.Unmarshal(payload)
		if err != nil {
			t.Fatalf("unmarshal %T: %v", e, err)
		}
		if back != e {
			t.Fatalf("round trip %T: %+v -> %+v", e, e, back)
		}
	}
}

type unknownEvent struct{}

func (unknownEvent) IsToggleKey() bool  { return false }
func (unknownEvent) IsKeyPressed() bool { return false }
func (unknownEvent) IsPointerMove() bool { return false }
func (unknownEvent) ButtonPosition() (Position, bool) { return Position{}, false }

func TestWireMarshalerUnknown(t *testing.T) {
	var m WireMarshaler
	if _, err := m.Marshal(unknownEvent{}); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
	if _, err := m.Unmarshal([]byte(`{"type":"mystery","data":{}}`)); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
	if _, err := m.Unmarshal([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
