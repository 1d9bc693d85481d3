package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/uireplay/pkg/codec"
	"github.com/bft-labs/uireplay/pkg/session"
	"github.com/bft-labs/uireplay/pkg/timestamp"
)

func writeRecording(t *testing.T, dir, name string, frames []session.FrameEvents) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := codec.NewStore(session.WireMarshaler{}).Save(path, frames); err != nil {
		t.Fatalf("save %s: %v", name, err)
	}
	return path
}

func TestTickStatusClosedWindowIsNoop(t *testing.T) {
	m := newManager(t, nil)
	called := false
	m.TickStatus(func(*StatusView) Action {
		called = true
		return ActionNone
	})
	if called {
		t.Fatal("render called with the window closed")
	}
}

func TestTickStatusDiscoversDefaultFile(t *testing.T) {
	m := newManager(t, nil)
	frames := []session.FrameEvents{{Time: timestamp.FromNanos(0), Events: []session.Event{origin}}}
	want := writeRecording(t, m.cfg.Dir, "uireplay_a.bin", frames)
	writeRecording(t, m.cfg.Dir, "uireplay_b.bin", frames)

	m.OpenWindow()
	var got string
	m.TickStatus(func(v *StatusView) Action {
		got = v.ReplayFile
		return ActionNone
	})
	if got != want {
		t.Fatalf("pre-filled file %q, want %q", got, want)
	}

	// Discovery runs once per window open; a host edit sticks afterwards.
	m.TickStatus(func(v *StatusView) Action {
		v.ReplayFile = "edited.bin"
		return ActionNone
	})
	m.TickStatus(func(v *StatusView) Action {
		got = v.ReplayFile
		return ActionNone
	})
	if got != "edited.bin" {
		t.Fatalf("edited file %q, want %q", got, "edited.bin")
	}
}

func TestTickStatusStartReplayAndProgress(t *testing.T) {
	m := newManager(t, nil)
	frames := []session.FrameEvents{
		{Time: timestamp.FromNanos(0), Events: []session.Event{origin}},
		{Time: timestamp.FromNanos(1), Events: []session.Event{origin}},
	}
	writeRecording(t, m.cfg.Dir, "uireplay_a.bin", frames)

	m.OpenWindow()
	m.TickStatus(func(*StatusView) Action { return ActionStartReplay })
	if !m.Replaying() {
		t.Fatal("replay did not start")
	}

	tick(t, m, 100)
	var view StatusView
	m.TickStatus(func(v *StatusView) Action {
		view = *v
		return ActionClose // ignored while replaying
	})
	if !view.Replaying || view.ReplayIndex != 1 || view.ReplayTotal != 2 {
		t.Fatalf("progress view = %+v", view)
	}
	if !m.WindowOpen() {
		t.Fatal("close acted on a running replay")
	}

	// Delivering the last frame closes the window automatically.
	tick(t, m, 101)
	if m.WindowOpen() || m.Replaying() {
		t.Fatal("window still open after the last frame")
	}
}

func TestTickStatusLoadFailureKeepsSelectionState(t *testing.T) {
	m := newManager(t, nil)
	bad := filepath.Join(m.cfg.Dir, "uireplay_bad.txt")
	if err := os.WriteFile(bad, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	m.OpenWindow()
	m.TickStatus(func(v *StatusView) Action { return ActionStartReplay })

	if m.Replaying() {
		t.Fatal("replay started from an unloadable file")
	}
	if !m.WindowOpen() {
		t.Fatal("window closed on load failure")
	}
	var view StatusView
	m.TickStatus(func(v *StatusView) Action {
		view = *v
		return ActionNone
	})
	if view.LoadError == "" {
		t.Fatal("load error not surfaced")
	}
}

func TestTickStatusClose(t *testing.T) {
	m := newManager(t, nil)
	m.OpenWindow()
	m.TickStatus(func(*StatusView) Action { return ActionClose })
	if m.WindowOpen() {
		t.Fatal("window still open after close action")
	}
}

func TestTickStatusRecordingIndicator(t *testing.T) {
	m := newManager(t, nil)
	tick(t, m, 0, togglePress)
	tick(t, m, 1, session.KeyEvent{Key: "A", Pressed: true})

	m.windowOpen = true // indicator only renders with the surface open
	m.lookupReplay = false
	var view StatusView
	m.TickStatus(func(v *StatusView) Action {
		view = *v
		return ActionNone
	})
	if !view.Recording || view.RecordedFrames != 2 || view.RecordedEvents != 2 {
		t.Fatalf("recording view = %+v", view)
	}
}
