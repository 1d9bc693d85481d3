package codec

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/uireplay/pkg/session"
	"github.com/bft-labs/uireplay/pkg/timestamp"
)

func sampleFrames() []session.FrameEvents {
	return []session.FrameEvents{
		{
			Time:   timestamp.FromNanos(0),
			Events: []session.Event{session.PointerMoveEvent{Pos: session.Origin}},
		},
		{
			Time: timestamp.FromNanos(1_000_000),
			Events: []session.Event{
				session.PointerMoveEvent{Pos: session.Position{X: 5, Y: 5}},
				session.PointerButtonEvent{Pos: session.Position{X: 5, Y: 5}, Button: 0, Pressed: true},
			},
		},
		{
			Time:   timestamp.FromNanos(2_000_000),
			Events: []session.Event{session.KeyEvent{Key: "Enter", Pressed: true}},
		},
	}
}

func assertFramesEqual(t *testing.T, want, got []session.FrameEvents) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("frame count %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Time != want[i].Time {
			t.Fatalf("frame %d time %v, want %v", i, got[i].Time, want[i].Time)
		}
		if len(got[i].Events) != len(want[i].Events) {
			t.Fatalf("frame %d has %d events, want %d", i, len(got[i].Events), len(want[i].Events))
		}
		for j := range want[i].Events {
			if got[i].Events[j] != want[i].Events[j] {
				t.Fatalf("frame %d event %d = %+v, want %+v", i, j, got[i].Events[j], want[i].Events[j])
			}
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(session.WireMarshaler{})
	frames := sampleFrames()

	for _, format := range []Format{FormatBinary, FormatJSON} {
		path := filepath.Join(t.TempDir(), "rec."+format.Ext())
		if err := store.Save(path, frames); err != nil {
			t.Fatalf("%v save: %v", format, err)
		}
		got, err := store.Load(path)
		if err != nil {
			t.Fatalf("%v load: %v", format, err)
		}
		assertFramesEqual(t, frames, got)
	}
}

func TestSaveLeavesNoPartialFile(t *testing.T) {
	store := NewStore(session.WireMarshaler{})
	dir := t.TempDir()
	path := filepath.Join(dir, "rec.bin")

	// An event outside the wire set fails encoding before anything is
	// renamed into place.
	bad := []session.FrameEvents{{Events: []session.Event{badEvent{}}}}
	if err := store.Save(path, bad); err == nil {
		t.Fatal("expected encode error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("partial file left behind: %v", err)
	}
}

type badEvent struct{}

func (badEvent) IsToggleKey() bool  { return false }
func (badEvent) IsKeyPressed() bool { return false }
func (badEvent) IsPointerMove() bool { return false }
func (badEvent) ButtonPosition() (session.Position, bool) { return session.Position{}, false }

func TestUnknownExtension(t *testing.T) {
	store := NewStore(session.WireMarshaler{})
	path := filepath.Join(t.TempDir(), "rec.txt")
	if err := os.WriteFile(path, []byte("whatever"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load(path); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("load: expected ErrUnknownFormat, got %v", err)
	}
	if err := store.Save(path, nil); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("save: expected ErrUnknownFormat, got %v", err)
	}
}

func TestBinaryRejectsGarbage(t *testing.T) {
	store := NewStore(session.WireMarshaler{})
	dir := t.TempDir()

	cases := map[string][]byte{
		"empty":       {},
		"bad magic":   []byte("NOPE\x01\x00\x00\x00\x00"),
		"bad version": {'U', 'R', 'P', 'L', 99, 0, 0, 0, 0},
		"truncated":   {'U', 'R', 'P', 'L', 1, 5, 0, 0, 0},
	}
	for name, data := range cases {
		path := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".bin")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := store.Load(path); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("%s: expected ErrCorrupt, got %v", name, err)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	if f, err := FormatForPath("a/b/rec.bin"); err != nil || f != FormatBinary {
		t.Fatalf("bin: %v, %v", f, err)
	}
	if f, err := FormatForPath("rec.json"); err != nil || f != FormatJSON {
		t.Fatalf("json: %v, %v", f, err)
	}
	if _, err := FormatForPath("rec.txt"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("txt: %v", err)
	}
	if _, err := FormatForPath("rec"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("no ext: %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"binary", "bin", "BIN"} {
		if f, err := ParseFormat(s); err != nil || f != FormatBinary {
			t.Fatalf("ParseFormat(%q) = %v, %v", s, f, err)
		}
	}
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Fatalf("ParseFormat(json) = %v, %v", f, err)
	}
	if _, err := ParseFormat("yaml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("ParseFormat(yaml) = %v", err)
	}
}

func TestFileName(t *testing.T) {
	now := timestamp.FromNanos(1_123_456_789_000_000)
	got := FileName(DefaultPrefix, now, FormatBinary)
	want := "uireplay_1970-01-14T00:04:16.789Z.bin"
	if got != want {
		t.Fatalf("FileName = %q, want %q", got, want)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"uireplay_b.json",
		"uireplay_a.bin",
		"unrelated.bin",
		"uireplay_c.bin",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	path, ok := Discover(dir, DefaultPrefix)
	if !ok {
		t.Fatal("Discover found nothing")
	}
	if filepath.Base(path) != "uireplay_a.bin" {
		t.Fatalf("Discover = %q", path)
	}

	if _, ok := Discover(dir, "nomatch"); ok {
		t.Fatal("Discover matched an absent prefix")
	}
	if _, ok := Discover(filepath.Join(dir, "missing"), DefaultPrefix); ok {
		t.Fatal("Discover matched in a missing directory")
	}
}
