// Package replay implements input event recording and replay for
// interactive applications.
//
// A Manager sits between the host's input source and its event processing:
// once per frame the host hands it the current time and the raw event
// batch. While recording, the manager classifies and buffers events; when
// recording stops, the buffered session is postprocessed and persisted.
// While replaying, the manager overwrites the live batch with previously
// recorded frames, reproducing the original event sequence exactly.
//
// Recording is toggled by the press edge of a designated toggle key found
// anywhere in a tick's batch. Replay takes absolute priority: while frames
// are being replayed, no recording transitions are evaluated and a toggle
// key inside the replayed stream is not reinterpreted.
package replay

import (
	"path/filepath"

	"github.com/bft-labs/uireplay/pkg/codec"
	"github.com/bft-labs/uireplay/pkg/log"
	"github.com/bft-labs/uireplay/pkg/session"
	"github.com/bft-labs/uireplay/pkg/timestamp"
)

// Manager is the record/replay state machine. It is driven by a single
// logical thread: one InterceptInput and one TickStatus call per host
// frame, strictly sequential.
type Manager struct {
	cfg            Config
	log            log.Logger
	store          *codec.Store
	newPointerMove func(session.Position) session.Event

	windowOpen bool
	recording  bool
	replaying  bool

	// buffer holds the session being recorded (growing) or replayed
	// (fixed). The recording/replaying flags are mutually exclusive, so it
	// is never both.
	buffer      session.Session
	replayIndex int

	replayFile   string
	lookupReplay bool
	loadErr      string

	// pointerMoving tracks whether the pointer is inside a contiguous run
	// of move events, for pointer-move simplification.
	pointerMoving bool
}

// New creates a Manager with the given configuration.
func New(cfg Config, opts ...Option) (*Manager, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		cfg: cfg,
		log: log.Noop{},
		newPointerMove: func(pos session.Position) session.Event {
			return session.PointerMoveEvent{Pos: pos}
		},
	}
	marshaler := session.Marshaler(session.WireMarshaler{})
	for _, opt := range opts {
		opt(m, &marshaler)
	}
	m.store = codec.NewStore(marshaler)
	return m, nil
}

// Recording reports whether a recording is in progress.
func (m *Manager) Recording() bool { return m.recording }

// Replaying reports whether a replay is in progress.
func (m *Manager) Replaying() bool { return m.replaying }

// WindowOpen reports whether the replay control surface is open.
func (m *Manager) WindowOpen() bool { return m.windowOpen }

// RecordedFrames returns the number of buffered frames.
func (m *Manager) RecordedFrames() int { return m.buffer.NumFrames() }

// RecordedEvents returns the total number of buffered events.
func (m *Manager) RecordedEvents() int { return m.buffer.NumEvents() }

// OpenWindow opens the replay control surface, cancelling any recording or
// replay in progress. The next TickStatus call discovers a default replay
// file.
func (m *Manager) OpenWindow() {
	m.windowOpen = true
	m.recording = false
	m.replaying = false
	m.buffer.Reset()
	m.replayIndex = 0
	m.lookupReplay = true
	m.loadErr = ""
}

// CloseWindow closes the control surface and discards buffered state.
func (m *Manager) CloseWindow() {
	m.windowOpen = false
	m.recording = false
	m.replaying = false
	m.buffer.Reset()
	m.replayIndex = 0
}

// InterceptInput is called once per host frame, before the host processes
// input. It returns the batch the host should process: the recorded frame's
// events while replaying, the live batch unchanged otherwise.
//
// A failure to persist a completed recording is returned to the caller; the
// recording is dropped either way, and the host decides whether that is
// fatal.
func (m *Manager) InterceptInput(now timestamp.Timestamp, events []session.Event) ([]session.Event, error) {
	if m.replaying && m.replayIndex < m.buffer.NumFrames() {
		frame := m.buffer.Frames[m.replayIndex]
		m.replayIndex++
		m.log.Debug("replaying frame",
			log.Int("frame", m.replayIndex),
			log.Int("total", m.buffer.NumFrames()),
			log.Int("events", len(frame.Events)))
		out := frame.Events
		if m.replayIndex >= m.buffer.NumFrames() {
			m.CloseWindow()
		}
		return out, nil
	}

	var saveErr error
	var recorded []session.Event
	for _, e := range events {
		if e.IsToggleKey() && e.IsKeyPressed() {
			if err := m.toggleRecording(now); err != nil {
				saveErr = err
			}
		}

		if !m.recording {
			continue
		}

		// Simplification can suppress the move that put the pointer at the
		// button position, so button events get a compensating synthetic
		// move recorded just before them.
		if pos, ok := e.ButtonPosition(); ok && m.cfg.SimplifyPointerMoves {
			recorded = append(recorded, m.newPointerMove(pos))
		}
		if m.shouldRecord(e) {
			recorded = append(recorded, e)
		}
	}

	if len(recorded) > 0 {
		m.buffer.Append(session.FrameEvents{Time: now, Events: recorded})
	}
	return events, saveErr
}

// toggleRecording flips the recording state on the toggle key's press edge.
func (m *Manager) toggleRecording(now timestamp.Timestamp) error {
	if m.recording {
		m.recording = false
		return m.finishRecording(now)
	}

	m.log.Info("starting input recording")
	m.recording = true
	m.pointerMoving = false
	m.buffer.Reset()
	// The anchor frame establishes the pointer origin so the first real
	// pointer delta is well-defined on replay.
	m.buffer.Append(session.FrameEvents{
		Time:   now,
		Events: []session.Event{m.newPointerMove(session.Origin)},
	})
	return nil
}

// finishRecording postprocesses and persists the buffered session, then
// clears it.
func (m *Manager) finishRecording(now timestamp.Timestamp) error {
	m.log.Info("stopping input recording")

	frames := m.buffer.Frames
	if m.cfg.Postprocess {
		frames = session.Compact(frames)
	}
	saved := session.Session{Frames: frames}
	numFrames, numEvents := saved.NumFrames(), saved.NumEvents()
	m.buffer.Reset()

	path := filepath.Join(m.cfg.Dir, codec.FileName(m.cfg.FilePrefix, now, m.cfg.Format))
	if err := m.store.Save(path, frames); err != nil {
		m.log.Error("failed to save recording",
			log.String("path", path),
			log.Int("frames", numFrames),
			log.Int("events", numEvents),
			log.Err(err))
		return err
	}

	m.log.Info("saved recording",
		log.String("path", path),
		log.Int("frames", numFrames),
		log.Int("events", numEvents))
	return nil
}

// shouldRecord is the per-event recording predicate. It also advances the
// pointer-motion run state, so call it exactly once per candidate event.
func (m *Manager) shouldRecord(e session.Event) bool {
	if session.IsRawMotion(e) {
		return false
	}
	if e.IsToggleKey() {
		return false
	}
	if m.cfg.SimplifyPointerMoves {
		if e.IsPointerMove() {
			// Keep only the first move of a contiguous run; replay needs
			// to know motion started, not every sample.
			if m.pointerMoving {
				return false
			}
			m.pointerMoving = true
			return true
		}
		m.pointerMoving = false
	}
	return true
}

// StartReplay loads a recorded session and begins replaying it on the next
// InterceptInput call. On failure the manager stays out of replay mode and
// the error is both returned and kept for the status surface.
func (m *Manager) StartReplay(path string) error {
	if m.recording {
		return ErrRecordingActive
	}
	if m.replaying {
		return ErrReplayActive
	}

	frames, err := m.store.Load(path)
	if err != nil {
		m.loadErr = err.Error()
		m.log.Error("failed to load recording", log.String("path", path), log.Err(err))
		return err
	}

	loaded := session.Session{Frames: frames}
	m.log.Info("loaded recording",
		log.String("path", path),
		log.Int("frames", loaded.NumFrames()),
		log.Int("events", loaded.NumEvents()))

	m.replaying = true
	m.replayFile = path
	m.buffer = loaded
	m.replayIndex = 0
	m.loadErr = ""
	return nil
}
