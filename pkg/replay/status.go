package replay

import "github.com/bft-labs/uireplay/pkg/codec"

// Action is what the user did on the status surface this frame.
type Action int

const (
	// ActionNone leaves the manager's state alone.
	ActionNone Action = iota
	// ActionStartReplay loads the selected file and starts replaying it.
	ActionStartReplay
	// ActionClose closes the control surface.
	ActionClose
)

// StatusView is a snapshot of the manager's state for the host to render.
// Rendering itself is delegated entirely to the host: the manager only
// describes what to show and applies the returned action.
type StatusView struct {
	// Recording indicator with buffered counts.
	Recording      bool
	RecordedFrames int
	RecordedEvents int

	// Replay progress. ReplayIndex counts delivered frames.
	Replaying   bool
	ReplayIndex int
	ReplayTotal int

	// ReplayFile is the selected input file. The host may edit it in
	// place; the manager copies the value back unless a replay is running.
	ReplayFile string

	// LoadError is the last replay load failure, empty when none.
	LoadError string
}

// TickStatus is called once per host frame to offer the control surface a
// chance to draw. It does nothing while the window is closed. On the first
// call after OpenWindow, the lexicographically first recording in the
// configured directory is pre-filled as the replay file.
func (m *Manager) TickStatus(render func(*StatusView) Action) {
	if !m.windowOpen || render == nil {
		return
	}

	if m.lookupReplay {
		if path, ok := m.DiscoverRecording(); ok {
			m.replayFile = path
		}
		m.lookupReplay = false
	}

	view := &StatusView{
		Recording:      m.recording,
		RecordedFrames: m.buffer.NumFrames(),
		RecordedEvents: m.buffer.NumEvents(),
		Replaying:      m.replaying,
		ReplayIndex:    m.replayIndex,
		ReplayTotal:    m.buffer.NumFrames(),
		ReplayFile:     m.replayFile,
		LoadError:      m.loadErr,
	}
	action := render(view)

	if !m.replaying {
		m.replayFile = view.ReplayFile
	}

	switch action {
	case ActionStartReplay:
		// Load failures keep the window open in its selection state; the
		// error is already captured on the view for the next frame.
		if !m.replaying {
			_ = m.StartReplay(m.replayFile)
		}
	case ActionClose:
		if !m.replaying {
			m.CloseWindow()
		}
	}
}

// DiscoverRecording returns the default replay file for the configured
// directory and prefix: the lexicographically smallest match.
func (m *Manager) DiscoverRecording() (string, bool) {
	return codec.Discover(m.cfg.Dir, m.cfg.FilePrefix)
}
