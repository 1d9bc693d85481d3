package session

import "github.com/bft-labs/uireplay/pkg/timestamp"

// FrameEvents is one tick's batch of events, the atomic unit of capture and
// replay. Within a session, frames are ordered by non-decreasing Time.
type FrameEvents struct {
	Time   timestamp.Timestamp
	Events []Event
}

// Session is an ordered sequence of frames: growing while a recording is
// active, fixed while being replayed. A session is never both at once; the
// replay manager enforces that.
type Session struct {
	Frames []FrameEvents
}

// Append adds a frame to the end of the session.
func (s *Session) Append(f FrameEvents) {
	s.Frames = append(s.Frames, f)
}

// NumFrames returns the number of frames in the session.
func (s *Session) NumFrames() int {
	return len(s.Frames)
}

// NumEvents returns the total event count across all frames.
func (s *Session) NumEvents() int {
	var n int
	for _, f := range s.Frames {
		n += len(f.Events)
	}
	return n
}

// Empty reports whether the session has no frames.
func (s *Session) Empty() bool {
	return len(s.Frames) == 0
}

// Reset clears the session for reuse.
func (s *Session) Reset() {
	s.Frames = s.Frames[:0]
}
