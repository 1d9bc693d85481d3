package clock

import "github.com/bft-labs/uireplay/pkg/timestamp"

// Timer detects when a fixed duration has elapsed. It is a polling
// primitive: callers ask TimedOut, nothing fires asynchronously.
type Timer struct {
	sw       *Stopwatch
	duration timestamp.Delta
}

// NewTimer returns a timer counting from clk's current time.
func NewTimer(clk Clock, duration timestamp.Delta) *Timer {
	return &Timer{sw: NewStopwatch(clk), duration: duration}
}

// TimedOut reports whether the duration has elapsed. The boundary is
// inclusive: elapsed exactly equal to the duration counts as timed out.
func (t *Timer) TimedOut() bool {
	return t.sw.Elapsed() >= t.duration
}

// Elapsed returns the time passed since the start (or last Reset).
func (t *Timer) Elapsed() timestamp.Delta {
	return t.sw.Elapsed()
}

// Reset restarts the timer from the clock's current time.
func (t *Timer) Reset() {
	t.sw.Reset()
}
