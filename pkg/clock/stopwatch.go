package clock

import "github.com/bft-labs/uireplay/pkg/timestamp"

// Stopwatch measures elapsed time against a Clock. The start time is taken
// at construction.
type Stopwatch struct {
	clk   Clock
	start timestamp.Timestamp
}

// NewStopwatch returns a stopwatch started at clk's current time.
func NewStopwatch(clk Clock) *Stopwatch {
	return &Stopwatch{clk: clk, start: clk.Now()}
}

// Elapsed returns the time passed since the start (or last Reset).
func (s *Stopwatch) Elapsed() timestamp.Delta {
	return s.clk.Now().Sub(s.start)
}

// Reset restarts the measurement from the clock's current time.
func (s *Stopwatch) Reset() {
	s.start = s.clk.Now()
}
