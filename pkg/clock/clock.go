// Package clock abstracts the current time behind a small interface so that
// time-dependent logic can run against the real wall clock in production and
// a manually advanced clock in tests.
package clock

import (
	"sync"
	"time"

	"github.com/bft-labs/uireplay/pkg/timestamp"
)

// Clock provides the current time. Implementations must be safe to call
// from any goroutine and must not have side effects.
type Clock interface {
	Now() timestamp.Timestamp
}

// SystemClock reads the host's wall clock. Monotonicity is best effort (the
// system clock may jump), which is acceptable for labeling and file naming;
// do not use it for duration measurement across clock changes.
type SystemClock struct{}

// Now returns the current wall-clock time.
//
// time.Now is within the representable nanosecond range until the year 2262,
// so the range check cannot fail here.
func (SystemClock) Now() timestamp.Timestamp {
	ts, _ := timestamp.FromTime(time.Now())
	return ts
}

// ManualClock is a time source advanced explicitly by the caller. All
// holders of the same *ManualClock share one underlying cell: a write
// through any of them is observed by every later read, guarded by a single
// mutex. The zero of time is the Unix epoch.
type ManualClock struct {
	mu  sync.Mutex
	cur timestamp.Timestamp
}

// NewManual returns a manual clock set to the epoch.
func NewManual() *ManualClock {
	return &ManualClock{}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() timestamp.Timestamp {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

// AdvanceBy moves the clock forward by d. Panics if d is not positive;
// a manual clock only moves forward through AdvanceBy.
func (c *ManualClock) AdvanceBy(d timestamp.Delta) {
	if d <= 0 {
		panic("clock: AdvanceBy requires a positive delta")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(d)
}

// AdvanceTo sets the clock unconditionally. Time may move backward; this is
// permitted for tests.
func (c *ManualClock) AdvanceTo(t timestamp.Timestamp) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = t
}
