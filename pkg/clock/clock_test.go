package clock

import (
	"sync"
	"testing"

	"github.com/bft-labs/uireplay/pkg/timestamp"
)

func TestManualClockSharedHolders(t *testing.T) {
	clk := NewManual()

	// Two components holding the same clock observe the same cell.
	var aTimes, bTimes []int64
	a := func() { aTimes = append(aTimes, clk.Now().Nanos()) }
	b := func() { bTimes = append(bTimes, clk.Now().Nanos()) }

	a() // t=0
	clk.AdvanceBy(timestamp.DeltaNanos(1))
	a() // t=1
	b() // t=1
	clk.AdvanceBy(timestamp.DeltaNanos(2))
	a() // t=3
	clk.AdvanceBy(timestamp.DeltaNanos(1))
	a() // t=4
	b() // t=4

	wantA := []int64{0, 1, 3, 4}
	wantB := []int64{1, 4}
	for i, v := range wantA {
		if aTimes[i] != v {
			t.Fatalf("a times = %v, want %v", aTimes, wantA)
		}
	}
	for i, v := range wantB {
		if bTimes[i] != v {
			t.Fatalf("b times = %v, want %v", bTimes, wantB)
		}
	}
}

func TestManualClockAcrossGoroutines(t *testing.T) {
	const workers = 4
	const steps = 4

	clk := NewManual()

	// Two-phase barrier: the controller advances the clock, releases the
	// readers for the step, then waits for all of them before the next step.
	release := make([]chan struct{}, steps)
	arrive := make([]sync.WaitGroup, steps)
	for i := range release {
		release[i] = make(chan struct{})
		arrive[i].Add(workers)
	}

	results := make(chan []int64, workers)
	for w := 0; w < workers; w++ {
		go func() {
			times := make([]int64, 0, steps)
			for s := 0; s < steps; s++ {
				<-release[s]
				times = append(times, clk.Now().Nanos())
				arrive[s].Done()
			}
			results <- times
		}()
	}

	for s := 0; s < steps; s++ {
		clk.AdvanceBy(timestamp.DeltaNanos(1))
		close(release[s])
		arrive[s].Wait()
	}

	for w := 0; w < workers; w++ {
		times := <-results
		for s := 0; s < steps; s++ {
			if times[s] != int64(s+1) {
				t.Fatalf("worker observed %v, want [1 2 3 4]", times)
			}
		}
	}
}

func TestManualClockAdvanceByRejectsNonPositive(t *testing.T) {
	clk := NewManual()
	for _, d := range []timestamp.Delta{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("AdvanceBy(%d) did not panic", d)
				}
			}()
			clk.AdvanceBy(d)
		}()
	}
}

func TestManualClockAdvanceTo(t *testing.T) {
	clk := NewManual()
	clk.AdvanceTo(timestamp.FromNanos(100))
	if got := clk.Now(); got.Nanos() != 100 {
		t.Fatalf("Now() = %d", got.Nanos())
	}

	// AdvanceTo may move time backward.
	clk.AdvanceTo(timestamp.FromNanos(10))
	if got := clk.Now(); got.Nanos() != 10 {
		t.Fatalf("Now() after backward jump = %d", got.Nanos())
	}
}

func TestStopwatch(t *testing.T) {
	clk := NewManual()
	sw := NewStopwatch(clk)

	if got := sw.Elapsed(); got != 0 {
		t.Fatalf("initial Elapsed() = %v", got)
	}

	clk.AdvanceBy(timestamp.DeltaNanos(5))
	if got := sw.Elapsed(); got != timestamp.DeltaNanos(5) {
		t.Fatalf("Elapsed() = %v", got)
	}

	sw.Reset()
	if got := sw.Elapsed(); got != 0 {
		t.Fatalf("Elapsed() after reset = %v", got)
	}
	clk.AdvanceBy(timestamp.DeltaNanos(7))
	if got := sw.Elapsed(); got != timestamp.DeltaNanos(7) {
		t.Fatalf("Elapsed() after reset and advance = %v", got)
	}
}

func TestTimerBoundary(t *testing.T) {
	clk := NewManual()
	timer := NewTimer(clk, timestamp.DeltaNanos(10))

	if timer.TimedOut() {
		t.Fatal("timed out with nothing elapsed")
	}

	clk.AdvanceBy(timestamp.DeltaNanos(9))
	if timer.TimedOut() {
		t.Fatal("timed out strictly before the duration")
	}

	// Inclusive boundary: exactly at the duration counts as timed out.
	clk.AdvanceBy(timestamp.DeltaNanos(1))
	if !timer.TimedOut() {
		t.Fatal("not timed out exactly at the duration")
	}

	clk.AdvanceBy(timestamp.DeltaNanos(5))
	if !timer.TimedOut() {
		t.Fatal("not timed out past the duration")
	}
	if got := timer.Elapsed(); got != timestamp.DeltaNanos(15) {
		t.Fatalf("Elapsed() = %v", got)
	}
}

func TestTimerReset(t *testing.T) {
	clk := NewManual()
	timer := NewTimer(clk, timestamp.DeltaNanos(5))

	clk.AdvanceBy(timestamp.DeltaNanos(6))
	if !timer.TimedOut() {
		t.Fatal("expected timeout before reset")
	}

	timer.Reset()
	if timer.TimedOut() {
		t.Fatal("timed out immediately after reset")
	}
	if got := timer.Elapsed(); got != 0 {
		t.Fatalf("Elapsed() after reset = %v", got)
	}

	clk.AdvanceBy(timestamp.DeltaNanos(3))
	if timer.TimedOut() {
		t.Fatal("timed out before the duration after reset")
	}
	clk.AdvanceBy(timestamp.DeltaNanos(2))
	if !timer.TimedOut() {
		t.Fatal("not timed out at the duration after reset")
	}
}

func TestSystemClockMonotonicEnough(t *testing.T) {
	var clk SystemClock
	a := clk.Now()
	b := clk.Now()
	if b.Before(a) {
		t.Fatalf("system clock went backward: %v then %v", a, b)
	}
	if a.Secs() == 0 {
		t.Fatal("system clock reads as the epoch")
	}
}
