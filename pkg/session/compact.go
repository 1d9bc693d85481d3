package session

// Compact merges a recorded session into fewer, larger frames without
// changing observable replay semantics.
//
// The first frame is the synthetic anchor seeded at recording start; it is
// emitted untouched. The remaining frames are flattened to one ordered
// stream of events and regrouped into maximal runs in which every event has
// the same pointer-move/non-pointer-move classification. Each run becomes
// one frame stamped with the originating frame's timestamp at the run's
// first event.
//
// Pointer moves are never merged with other events: a replayed frame
// delivers all its events within one tick, so batching motion with discrete
// events would collapse the temporal granularity of a gesture. Discrete
// events are order-only-dependent and tolerate batching.
//
// An empty input is a no-op.
func Compact(frames []FrameEvents) []FrameEvents {
	if len(frames) == 0 {
		return frames
	}

	merged := make([]FrameEvents, 0, len(frames))
	merged = append(merged, frames[0])

	var (
		run        *FrameEvents
		runPointer bool
	)
	for _, frame := range frames[1:] {
		for _, e := range frame.Events {
			isPointer := e.IsPointerMove()
			if run != nil && runPointer == isPointer {
				run.Events = append(run.Events, e)
				continue
			}
			if run != nil {
				merged = append(merged, *run)
			}
			run = &FrameEvents{Time: frame.Time, Events: []Event{e}}
			runPointer = isPointer
		}
	}
	if run != nil {
		merged = append(merged, *run)
	}
	return merged
}
