package engine

// Scheduler is the frame-scheduling port. The engine asks it for one
// tick at a time and cancels it on reset/teardown, which decouples the
// simulation from any specific host frame-timing mechanism.
type Scheduler interface {
	// Schedule registers tick to run on the next frame, replacing any
	// previously scheduled tick.
	Schedule(tick func())
	// Cancel drops the pending tick, if any.
	Cancel()
}

// FrameScheduler holds at most one pending tick, which the host runs
// once per display frame via RunPending.
type FrameScheduler struct {
	pending func()
}

// NewFrameScheduler creates an empty frame scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Schedule registers the tick for the next RunPending call.
func (s *FrameScheduler) Schedule(tick func()) {
	s.pending = tick
}

// Cancel drops the pending tick.
func (s *FrameScheduler) Cancel() {
	s.pending = nil
}

// RunPending runs the pending tick, if any. The slot is cleared before
// the tick runs so the tick can schedule its own continuation.
func (s *FrameScheduler) RunPending() {
	tick := s.pending
	if tick == nil {
		return
	}
	s.pending = nil
	tick()
}
