package frame

// ManualScheduler holds the pending frame callback until Advance is called.
// It stands in for the display refresh source in tests and headless runs.
type ManualScheduler struct {
	pending func()
}

// NewManualScheduler creates an idle scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestFrame stores fn to run on the next Advance.
func (s *ManualScheduler) RequestFrame(fn func()) {
	s.pending = fn
}

// Pending reports whether a frame is scheduled.
func (s *ManualScheduler) Pending() bool {
	return s.pending != nil
}

// Advance runs up to n frames in order and returns how many ran.
// It stops early when no frame is pending.
func (s *ManualScheduler) Advance(n int) int {
	ran := 0
	for ran < n && s.Fire() {
		ran++
	}
	return ran
}

// Fire runs the pending callback once. The callback is cleared before it
// runs, so a callback that panics leaves nothing scheduled.
func (s *ManualScheduler) Fire() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn()
	return true
}
