package marquee

import (
	"math"
	"sync"
	"time"
)

// Scheduler owns the offset and advances it once per frame in proportion to
// the elapsed time, so the apparent speed is ContentWidth/Duration pixels per
// millisecond at any refresh rate. It is the only writer of the offset.
type Scheduler struct {
	mu       sync.Mutex
	cfg      ScrollConfig
	width    float64
	offset   float64
	ticks    uint64
	gen      uint64
	cancel   func()
	stopped  bool
	onOffset func(float64)
}

// NewScheduler returns an idle scheduler. onOffset, if non-nil, receives the
// offset after every tick; it runs outside the scheduler lock.
func NewScheduler(cfg ScrollConfig, onOffset func(float64)) *Scheduler {
	return &Scheduler{cfg: cfg.Normalize(), onOffset: onOffset}
}

// Start subscribes to frames. It is a no-op while the content width is
// unknown, after Stop, or when already running.
func (s *Scheduler) Start(frames FrameSource) bool {
	if frames == nil {
		return false
	}
	s.mu.Lock()
	if s.stopped || s.cancel != nil || !validWidth(s.width) {
		s.mu.Unlock()
		return false
	}
	// placeholder so a concurrent Start cannot subscribe twice
	s.cancel = func() {}
	gen := s.gen
	s.mu.Unlock()

	cancel := frames.Subscribe(s.Tick)

	s.mu.Lock()
	if s.stopped || s.gen != gen {
		s.mu.Unlock()
		cancel()
		return false
	}
	s.cancel = cancel
	s.mu.Unlock()
	return true
}

// Pause cancels the frame subscription but keeps the offset so a later Start
// resumes from the same position.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	s.gen++
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Stop cancels the frame subscription for good. Ticks arriving afterwards,
// including ones already queued by a dispatcher, leave the offset untouched.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.gen++
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Running reports whether a frame subscription is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil && !s.stopped
}

// Tick advances the offset by the distance travelled in elapsed.
func (s *Scheduler) Tick(elapsed time.Duration) {
	s.mu.Lock()
	if s.stopped || !validWidth(s.width) {
		s.mu.Unlock()
		return
	}
	ms := durationMillis(elapsed)
	if ms < 0 || math.IsNaN(ms) {
		ms = 0
	}
	delta := DirectionSign(s.cfg.Reverse) * ms * s.width / durationMillis(s.cfg.Duration)
	s.offset = Wrap(s.offset+delta, s.width)
	s.ticks++
	off := s.offset
	cb := s.onOffset
	s.mu.Unlock()

	if cb != nil {
		cb(off)
	}
}

// SetContentWidth changes the wrap range. The current offset is wrapped into
// the new range rather than reset. A non-positive width turns ticks into
// no-ops until a valid width arrives.
func (s *Scheduler) SetContentWidth(w float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !validWidth(w) {
		s.width = 0
		return
	}
	s.width = w
	s.offset = Wrap(s.offset, w)
}

// SetConfig updates speed and direction. The offset is left as is so that a
// direction change never jumps.
func (s *Scheduler) SetConfig(cfg ScrollConfig) {
	s.mu.Lock()
	s.cfg = cfg.Normalize()
	s.mu.Unlock()
}

// Config returns the normalized configuration in use.
func (s *Scheduler) Config() ScrollConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Offset returns the current wrapped offset.
func (s *Scheduler) Offset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// Ticks returns how many frames advanced the offset.
func (s *Scheduler) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}
