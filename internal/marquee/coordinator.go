package marquee

import (
	"sync"
	"sync/atomic"
)

// State is the lifecycle stage of one mounted marquee.
type State int

const (
	// StateUnmeasured means neither width is known.
	StateUnmeasured State = iota
	// StateMeasuring means one width is known and the other is pending.
	StateMeasuring
	// StateActive means clones are shown and the scheduler runs.
	StateActive
	// StateTornDown is terminal; nothing moves any more.
	StateTornDown
)

func (s State) String() string {
	switch s {
	case StateUnmeasured:
		return "unmeasured"
	case StateMeasuring:
		return "measuring"
	case StateActive:
		return "active"
	case StateTornDown:
		return "torn-down"
	}
	return "unknown"
}

// Coordinator owns both widths, derives the clone count from them and wires
// the scheduler to the track. Width updates may arrive in any order and at any
// time; every change is applied before the next frame.
type Coordinator struct {
	mu       sync.Mutex
	content  ContentMetrics
	viewport ViewportMetrics
	count    int
	state    State
	frames   FrameSource
	track    atomic.Pointer[trackRef]
	sched    *Scheduler
	closed   atomic.Bool
}

// trackRef lets frame callbacks read the track without the coordinator lock,
// which Pause may hold while waiting for the frame goroutine.
type trackRef struct{ t Track }

// NewCoordinator mounts a marquee. frames drives the scheduler once both
// widths are known (nil means a TickerSource at DefaultFrameInterval); track
// receives clone and offset updates.
func NewCoordinator(cfg ScrollConfig, frames FrameSource, track Track) *Coordinator {
	if frames == nil {
		frames = NewTickerSource(DefaultFrameInterval)
	}
	c := &Coordinator{frames: frames}
	if track != nil {
		c.track.Store(&trackRef{t: track})
	}
	c.sched = NewScheduler(cfg, c.emitOffset)
	return c
}

// SetContentWidth records the width reported by the probe.
func (c *Coordinator) SetContentWidth(w float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !validWidth(w) {
		w = 0
	}
	if c.content.ContentWidth == w {
		return
	}
	c.content.ContentWidth = w
	c.recompute()
}

// SetParentWidth records the viewport width from the latest layout pass.
func (c *Coordinator) SetParentWidth(w float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !validWidth(w) {
		w = 0
	}
	if c.viewport.ParentWidth == w {
		return
	}
	c.viewport.ParentWidth = w
	c.recompute()
}

// SetConfig changes speed or direction without disturbing the offset.
func (c *Coordinator) SetConfig(cfg ScrollConfig) {
	c.sched.SetConfig(cfg)
}

// Config returns the normalized scroll configuration.
func (c *Coordinator) Config() ScrollConfig { return c.sched.Config() }

// recompute applies the rule "clone count follows both widths". c.mu is held.
func (c *Coordinator) recompute() {
	if c.state == StateTornDown {
		return
	}
	cw := c.content.ContentWidth
	c.count = CloneCount(cw, c.viewport.ParentWidth)
	c.sched.SetContentWidth(cw)

	if c.count == 0 {
		c.sched.Pause()
		c.state = StateUnmeasured
		if c.content.Known() || c.viewport.Known() {
			c.state = StateMeasuring
		}
		if t := c.currentTrack(); t != nil {
			t.SetClones(0, 0)
		}
		return
	}

	if t := c.currentTrack(); t != nil {
		t.SetClones(c.count, cw)
		t.SetOffset(c.sched.Offset())
	}
	if c.sched.Start(c.frames) || c.sched.Running() {
		c.state = StateActive
		return
	}
	c.state = StateMeasuring
}

func (c *Coordinator) currentTrack() Track {
	if ref := c.track.Load(); ref != nil {
		return ref.t
	}
	return nil
}

func (c *Coordinator) emitOffset(off float64) {
	if c.closed.Load() {
		return
	}
	if t := c.currentTrack(); t != nil {
		t.SetOffset(off)
	}
}

// Close unmounts the marquee. The frame subscription is cancelled before
// Close returns and later frames do nothing. Close is idempotent.
func (c *Coordinator) Close() {
	if c.closed.Swap(true) {
		return
	}
	c.sched.Stop()
	c.mu.Lock()
	c.state = StateTornDown
	c.count = 0
	c.track.Store(nil)
	c.frames = nil
	c.mu.Unlock()
}

// State returns the current lifecycle stage.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CloneCount returns the number of clones the track should show.
func (c *Coordinator) CloneCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Running reports whether the scheduler is subscribed to frames.
func (c *Coordinator) Running() bool { return c.sched.Running() }

// Offset returns the scheduler's current offset.
func (c *Coordinator) Offset() float64 { return c.sched.Offset() }

// Metrics returns both widths as last recorded.
func (c *Coordinator) Metrics() (ContentMetrics, ViewportMetrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content, c.viewport
}

// Layout returns the track geometry for the current frame.
func (c *Coordinator) Layout() Layout {
	c.mu.Lock()
	count, cw := c.count, c.content.ContentWidth
	c.mu.Unlock()
	return Layout{Count: count, ContentWidth: cw, Offset: c.sched.Offset()}
}
