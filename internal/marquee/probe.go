package marquee

import "sync"

// Probe filters width measurements of an off-screen content instance and
// forwards each distinct, usable width to its callback exactly once. After
// Invalidate (content swapped) the next usable width is reported even when it
// equals the previous one.
type Probe struct {
	mu       sync.Mutex
	onWidth  func(float64)
	reported bool
	last     float64
}

// NewProbe creates a probe reporting to onWidth.
func NewProbe(onWidth func(float64)) *Probe {
	return &Probe{onWidth: onWidth}
}

// Observe feeds a measured width. It returns true when the width was reported.
func (p *Probe) Observe(width float64) bool {
	if !validWidth(width) {
		return false
	}
	p.mu.Lock()
	if p.reported && p.last == width {
		p.mu.Unlock()
		return false
	}
	p.reported = true
	p.last = width
	cb := p.onWidth
	p.mu.Unlock()

	if cb != nil {
		cb(width)
	}
	return true
}

// Invalidate marks the content as re-rendered.
func (p *Probe) Invalidate() {
	p.mu.Lock()
	p.reported = false
	p.mu.Unlock()
}

// Width returns the last reported width, or 0.
func (p *Probe) Width() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.reported {
		return 0
	}
	return p.last
}
