// Package marquee implements the toolkit independent parts of the infinite
// ticker: width bookkeeping, clone counting, offset scheduling and the
// coordinator state machine. The fyne widget in package ui is a thin shell
// around it.
package marquee

import (
	"math"
	"time"
)

const (
	// MinDuration is the shortest accepted traversal time. Smaller or invalid
	// durations are clamped to it so no division can produce NaN or Inf.
	MinDuration = time.Millisecond
	// DefaultDuration is used by hosts that do not configure a speed.
	DefaultDuration = 8 * time.Second
	// cloneBuffer is one spare clone on each side of the viewport.
	cloneBuffer = 2
)

// ContentMetrics holds the natural width of one copy of the content.
// Zero means the probe has not reported yet.
type ContentMetrics struct {
	ContentWidth float64
}

// Known reports whether the width is usable.
func (m ContentMetrics) Known() bool { return validWidth(m.ContentWidth) }

// ViewportMetrics holds the visible width the marquee occupies.
// Zero means the container has not been laid out yet.
type ViewportMetrics struct {
	ParentWidth float64
}

// Known reports whether the width is usable.
func (m ViewportMetrics) Known() bool { return validWidth(m.ParentWidth) }

// ScrollConfig describes speed and direction. Duration is the time the content
// needs to travel exactly one content width.
type ScrollConfig struct {
	Duration time.Duration
	Reverse  bool
}

// Normalize returns a copy whose Duration is safe to divide by.
func (c ScrollConfig) Normalize() ScrollConfig {
	if c.Duration < MinDuration {
		c.Duration = MinDuration
	}
	return c
}

// Speed returns the travel speed in pixels per millisecond for content of
// width w.
func (c ScrollConfig) Speed(w float64) float64 {
	if !validWidth(w) {
		return 0
	}
	return w / durationMillis(c.Normalize().Duration)
}

// CloneCount returns how many copies are needed to tile a viewport of
// parentWidth with content of contentWidth, or 0 while either is unknown.
func CloneCount(contentWidth, parentWidth float64) int {
	if !validWidth(contentWidth) || !validWidth(parentWidth) {
		return 0
	}
	return int(math.Ceil(parentWidth/contentWidth)) + cloneBuffer
}

// DirectionSign is -1 for forward travel and +1 when reversed.
func DirectionSign(reverse bool) float64 {
	if reverse {
		return 1
	}
	return -1
}

// Wrap maps v into [0, w) using a true modulo. It returns 0 for non-finite
// input or an unusable width.
func Wrap(v, w float64) float64 {
	if !validWidth(w) || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(v, w)
	if m < 0 {
		m += w
	}
	// -tiny + w rounds to w
	if m >= w {
		m = 0
	}
	return m
}

func validWidth(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
