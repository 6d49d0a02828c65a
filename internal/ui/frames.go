package ui

import (
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"github.com/edward-ap/promoticker/internal/marquee"
)

const (
	// FrameSourceAnimation drives marquees from fyne's animation runner,
	// which fires once per canvas refresh.
	FrameSourceAnimation = "animation"
	// FrameSourceTicker drives marquees from a time.Ticker.
	FrameSourceTicker = "ticker"
)

// AnimationSource adapts fyne.Animation to marquee.FrameSource. fyne reports
// animation progress, not elapsed time, so the elapsed time between two ticks
// is measured with Clock.
type AnimationSource struct {
	Clock marquee.Clock
}

// Subscribe starts an endless linear animation and forwards every tick.
func (s *AnimationSource) Subscribe(fn marquee.FrameFunc) func() {
	if fn == nil {
		return func() {}
	}
	clock := s.Clock
	if clock == nil {
		clock = marquee.SystemClock
	}

	var (
		mu      sync.Mutex
		last    = clock.Now()
		stopped bool
	)
	anim := fyne.NewAnimation(time.Second, func(float32) {
		mu.Lock()
		if stopped {
			mu.Unlock()
			return
		}
		now := clock.Now()
		elapsed := now.Sub(last)
		last = now
		mu.Unlock()
		fn(elapsed)
	})
	anim.Curve = fyne.AnimationLinear
	anim.RepeatCount = fyne.AnimationRepeatForever
	anim.Start()

	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			stopped = true
			mu.Unlock()
			anim.Stop()
		})
	}
}

// NewFrameSource returns the frame source named by kind. The animation source
// needs a running fyne app; without one the ticker is used. Ticker frames run
// on the ticker goroutine, which is fine for fyne 2.5 canvas objects: Move and
// Refresh may be called from any goroutine.
func NewFrameSource(kind string, interval time.Duration) marquee.FrameSource {
	if strings.EqualFold(strings.TrimSpace(kind), FrameSourceTicker) || fyne.CurrentApp() == nil {
		return marquee.NewTickerSource(interval)
	}
	return &AnimationSource{}
}
