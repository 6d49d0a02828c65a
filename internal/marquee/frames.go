package marquee

import (
	"sync"
	"time"
)

// FrameFunc is invoked once per frame with the time elapsed since the
// previous invocation. The first call after subscribing reports the time since
// Subscribe.
type FrameFunc func(elapsed time.Duration)

// FrameSource calls back once per display refresh (or timer tick). The
// returned cancel func must stop further callbacks before it returns, except
// for callbacks a dispatcher has already queued.
type FrameSource interface {
	Subscribe(fn FrameFunc) (cancel func())
}

// Clock is the time source used to measure elapsed time between frames.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = realClock{}

// DefaultFrameInterval approximates a 60 Hz display.
const DefaultFrameInterval = 16 * time.Millisecond

// TickerSource is a FrameSource driven by time.Ticker, used where no display
// refresh hook is available. Elapsed time is measured, not assumed, so a
// late or dropped tick does not change the apparent speed.
type TickerSource struct {
	Interval time.Duration
	Clock    Clock
}

// NewTickerSource returns a TickerSource with the given interval.
func NewTickerSource(interval time.Duration) *TickerSource {
	return &TickerSource{Interval: interval}
}

// Subscribe starts a goroutine delivering frames until cancel is called.
// fn runs on that goroutine. cancel waits for it to exit, so cancel must not
// be called from inside fn.
func (s *TickerSource) Subscribe(fn FrameFunc) func() {
	if fn == nil {
		return func() {}
	}
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	clock := s.Clock
	if clock == nil {
		clock = SystemClock
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()
		last := clock.Now()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				now := clock.Now()
				elapsed := now.Sub(last)
				last = now
				fn(elapsed)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
		})
	}
}
