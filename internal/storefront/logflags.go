package storefront

import (
	"log"
	"sync/atomic"
	"time"
)

var debugFramesEnabled atomic.Bool

// SetDebugFramesEnabled toggles periodic frame-rate logging. Call this before
// creating the App.
func SetDebugFramesEnabled(enabled bool) {
	debugFramesEnabled.Store(enabled)
}

func isDebugFramesEnabled() bool {
	return debugFramesEnabled.Load()
}

// frameMeter counts frames and reports the rate once per period.
type frameMeter struct {
	period  time.Duration
	frames  int
	elapsed time.Duration
	logf    func(format string, args ...any)
}

func newFrameMeter(period time.Duration) *frameMeter {
	return &frameMeter{period: period, logf: log.Printf}
}

// observe is a marquee.FrameFunc.
func (m *frameMeter) observe(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	m.frames++
	m.elapsed += elapsed
	if m.elapsed < m.period {
		return
	}
	fps := float64(m.frames) / m.elapsed.Seconds()
	m.logf("frames: %d in %v (%.1f fps)", m.frames, m.elapsed.Round(time.Millisecond), fps)
	m.frames = 0
	m.elapsed = 0
}
