package ui

import (
	"image/color"
	"math"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/edward-ap/promoticker/internal/marquee"
)

// hueSpeed is degrees per millisecond; one full cycle takes about 4s.
const hueSpeed = 360.0 / 4000.0

var indicatorIdle = color.NRGBA{0x80, 0x80, 0x80, 0xFF}

// LiveIndicator is a small dot that cycles through hues while promotions are
// scrolling. It shares the marquees' frame source, so its animation stops
// with theirs.
type LiveIndicator struct {
	wrap   *fyne.Container
	circle *canvas.Circle
	frames marquee.FrameSource

	mu     sync.Mutex
	cancel func()
	hue    float64 // 0..360
}

// NewLiveIndicator constructs an indicator with the given diameter.
func NewLiveIndicator(diameter float32, frames marquee.FrameSource) *LiveIndicator {
	c := canvas.NewCircle(indicatorIdle)
	c.StrokeColor = color.NRGBA{0, 0, 0, 0}
	inner := container.New(layout.NewGridWrapLayout(fyne.NewSize(diameter, diameter)), c)
	return &LiveIndicator{wrap: container.NewCenter(inner), circle: c, frames: frames}
}

// CanvasObject returns the fyne object suitable for embedding in layouts.
func (s *LiveIndicator) CanvasObject() fyne.CanvasObject { return s.wrap }

// Active reports whether the indicator is animating.
func (s *LiveIndicator) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// SetActive starts or stops the animation.
func (s *LiveIndicator) SetActive(on bool) {
	s.mu.Lock()
	if on == (s.cancel != nil) {
		s.mu.Unlock()
		return
	}
	if !on {
		cancel := s.cancel
		s.cancel = nil
		s.hue = 0
		s.mu.Unlock()
		cancel()
		s.circle.FillColor = indicatorIdle
		s.circle.Refresh()
		return
	}
	frames := s.frames
	s.cancel = func() {}
	s.mu.Unlock()

	if frames == nil {
		return
	}
	cancel := frames.Subscribe(s.advance)
	s.mu.Lock()
	if s.cancel == nil {
		// switched off while subscribing
		s.mu.Unlock()
		cancel()
		return
	}
	s.cancel = cancel
	s.mu.Unlock()
}

func (s *LiveIndicator) advance(elapsed time.Duration) {
	s.mu.Lock()
	if s.cancel == nil {
		s.mu.Unlock()
		return
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	s.hue = math.Mod(s.hue+ms*hueSpeed, 360)
	col := hsvToNRGBA(s.hue, 0.65, 0.95)
	s.mu.Unlock()

	s.circle.FillColor = col
	s.circle.Refresh()
}

// hsvToNRGBA converts HSV (0..360, 0..1, 0..1) to color.NRGBA.
func hsvToNRGBA(h, s, v float64) color.NRGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.NRGBA{
		R: uint8((r+m)*255 + 0.5),
		G: uint8((g+m)*255 + 0.5),
		B: uint8((b+m)*255 + 0.5),
		A: 0xFF,
	}
}
