package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/promoticker/internal/marquee"
)

// ContentFunc builds one copy of the marquee content. Every clone and the
// measurement probe are built from the same func, so swapping it updates all
// of them at once.
type ContentFunc func() fyne.CanvasObject

// Marquee scrolls its content endlessly across whatever width its container
// gives it. Scrolling starts once both the content and the viewport have been
// measured; until then nothing but the hidden probe exists.
type Marquee struct {
	widget.BaseWidget

	mu      sync.Mutex
	content ContentFunc
	cfg     marquee.ScrollConfig
	frames  marquee.FrameSource
	coord   *marquee.Coordinator
	probe   *marquee.Probe
	track   *marqueeRenderer
	mounted bool
}

// NewMarquee creates a marquee for content with the given speed and direction.
func NewMarquee(content ContentFunc, cfg marquee.ScrollConfig) *Marquee {
	m := &Marquee{content: content, cfg: cfg.Normalize(), mounted: true}
	m.probe = marquee.NewProbe(m.contentMeasured)
	m.ExtendBaseWidget(m)
	return m
}

// NewTextMarquee scrolls a single line of text.
func NewTextMarquee(text string, cfg marquee.ScrollConfig) *Marquee {
	return NewMarquee(TextContent(text, fyne.TextStyle{}), cfg)
}

// TextContent returns a ContentFunc producing a non-wrapping label.
func TextContent(text string, style fyne.TextStyle) ContentFunc {
	return func() fyne.CanvasObject {
		lbl := widget.NewLabelWithStyle(text, fyne.TextAlignLeading, style)
		lbl.Wrapping = fyne.TextWrapOff
		return lbl
	}
}

// SetFrameSource replaces the frame source. It applies from the next mount.
func (m *Marquee) SetFrameSource(src marquee.FrameSource) {
	m.mu.Lock()
	m.frames = src
	m.mu.Unlock()
}

// SetContent swaps what every clone shows. The probe re-measures it.
func (m *Marquee) SetContent(content ContentFunc) {
	m.mu.Lock()
	m.content = content
	r := m.track
	m.mu.Unlock()
	m.probe.Invalidate()
	if r != nil {
		r.contentChanged()
	}
	m.Refresh()
}

// SetConfig changes speed and direction while scrolling.
func (m *Marquee) SetConfig(cfg marquee.ScrollConfig) {
	m.mu.Lock()
	m.cfg = cfg.Normalize()
	coord := m.coord
	m.mu.Unlock()
	if coord != nil {
		coord.SetConfig(cfg)
	}
}

// Config returns the current speed and direction.
func (m *Marquee) Config() marquee.ScrollConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// SetReverse flips the direction without a jump.
func (m *Marquee) SetReverse(reverse bool) {
	cfg := m.Config()
	cfg.Reverse = reverse
	m.SetConfig(cfg)
}

// SetDuration sets the time one content width takes to scroll by.
func (m *Marquee) SetDuration(d time.Duration) {
	cfg := m.Config()
	cfg.Duration = d
	m.SetConfig(cfg)
}

// Unmount tears the engine down: frames stop and the clones are dropped. The
// widget stays in the tree and can be mounted again.
func (m *Marquee) Unmount() {
	m.mu.Lock()
	coord := m.coord
	m.coord = nil
	m.mounted = false
	r := m.track
	m.mu.Unlock()
	if coord != nil {
		coord.Close()
	}
	if r != nil {
		r.SetClones(0, 0)
		r.sync()
	}
}

// Mount starts a fresh engine with a zero offset. It is a no-op while
// mounted.
func (m *Marquee) Mount() {
	m.mu.Lock()
	if m.mounted {
		m.mu.Unlock()
		return
	}
	m.mounted = true
	r := m.track
	m.mu.Unlock()
	m.probe.Invalidate()
	if r != nil {
		m.mountTrack(r)
		m.Refresh()
	}
}

// Mounted reports whether the engine is mounted.
func (m *Marquee) Mounted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mounted
}

// State returns the engine lifecycle stage.
func (m *Marquee) State() marquee.State {
	if c := m.coordinator(); c != nil {
		return c.State()
	}
	return marquee.StateTornDown
}

// CloneCount returns how many clones are currently requested.
func (m *Marquee) CloneCount() int {
	if c := m.coordinator(); c != nil {
		return c.CloneCount()
	}
	return 0
}

// Offset returns the current scroll offset.
func (m *Marquee) Offset() float64 {
	if c := m.coordinator(); c != nil {
		return c.Offset()
	}
	return 0
}

// ContentWidth returns the width last reported by the probe.
func (m *Marquee) ContentWidth() float32 {
	return float32(m.probe.Width())
}

// CreateRenderer builds the track and mounts the engine.
func (m *Marquee) CreateRenderer() fyne.WidgetRenderer {
	m.ExtendBaseWidget(m)
	r := newMarqueeRenderer(m)
	m.mu.Lock()
	m.track = r
	mounted := m.mounted
	m.mu.Unlock()
	if mounted {
		m.mountTrack(r)
	}
	return r
}

func (m *Marquee) mountTrack(r *marqueeRenderer) {
	m.mu.Lock()
	if m.coord != nil {
		m.mu.Unlock()
		return
	}
	frames := m.frames
	if frames == nil {
		frames = NewFrameSource(FrameSourceAnimation, marquee.DefaultFrameInterval)
		m.frames = frames
	}
	m.coord = marquee.NewCoordinator(m.cfg, frames, r)
	m.mu.Unlock()
}

func (m *Marquee) coordinator() *marquee.Coordinator {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.coord
}

func (m *Marquee) contentFunc() ContentFunc {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content
}

// contentMeasured receives probe reports.
func (m *Marquee) contentMeasured(w float64) {
	if c := m.coordinator(); c != nil {
		c.SetContentWidth(w)
	}
}
