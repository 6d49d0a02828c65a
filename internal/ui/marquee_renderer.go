package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/edward-ap/promoticker/internal/marquee"
)

// marqueeRenderer is the track: it owns the clones and implements
// marquee.Track. Coordinator callbacks only record state; clones are rebuilt
// in sync, which runs after the coordinator call has returned.
type marqueeRenderer struct {
	m *Marquee

	probeObj fyne.CanvasObject
	probeBox *fyne.Container
	track    *fyne.Container
	clip     *container.Scroll
	objects  []fyne.CanvasObject

	mu       sync.Mutex
	clones   []fyne.CanvasObject
	count    int
	width    float32
	offset   float64
	height   float32
	stale    bool
	rebuild  bool
	lastSize fyne.Size
}

func newMarqueeRenderer(m *Marquee) *marqueeRenderer {
	r := &marqueeRenderer{m: m}
	r.track = container.NewWithoutLayout()
	r.clip = container.NewScroll(r.track)
	r.clip.Direction = container.ScrollNone
	r.probeBox = container.NewWithoutLayout()
	r.probeBox.Hide()
	r.buildProbe()
	r.objects = []fyne.CanvasObject{r.probeBox, r.clip}
	return r
}

// buildProbe renders one invisible, non-interactive copy of the content.
func (r *marqueeRenderer) buildProbe() {
	r.probeObj = nil
	if content := r.m.contentFunc(); content != nil {
		r.probeObj = content()
	}
	if r.probeObj != nil {
		r.probeBox.Objects = []fyne.CanvasObject{r.probeObj}
	} else {
		r.probeBox.Objects = nil
	}
}

func (r *marqueeRenderer) contentChanged() {
	r.buildProbe()
	r.mu.Lock()
	r.rebuild = true
	r.stale = true
	r.mu.Unlock()
}

// SetClones implements marquee.Track.
func (r *marqueeRenderer) SetClones(count int, contentWidth float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if count < 0 {
		count = 0
	}
	if r.count != count || r.width != float32(contentWidth) {
		r.count = count
		r.width = float32(contentWidth)
		r.stale = true
	}
}

// SetOffset implements marquee.Track and runs once per frame.
func (r *marqueeRenderer) SetOffset(offset float64) {
	r.mu.Lock()
	r.offset = offset
	if r.stale {
		r.mu.Unlock()
		return
	}
	r.placeLocked()
	r.mu.Unlock()
	canvas.Refresh(r.track)
}

// placeLocked moves clone i to (i-1)*w - offset.
func (r *marqueeRenderer) placeLocked() {
	w := float64(r.width)
	for i, c := range r.clones {
		x := marquee.ClonePosition(i, w, r.offset)
		c.Move(fyne.NewPos(float32(x), 0))
	}
}

// sync rebuilds the clone set after a metrics change and places it.
func (r *marqueeRenderer) sync() {
	content := r.m.contentFunc()

	r.mu.Lock()
	if r.rebuild {
		r.clones = nil
		r.rebuild = false
	}
	if r.count == 0 || content == nil {
		r.clones = nil
	}
	for len(r.clones) < r.count && content != nil {
		r.clones = append(r.clones, content())
	}
	if len(r.clones) > r.count {
		r.clones = r.clones[:r.count]
	}
	size := fyne.NewSize(r.width, r.height)
	for _, c := range r.clones {
		c.Resize(size)
	}
	r.placeLocked()
	r.stale = false
	objs := make([]fyne.CanvasObject, len(r.clones))
	copy(objs, r.clones)
	r.mu.Unlock()

	r.track.Objects = objs
	r.track.Refresh()
}

func (r *marqueeRenderer) Layout(size fyne.Size) {
	r.probeBox.Resize(size)
	r.clip.Resize(size)
	r.track.Resize(size)

	h := size.Height
	if r.probeObj != nil {
		min := r.probeObj.MinSize()
		r.probeObj.Resize(min)
		if min.Height < h {
			h = min.Height
		}
		r.m.probe.Observe(float64(min.Width))
	}
	r.mu.Lock()
	if h != r.height {
		r.height = h
		r.stale = true
	}
	r.lastSize = size
	r.mu.Unlock()

	if c := r.m.coordinator(); c != nil {
		c.SetParentWidth(float64(size.Width))
	}
	r.sync()
}

// MinSize is one content copy tall and claims no width, so a marquee never
// widens its container.
func (r *marqueeRenderer) MinSize() fyne.Size {
	if r.probeObj == nil {
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(0, r.probeObj.MinSize().Height)
}

func (r *marqueeRenderer) Refresh() {
	if r.probeObj != nil {
		r.probeObj.Refresh()
	}
	r.mu.Lock()
	size := r.lastSize
	r.mu.Unlock()
	r.Layout(size)
	canvas.Refresh(r.m)
}

func (r *marqueeRenderer) Objects() []fyne.CanvasObject { return r.objects }

// Destroy runs when fyne drops the widget; that is the unmount.
func (r *marqueeRenderer) Destroy() {
	r.m.Unmount()
}
