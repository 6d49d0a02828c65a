package storefront

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	config "github.com/edward-ap/promoticker/internal/config"
	"github.com/edward-ap/promoticker/internal/marquee"
	ui "github.com/edward-ap/promoticker/internal/ui"
)

// bannerSeparator trails every banner text so consecutive copies do not run
// into each other.
const bannerSeparator = "   ★   "

var bannerStripes = [...]color.NRGBA{
	{0x22, 0x2a, 0x36, 0xFF},
	{0x1c, 0x22, 0x2c, 0xFF},
}

// Board is the stack of promotion banners, one marquee each. It owns their
// pause, direction and speed state.
type Board struct {
	mu      sync.Mutex
	banners []config.Banner
	rows    []*ui.Marquee
	speed   float64
	paused  bool
	box     *fyne.Container
}

// NewBoard builds one marquee per banner, all driven by frames.
func NewBoard(banners []config.Banner, frames marquee.FrameSource) *Board {
	b := &Board{
		banners: append([]config.Banner(nil), banners...),
		speed:   1,
	}
	objs := make([]fyne.CanvasObject, 0, len(banners))
	for i, bn := range b.banners {
		mq := ui.NewMarquee(
			ui.TextContent(bn.Text+bannerSeparator, fyne.TextStyle{Bold: true}),
			marquee.ScrollConfig{Duration: bn.Duration(), Reverse: bn.Reverse},
		)
		if frames != nil {
			mq.SetFrameSource(frames)
		}
		b.rows = append(b.rows, mq)

		bg := canvas.NewRectangle(bannerStripes[i%len(bannerStripes)])
		objs = append(objs, container.NewStack(bg, mq))
	}
	b.box = container.NewVBox(objs...)
	return b
}

// CanvasObject returns the banner stack for embedding in layouts.
func (b *Board) CanvasObject() fyne.CanvasObject { return b.box }

// Len returns the number of banners.
func (b *Board) Len() int { return len(b.rows) }

// Marquee returns banner i, or nil when out of range.
func (b *Board) Marquee(i int) *ui.Marquee {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

// Paused reports whether the banners are unmounted.
func (b *Board) Paused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paused
}

// SetPaused unmounts or remounts every banner. Resuming starts each banner
// from a zero offset.
func (b *Board) SetPaused(paused bool) {
	b.mu.Lock()
	if b.paused == paused {
		b.mu.Unlock()
		return
	}
	b.paused = paused
	b.mu.Unlock()

	for _, mq := range b.rows {
		if paused {
			mq.Unmount()
		} else {
			mq.Mount()
		}
	}
}

// TogglePaused flips the paused state and returns the new one.
func (b *Board) TogglePaused() bool {
	paused := !b.Paused()
	b.SetPaused(paused)
	return paused
}

// ReverseAll flips the direction of every banner.
func (b *Board) ReverseAll() {
	for i := range b.rows {
		b.ToggleReverse(i)
	}
}

// ToggleReverse flips banner i and reports its new direction. Out of range
// indexes are ignored.
func (b *Board) ToggleReverse(i int) bool {
	mq := b.Marquee(i)
	if mq == nil {
		return false
	}
	b.mu.Lock()
	b.banners[i].Reverse = !b.banners[i].Reverse
	reverse := b.banners[i].Reverse
	b.mu.Unlock()
	mq.SetReverse(reverse)
	return reverse
}

// Speed returns the current speed factor.
func (b *Board) Speed() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.speed
}

// SetSpeed scales every banner's configured duration by 1/factor.
func (b *Board) SetSpeed(factor float64) {
	b.mu.Lock()
	b.speed = factor
	durations := make([]time.Duration, len(b.banners))
	for i, bn := range b.banners {
		durations[i] = ui.ScaledDuration(bn.Duration(), factor)
	}
	b.mu.Unlock()

	for i, mq := range b.rows {
		mq.SetDuration(durations[i])
	}
}

// Close unmounts every banner for good.
func (b *Board) Close() {
	b.mu.Lock()
	b.paused = true
	b.mu.Unlock()
	for _, mq := range b.rows {
		mq.Unmount()
	}
}
