package ui

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/promoticker/internal/marquee"
)

// DefaultTickerText is shown when the controller is given an empty message.
const DefaultTickerText = "Welcome"

// TickerController shows announcement text in a strip: statically when it
// fits, through a Marquee when it overflows. SetText is safe to call from any
// goroutine.
type TickerController struct {
	lbl    *widget.Label
	mq     *Marquee
	holder *fyne.Container

	mu       sync.Mutex
	cancel   context.CancelFunc
	lastText string
	style    fyne.TextStyle
	scroll   bool
	viewport float32

	bind binding.String // thread-safe source of the current text
}

// NewTickerController creates a controller whose marquee scrolls with cfg and
// is driven by frames (nil picks the fyne animation source inside an app, a
// ticker otherwise).
func NewTickerController(cfg marquee.ScrollConfig, frames marquee.FrameSource) *TickerController {
	tc := &TickerController{
		lbl:  widget.NewLabel(""),
		bind: binding.NewString(),
	}
	tc.lbl.Truncation = fyne.TextTruncateClip
	tc.mq = NewMarquee(TextContent("", tc.style), cfg)
	if frames != nil {
		tc.mq.SetFrameSource(frames)
	}
	tc.mq.Hide()
	tc.mq.Unmount()
	tc.holder = container.New(&tickerLayout{tc: tc}, tc.lbl, tc.mq)

	tc.bind.AddListener(binding.NewDataListener(func() {
		text, err := tc.bind.Get()
		if err != nil {
			fyne.LogError("ticker text", err)
			return
		}
		tc.apply(text)
	}))
	_ = tc.bind.Set(DefaultTickerText)
	return tc
}

// CanvasObject returns the strip for embedding in layouts.
func (tc *TickerController) CanvasObject() fyne.CanvasObject { return tc.holder }

// Marquee exposes the scrolling widget, e.g. to flip its direction.
func (tc *TickerController) Marquee() *Marquee { return tc.mq }

// SetText replaces the announcement.
func (tc *TickerController) SetText(text string) {
	if text == "" {
		text = DefaultTickerText
	}
	_ = tc.bind.Set(text)
}

// Text returns the current announcement.
func (tc *TickerController) Text() string {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.lastText
}

// Scrolling reports whether the text currently overflows and scrolls.
func (tc *TickerController) Scrolling() bool {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.scroll
}

// Rotate cycles through messages, one every interval, until Close or the
// next Rotate call.
func (tc *TickerController) Rotate(messages []string, every time.Duration) {
	tc.stopRotation()
	if len(messages) == 0 {
		return
	}
	tc.SetText(messages[0])
	if len(messages) == 1 || every <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	tc.mu.Lock()
	tc.cancel = cancel
	tc.mu.Unlock()

	go func() {
		i := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(every):
				i = (i + 1) % len(messages)
				tc.SetText(messages[i])
			}
		}
	}()
}

// Close stops the rotation goroutine and unmounts the marquee.
func (tc *TickerController) Close() {
	tc.stopRotation()
	tc.mq.Unmount()
}

func (tc *TickerController) stopRotation() {
	tc.mu.Lock()
	if tc.cancel != nil {
		tc.cancel()
		tc.cancel = nil
	}
	tc.mu.Unlock()
}

// apply runs on the binding notification goroutine.
func (tc *TickerController) apply(text string) {
	tc.mu.Lock()
	changed := text != tc.lastText
	tc.lastText = text
	style := tc.style
	viewport := tc.viewport
	tc.mu.Unlock()

	if changed {
		tc.lbl.SetText(text)
		tc.mq.SetContent(TextContent(text, style))
	}
	tc.fit(viewport)
}

// fit picks static or scrolling presentation for the given viewport width.
func (tc *TickerController) fit(viewport float32) {
	tc.mu.Lock()
	tc.viewport = viewport
	text := tc.lastText
	tc.mu.Unlock()

	var textW float32
	if fyne.CurrentApp() != nil {
		textW = measureLabelTextWidth(tc.lbl, text)
	} else {
		textW = MeasureTextWidth(text, 0)
	}
	scroll := tickerNeedsScroll(textW, viewport)

	tc.mu.Lock()
	prev := tc.scroll
	tc.scroll = scroll
	tc.mu.Unlock()
	if scroll == prev && (scroll == tc.mq.Visible()) {
		return
	}
	if scroll {
		tc.lbl.Hide()
		tc.mq.Mount()
		tc.mq.Show()
		return
	}
	tc.mq.Hide()
	tc.mq.Unmount()
	tc.lbl.Show()
}

// measureLabelTextWidth estimates the width the label would need for text.
func measureLabelTextWidth(lbl *widget.Label, text string) float32 {
	if lbl == nil || text == "" {
		return 0
	}
	tmp := widget.NewLabel(text)
	tmp.Alignment = lbl.Alignment
	tmp.TextStyle = lbl.TextStyle
	tmp.Wrapping = fyne.TextWrapOff
	return tmp.MinSize().Width
}

// tickerLayout stacks label and marquee and re-checks overflow whenever the
// strip is resized.
type tickerLayout struct {
	tc *TickerController
}

func (l *tickerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
	l.tc.mu.Lock()
	changed := l.tc.viewport != size.Width
	l.tc.mu.Unlock()
	if changed {
		l.tc.fit(size.Width)
	}
}

func (l *tickerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var h float32
	for _, o := range objects {
		if m := o.MinSize(); m.Height > h {
			h = m.Height
		}
	}
	return fyne.NewSize(0, h)
}
