package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/promoticker/internal/marquee"
)

// SpeedSlider is a compact horizontal slider with a half size thumb. Its
// value is a speed factor applied to a base marquee duration: 1 keeps the
// configured speed, 2 scrolls twice as fast.
type SpeedSlider struct {
	widget.BaseWidget
	Min       float64
	Max       float64
	Step      float64
	Value     float64
	OnChanged func(float64)
}

// NewSpeedSlider creates a slider constrained to [min, max], starting at 1.
func NewSpeedSlider(min, max float64) *SpeedSlider {
	s := &SpeedSlider{Min: min, Max: max, Step: 0.25}
	s.Value = normalizeSliderValue(min, max, s.Step, 1)
	s.ExtendBaseWidget(s)
	return s
}

// ScaledDuration divides base by factor, never going below
// marquee.MinDuration.
func ScaledDuration(base time.Duration, factor float64) time.Duration {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		factor = 1
	}
	d := time.Duration(float64(base) / factor)
	if d < marquee.MinDuration {
		d = marquee.MinDuration
	}
	return d
}

// Duration returns base scaled by the current value.
func (s *SpeedSlider) Duration(base time.Duration) time.Duration {
	return ScaledDuration(base, s.Value)
}

func (s *SpeedSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &speedSliderRenderer{
		s:     s,
		track: canvas.NewRectangle(theme.ShadowColor()),
		fill:  canvas.NewRectangle(theme.PrimaryColor()),
		thumb: canvas.NewCircle(theme.ForegroundColor()),
	}
	r.objs = []fyne.CanvasObject{r.track, r.fill, r.thumb}
	return r
}

// SetValue snaps v to the step grid, refreshes and notifies OnChanged.
func (s *SpeedSlider) SetValue(v float64) {
	if s.Max <= s.Min {
		return
	}
	newValue := normalizeSliderValue(s.Min, s.Max, s.Step, v)
	if newValue == s.Value {
		return
	}
	s.Value = newValue
	s.Refresh()
	if s.OnChanged != nil {
		s.OnChanged(newValue)
	}
}

// Nudge moves the value by n steps.
func (s *SpeedSlider) Nudge(n int) {
	step := s.Step
	if step <= 0 {
		step = 1
	}
	s.SetValue(s.Value + float64(n)*step)
}

func normalizeSliderValue(min, max, step, value float64) float64 {
	if max <= min {
		return min
	}
	v := clampFloat64(value, min, max)
	if step > 0 {
		n := math.Round((v - min) / step)
		v = clampFloat64(min+n*step, min, max)
	}
	return v
}

// Dragged updates the value based on pointer drag position.
func (s *SpeedSlider) Dragged(e *fyne.DragEvent) {
	s.updateFromPos(e.Position.X, s.Size().Width)
}

func (s *SpeedSlider) DragEnd() {}

// Tapped moves the thumb to the tapped position.
func (s *SpeedSlider) Tapped(e *fyne.PointEvent) {
	s.updateFromPos(e.Position.X, s.Size().Width)
}

// Scrolled nudges the value with the mouse wheel.
func (s *SpeedSlider) Scrolled(ev *fyne.ScrollEvent) {
	if ev == nil {
		return
	}
	switch {
	case ev.Scrolled.DY > 0:
		s.Nudge(1)
	case ev.Scrolled.DY < 0:
		s.Nudge(-1)
	}
}

func (s *SpeedSlider) updateFromPos(px float32, w float32) {
	if w <= 0 || s.Max <= s.Min {
		return
	}
	frac := clampFloat64(float64(px/w), 0, 1)
	s.SetValue(s.Min + frac*(s.Max-s.Min))
}

// fraction is the thumb position in [0, 1].
func (s *SpeedSlider) fraction() float32 {
	span := s.Max - s.Min
	if span <= 0 {
		return 0
	}
	return float32(clampFloat64((s.Value-s.Min)/span, 0, 1))
}

// MinSize keeps the height comfortable to grab.
func (s *SpeedSlider) MinSize() fyne.Size {
	return fyne.NewSize(100, theme.IconInlineSize())
}

type speedSliderRenderer struct {
	s     *SpeedSlider
	track *canvas.Rectangle
	fill  *canvas.Rectangle
	thumb *canvas.Circle
	objs  []fyne.CanvasObject
}

func (r *speedSliderRenderer) Layout(sz fyne.Size) {
	const trackH = float32(4)
	y := (sz.Height - trackH) / 2
	r.track.Move(fyne.NewPos(0, y))
	r.track.Resize(fyne.NewSize(sz.Width, trackH))

	fillW := sz.Width * r.s.fraction()
	r.fill.Move(fyne.NewPos(0, y))
	r.fill.Resize(fyne.NewSize(fillW, trackH))

	thumbR := theme.IconInlineSize() / 4
	cx := float32(clampFloat64(float64(fillW), float64(thumbR), float64(sz.Width-thumbR)))
	cy := sz.Height / 2
	r.thumb.Resize(fyne.NewSize(thumbR*2, thumbR*2))
	r.thumb.Move(fyne.NewPos(cx-thumbR, cy-thumbR))
}

func (r *speedSliderRenderer) MinSize() fyne.Size { return r.s.MinSize() }

func (r *speedSliderRenderer) Refresh() {
	r.track.FillColor = theme.ShadowColor()
	r.fill.FillColor = theme.PrimaryColor()
	r.thumb.FillColor = theme.ForegroundColor()
	r.Layout(r.s.Size())
	canvas.Refresh(r.track)
	canvas.Refresh(r.fill)
	canvas.Refresh(r.thumb)
}

func (r *speedSliderRenderer) Destroy() {}

func (r *speedSliderRenderer) Objects() []fyne.CanvasObject { return r.objs }
