package storefront

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

func keyToBannerIndex(key fyne.KeyName) int {
	switch key {
	case fyne.Key1:
		return 0
	case fyne.Key2:
		return 1
	case fyne.Key3:
		return 2
	case fyne.Key4:
		return 3
	case fyne.Key5:
		return 4
	case fyne.Key6:
		return 5
	case fyne.Key7:
		return 6
	case fyne.Key8:
		return 7
	case fyne.Key9:
		return 8
	}
	return -1
}

// handleShortcutKey centralizes keyboard shortcuts regardless of which widget
// currently owns focus.
func (a *App) handleShortcutKey(ke *fyne.KeyEvent) {
	if ke == nil {
		return
	}
	switch ke.Name {
	case fyne.KeySpace:
		a.togglePause()
	case fyne.KeyR:
		a.reverseAll()
	case fyne.KeyUp:
		a.speed.Nudge(+1)
	case fyne.KeyDown:
		a.speed.Nudge(-1)
	case fyne.Key1, fyne.Key2, fyne.Key3, fyne.Key4, fyne.Key5, fyne.Key6, fyne.Key7, fyne.Key8, fyne.Key9:
		a.board.ToggleReverse(keyToBannerIndex(ke.Name))
	}
}

// ensureShortcutFocus keeps the invisible shortcut catcher focused so global
// key handling works after a button was clicked.
func (a *App) ensureShortcutFocus() {
	if a == nil || a.w == nil || a.shortcutCatcher == nil {
		return
	}
	a.w.Canvas().Focus(a.shortcutCatcher)
}

type shortcutCatcher struct {
	widget.BaseWidget
	onKey func(*fyne.KeyEvent)
}

func newShortcutCatcher(handler func(*fyne.KeyEvent)) *shortcutCatcher {
	c := &shortcutCatcher{onKey: handler}
	c.ExtendBaseWidget(c)
	return c
}

func (s *shortcutCatcher) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(color.NRGBA{0, 0, 0, 0})
	rect.SetMinSize(fyne.NewSize(1, 1))
	return widget.NewSimpleRenderer(rect)
}

func (s *shortcutCatcher) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (s *shortcutCatcher) Resize(size fyne.Size) {
	s.BaseWidget.Resize(fyne.NewSize(1, 1))
}

func (s *shortcutCatcher) FocusGained() {}

func (s *shortcutCatcher) FocusLost() {}

func (s *shortcutCatcher) TypedKey(ev *fyne.KeyEvent) {
	if s.onKey != nil {
		s.onKey(ev)
	}
}

func (s *shortcutCatcher) TypedRune(r rune) {}
