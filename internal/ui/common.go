// Package ui holds the fyne widgets of the promo strip: the Marquee and its
// track renderer, the announcement ticker, the live indicator and the small
// controls around them. fyne 2.5 has no exported way to queue work on its
// event loop; widgets here are updated from frame and binding goroutines
// directly, which its canvas objects allow for Move, Resize and Refresh.
package ui

import "fyne.io/fyne/v2"

// tickerWidthEpsilon absorbs sub-pixel measurement noise.
const tickerWidthEpsilon float32 = 0.5

// currentScale returns the UI scale, or 1 without a running app.
func currentScale() float64 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	set := app.Settings()
	if set == nil {
		return 1
	}
	if sc := set.Scale(); sc > 0 {
		return float64(sc)
	}
	return 1
}

// clampFloat64 constrains v to [min, max]; an empty range yields min.
func clampFloat64(v, min, max float64) float64 {
	switch {
	case max <= min, v < min:
		return min
	case v > max:
		return max
	}
	return v
}

// tickerNeedsScroll reports whether text of textWidth overflows the viewport
// by more than tickerWidthEpsilon.
func tickerNeedsScroll(textWidth, viewportWidth float32) bool {
	if textWidth <= 0 {
		return false
	}
	return textWidth-max(viewportWidth, 0) > tickerWidthEpsilon
}
