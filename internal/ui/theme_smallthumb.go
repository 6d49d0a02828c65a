package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// stripTheme tightens the default theme for a narrow banner strip: the inline
// icon (used for the slider thumb) is halved and inner padding reduced.
type stripTheme struct{ fyne.Theme }

func (t stripTheme) Size(n fyne.ThemeSizeName) float32 {
	base := t.Theme.Size(n)
	switch n {
	case theme.SizeNameInlineIcon:
		return base * 0.5
	case theme.SizeNameInnerPadding:
		return base * 0.75
	}
	return base
}

// UseStripTheme wraps the current app theme.
func UseStripTheme() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	app.Settings().SetTheme(stripTheme{Theme: app.Settings().Theme()})
}
