package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// themeFace loads the current theme font at sizePt (scaled by the UI scale)
// and falls back to a bitmap face when the font cannot be parsed.
func themeFace(sizePt float64) font.Face {
	hasApp := fyne.CurrentApp() != nil
	if sizePt <= 0 && hasApp {
		sizePt = float64(theme.TextSize())
	}
	if sizePt <= 0 {
		sizePt = 14
	}
	sizePt *= currentScale() * 0.75
	if sizePt < 6 {
		sizePt = 6
	}
	var res fyne.Resource
	if hasApp {
		res = theme.TextFont()
	}
	if res != nil {
		if data := res.Content(); len(data) > 0 {
			if ttf, err := opentype.Parse(data); err == nil {
				if face, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: sizePt, DPI: 96, Hinting: font.HintingFull}); err == nil {
					return face
				}
			}
		}
	}
	return basicfont.Face7x13
}

// MeasureTextWidth returns the advance width of text set in the theme font,
// without needing a canvas. sizePt <= 0 uses the theme text size.
func MeasureTextWidth(text string, sizePt float32) float32 {
	if text == "" {
		return 0
	}
	face := themeFace(float64(sizePt))
	if closer, ok := face.(interface{ Close() error }); ok {
		defer closer.Close()
	}
	adv := font.MeasureString(face, text)
	return float32(adv) / 64
}
