package ui

import (
	"image"
	"image/color"
	"image/draw"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RotatedLabel shows a short tag ("PROMO", "NEW") turned 90° so it fits the
// height of a banner strip. The text is rasterized once and cached.
type RotatedLabel struct {
	text   string
	fg     color.Color
	bg     color.Color
	img    *canvas.Image
	target fyne.Size
}

// NewRotatedLabel creates a tag in the theme foreground colour on a
// transparent background.
func NewRotatedLabel(text string) *RotatedLabel {
	r := &RotatedLabel{text: text, fg: theme.ForegroundColor(), bg: color.Transparent}
	r.render()
	return r
}

// NewRotatedTag creates a tag with explicit colours.
func NewRotatedTag(text string, fg, bg color.Color) *RotatedLabel {
	r := &RotatedLabel{text: text, fg: fg, bg: bg}
	r.render()
	return r
}

// CanvasObject exposes the underlying image.
func (r *RotatedLabel) CanvasObject() fyne.CanvasObject { return r.img }

// Text returns the tag text.
func (r *RotatedLabel) Text() string { return r.text }

// SetTargetSize fits the tag into a w×h box, keeping its aspect ratio.
func (r *RotatedLabel) SetTargetSize(w, h float32) {
	r.target = fyne.NewSize(w, h)
	r.img.FillMode = canvas.ImageFillContain
	r.img.SetMinSize(r.target)
}

// SetText re-rasterizes the tag.
func (r *RotatedLabel) SetText(text string) {
	if text == r.text {
		return
	}
	r.text = text
	r.render()
}

func (r *RotatedLabel) render() {
	src := r.rasterize()
	rot := rotateCCW(src)

	if r.img == nil {
		r.img = canvas.NewImageFromImage(rot)
	} else {
		r.img.Image = rot
	}
	r.img.FillMode = canvas.ImageFillContain
	if r.target.Width > 0 && r.target.Height > 0 {
		r.img.SetMinSize(r.target)
	} else {
		b := rot.Bounds()
		r.img.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	}
	r.img.Refresh()
}

// rasterize draws the text horizontally with padding so glyphs are not
// clipped.
func (r *RotatedLabel) rasterize() *image.RGBA {
	face := themeFace(0)
	if closer, ok := face.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	const pad = 8
	d := &font.Drawer{Face: face}
	m := face.Metrics()
	w := int(d.MeasureString(r.text)>>6) + pad
	h := int((m.Ascent+m.Descent)>>6) + pad
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(src, src.Bounds(), image.NewUniform(r.bg), image.Point{}, draw.Src)
	d.Dst = src
	d.Src = image.NewUniform(color.NRGBAModel.Convert(r.fg))
	d.Dot = fixed.P(pad/2, int(m.Ascent>>6)+pad/2)
	d.DrawString(r.text)
	return src
}

// rotateCCW turns src 90° counter-clockwise so the text reads bottom-up.
func rotateCCW(src *image.RGBA) *image.RGBA {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for dy := 0; dy < w; dy++ {
		for dx := 0; dx < h; dx++ {
			dst.SetRGBA(dx, dy, src.RGBAAt(w-1-dy, dx))
		}
	}
	return dst
}
