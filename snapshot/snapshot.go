package snapshot

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Viewport returns a copy of the rectangle r of src. The result has its
// origin at (0, 0); parts of r outside src stay transparent.
func Viewport(src image.Image, r image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))

	clip := r.Intersect(src.Bounds())
	if clip.Empty() {
		return dst
	}
	xdraw.Copy(dst, clip.Min.Sub(r.Min), src, clip, draw.Src, nil)
	return dst
}

// Scale returns src enlarged by an integer factor with nearest-neighbor
// sampling, which keeps fat pixels sharp. A factor below 1 is treated as 1.
func Scale(src image.Image, factor int) *image.RGBA {
	factor = max(factor, 1)
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Caption draws text with its baseline-left corner at p using a fixed 7x13
// face.
func Caption(dst draw.Image, p image.Point, text string, c color.Color) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(text)
}

// CaptionHeight is the vertical space a caption line needs, in pixels.
func CaptionHeight() int {
	m := basicfont.Face7x13.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}
