package isovox

import (
	"image"
	"image/color"
)

// Bitmap is the RGBA output of a Volume: packed RGBA8, row-major.
//
// It is overwritten in place by Flush. Consumers should copy or upload it
// before the next write.
type Bitmap struct {
	width  int
	height int
	pix    []uint8 // RGBA, 4 bytes per pixel
}

// boundingRect returns the size of the isometric projection of a
// dx x dy x dz volume.
func boundingRect(dx, dy, dz int) (w, h int) {
	return 2 * (dx + dy - 1), dx + dy + 2*(dz-1)
}

func newBitmap(width, height int) *Bitmap {
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *Bitmap) Stride() int {
	return b.width * 4
}

// Pix returns the raw pixel data. It aliases the bitmap.
func (b *Bitmap) Pix() []uint8 {
	return b.pix
}

// RGBAAt returns the color of a single pixel.
// Out-of-range pixels are transparent.
func (b *Bitmap) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	i := (y*b.width + x) * 4
	return color.RGBA{R: b.pix[i+0], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// ToImage returns a copy of the bitmap as an image.RGBA.
func (b *Bitmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	return b.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *Bitmap) reset() {
	clear(b.pix)
}

func (b *Bitmap) setPixel(i int, c color.RGBA) {
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// setFat writes the 2x2 block at (x, y): left on column x, right on x+1.
func (b *Bitmap) setFat(x, y int, left, right color.RGBA) {
	i := (y*b.width + x) * 4
	s := b.width * 4
	b.setPixel(i, left)
	b.setPixel(i+4, right)
	b.setPixel(i+s, left)
	b.setPixel(i+s+4, right)
}
