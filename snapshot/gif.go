package snapshot

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"

	xdraw "golang.org/x/image/draw"
)

// EncodeGIF writes frames to w as a looping animated GIF. delay is in
// hundredths of a second per frame. Frames are quantized to the Plan 9
// palette without dithering, which keeps flat shade colors flat.
func EncodeGIF(w io.Writer, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for _, frame := range frames {
		b := frame.Bounds()
		p := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
		xdraw.Draw(p, p.Bounds(), frame, b.Min, xdraw.Src)

		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, delay)
	}

	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("snapshot: encode GIF: %w", err)
	}
	return nil
}

// SaveGIF writes frames to path as an animated GIF.
func SaveGIF(path string, frames []image.Image, delay int) error {
	return saveWith(path, func(w io.Writer) error {
		return EncodeGIF(w, frames, delay)
	})
}
