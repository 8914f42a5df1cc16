package isovox

import (
	"image/color"

	"github.com/gogpu/isovox/internal/chunk"
)

func at(x, y, z int) chunk.Coord {
	return chunk.Coord{X: x, Y: y, Z: z}
}

// rgba returns an opaque color from 0/1 channel flags.
func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r * 0xff, G: g * 0xff, B: b * 0xff, A: 0xff}
}
