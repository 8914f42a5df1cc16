package isovox

import (
	"image/color"

	"github.com/gogpu/isovox/internal/chunk"
)

// Shade is the cached lighting class of a voxel.
type Shade uint8

const (
	// ShadeNone marks a voxel that has not been classified. It renders as
	// the zero color.
	ShadeNone Shade = iota

	// ShadeX is used when only the face toward the camera along X is exposed.
	ShadeX

	// ShadeY is used when only the face toward the camera along Y is exposed.
	ShadeY

	// ShadeZ is used when the top face is exposed. It is the brightest class.
	ShadeZ

	// ShadeXY is used when both side faces are exposed. It renders two-tone.
	ShadeXY
)

// String returns the class name.
func (s Shade) String() string {
	switch s {
	case ShadeNone:
		return "none"
	case ShadeX:
		return "X"
	case ShadeY:
		return "Y"
	case ShadeZ:
		return "Z"
	case ShadeXY:
		return "XY"
	}
	return "invalid"
}

// classify picks the shade class from the emptiness of the three neighbors
// toward the camera.
func classify(nx, ny, nz bool) Shade {
	switch {
	case nz:
		return ShadeZ
	case nx && !ny:
		return ShadeX
	case ny && !nx:
		return ShadeY
	case nx && ny:
		return ShadeXY
	default:
		// Fully enclosed; not normally visible.
		return ShadeX
	}
}

// updateShade reclassifies the voxel at c from its neighbors at
// (x-vx, y, z), (x, y-vy, z) and (x, y, z+1). Voxels in the camera-facing
// boundary layer have no neighbor to sample and keep their shade.
// It reports whether the stored shade changed.
func (v *Volume) updateShade(c chunk.Coord) bool {
	nx := chunk.Coord{X: c.X - v.view.X, Y: c.Y, Z: c.Z}
	ny := chunk.Coord{X: c.X, Y: c.Y - v.view.Y, Z: c.Z}
	nz := chunk.Coord{X: c.X, Y: c.Y, Z: c.Z + 1}
	if !v.grid.Contains(nx) || !v.grid.Contains(ny) || !v.grid.Contains(nz) {
		return false
	}

	s := classify(
		v.occupancy[v.grid.Index(nx)] == 0,
		v.occupancy[v.grid.Index(ny)] == 0,
		v.occupancy[v.grid.Index(nz)] == 0,
	)

	idx := v.grid.Index(c)
	if v.shade[idx] == s {
		return false
	}
	v.shade[idx] = s
	return true
}

// Palette holds the colors of the shade classes. ShadeXY renders as Y on the
// left column of a fat pixel and X on the right.
type Palette struct {
	X, Y, Z color.RGBA
}

// DefaultPalette returns the standard gray palette.
func DefaultPalette() Palette {
	return Palette{
		X: color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
		Y: color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xff},
		Z: color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff},
	}
}

// Colors returns the left and right column colors of a fat pixel for s.
func (p Palette) Colors(s Shade) (left, right color.RGBA) {
	switch s {
	case ShadeNone:
		return color.RGBA{}, color.RGBA{}
	case ShadeX:
		return p.X, p.X
	case ShadeY:
		return p.Y, p.Y
	case ShadeZ:
		return p.Z, p.Z
	case ShadeXY:
		return p.Y, p.X
	}
	return color.RGBA{}, color.RGBA{}
}
