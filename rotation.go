package isovox

import "github.com/gogpu/isovox/internal/chunk"

// viewVector returns the view direction for rotation r: (-1, -1, -1) turned
// by r quarter turns about Z.
func viewVector(r int) chunk.Coord {
	vx, vy := -1, -1
	for i := 0; i < r&3; i++ {
		vx, vy = vy, -vx
	}
	return chunk.Coord{X: vx, Y: vy, Z: -1}
}

// SetRotation selects one of four 90° view orientations; r is taken modulo 4.
// Changing the rotation flushes pending work under the old view and
// schedules a full update, since shading and rendering both depend on the
// view direction.
//
// The bitmap layout does not follow the rotation yet. Rotations 1-3 render a
// sheared view, and incremental flushes under them may leave stale pixels
// that only a full update (SetFullUpdate) removes.
func (v *Volume) SetRotation(r int) {
	r &= 3
	if r == v.rotation {
		return
	}
	v.SetFullUpdate()
	v.rotation = r
	v.view = viewVector(r)
}

// Rotation returns the current rotation in [0, 3].
func (v *Volume) Rotation() int {
	return v.rotation
}

// ViewVector returns the X and Y components of the view direction. The Z
// component is always -1.
func (v *Volume) ViewVector() (vx, vy int) {
	return v.view.X, v.view.Y
}
