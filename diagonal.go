package isovox

import (
	"image/color"

	"github.com/gogpu/isovox/internal/chunk"
)

/*
Projection.

A 4x4x1 slab

	1234
	5678
	9abc
	defg

renders as

	        11
	      551122
	    9955662233
	  dd99aa66773344
	  ddeeaabb778844
	    eeffbbcc88
	      ffggcc
	        gg

X/Y is the ground plane and Z is height. A voxel at (x, y, z) maps to

	rx = (x-y)*2
	ry = (x+y) - 2*z

so every voxel of the diagonal (x+k, y+k, z+k) lands on the same column and
the one with the largest k hides the others. Each diagonal owns one 2x2 fat
pixel, which fills the gaps left by the 2:1 horizontal compression.
*/

// axisDist returns the number of steps of direction v (±1) from p before
// leaving [0, d).
func axisDist(v, d, p int) int {
	if v < 0 {
		return p
	}
	return d - p - 1
}

// diagonalDist returns the number of unit steps along dir from p that stay
// inside a dx x dy x dz box. It is a step count, not a Euclidean distance.
func diagonalDist(dir chunk.Coord, dx, dy, dz int, p chunk.Coord) int {
	return min(
		axisDist(dir.X, dx, p.X),
		axisDist(dir.Y, dy, p.Y),
		axisDist(dir.Z, dz, p.Z),
	)
}

// asDiagonal advances p along dir to the last position inside the box.
func asDiagonal(dir chunk.Coord, dx, dy, dz int, p chunk.Coord) chunk.Coord {
	return p.Add(dir.Scale(diagonalDist(dir, dx, dy, dz, p)))
}

// entryPoint returns the anchor of the diagonal through c: its position
// closest to the camera. Writes queue anchors so that all voxels of one
// diagonal deduplicate to a single render.
func (v *Volume) entryPoint(c chunk.Coord) chunk.Coord {
	dx, dy, dz := v.grid.Dims()
	return asDiagonal(v.view.Scale(-1), dx, dy, dz, c)
}

// project maps a voxel position to the top-left corner of its fat pixel.
//
// TODO(rotation): the mapping ignores the rotation. For rotations 1-3 the
// voxels of one diagonal do not share a column; how rotated views should be
// laid out in bitmap space is an open product question.
func (v *Volume) project(c chunk.Coord) (sx, sy int) {
	_, dy, dz := v.grid.Dims()
	sx = 2 * (dy - 1 + c.X - c.Y)
	sy = (c.X + c.Y) + 2*(dz-1-c.Z)
	return sx, sy
}

// renderDiagonal marches from c along the view direction and paints the fat
// pixel of the first occupied voxel, or clears it if the diagonal is empty.
// c must be inside the volume.
func (v *Volume) renderDiagonal(c chunk.Coord) {
	dx, dy, dz := v.grid.Dims()
	n := diagonalDist(v.view, dx, dy, dz, c)

	var left, right color.RGBA
	for i := 0; ; i++ {
		idx := v.grid.Index(c)
		if v.occupancy[idx] != 0 {
			left, right = v.palette.Colors(v.shade[idx])
			break
		}
		if i == n {
			break
		}
		c = c.Add(v.view)
	}

	sx, sy := v.project(c)
	if v.checks.On {
		v.checks.Check(sx >= 0 && sy >= 0 && sx+1 < v.bitmap.width && sy+1 < v.bitmap.height,
			"fat pixel (%d, %d) of voxel %v outside %dx%d bitmap", sx, sy, c, v.bitmap.width, v.bitmap.height)
	}

	v.bitmap.setFat(sx, sy, left, right)
	v.damage.Mark(sx, sy)
	v.damage.Mark(sx+1, sy+1)
}
