package isovox

import "github.com/gogpu/isovox/internal/chunk"

// FlushStats describes the work done by the most recent Flush.
type FlushStats struct {
	// Full is set when the flush recomputed the whole volume.
	Full bool

	// ShadeQueued is the shade queue length, duplicates included.
	ShadeQueued int

	// Shaded is the number of voxels classified.
	Shaded int

	// RenderQueued is the number of diagonals queued for rendering,
	// duplicates included.
	RenderQueued int

	// Rendered is the number of diagonals rendered.
	Rendered int
}

// Flush commits pending work. In full-update mode it reshades and renders the
// whole volume and leaves full-update mode; otherwise it applies each queued
// shade and render coordinate once.
//
// At rotation 0 a sequence of incremental flushes produces the same bitmap as
// one full flush of the same writes. At rotations 1-3 it does not: the bitmap
// layout ignores the rotation, so a cleared diagonal can leave a stale fat
// pixel behind until the next full update.
func (v *Volume) Flush() {
	if v.fullUpdate {
		v.flushFull()
	} else {
		v.flushIncremental()
	}

	if v.checks.On {
		v.checks.Check(!v.fullUpdate, "full update still pending after flush")
		v.checks.Check(v.shadeQueue.Len() == 0, "shade queue holds %d entries after flush", v.shadeQueue.Len())
		v.checks.Check(v.renderQueue.Len() == 0, "render queue holds %d entries after flush", v.renderQueue.Len())
	}

	if debugEnabled() {
		s := v.stats
		Logger().Debug("isovox: flush",
			"full", s.Full,
			"shaded", s.Shaded, "shadeQueued", s.ShadeQueued,
			"rendered", s.Rendered, "renderQueued", s.RenderQueued)
	}
}

// LastFlush returns statistics of the most recent Flush.
func (v *Volume) LastFlush() FlushStats {
	return v.stats
}

func (v *Volume) flushIncremental() {
	s := FlushStats{ShadeQueued: v.shadeQueue.Len()}

	s.Shaded = v.shadeQueue.Drain(func(c chunk.Coord) {
		if !v.updateShade(c) || v.occupancy[v.grid.Index(c)] == 0 {
			return
		}
		// The color of a visible voxel changed; its diagonal must be
		// repainted even if no write touched that diagonal.
		if !v.renderQueue.Fits(1) {
			v.drainRender(&s)
		}
		v.renderQueue.Push(v.entryPoint(c))
	})

	v.drainRender(&s)
	v.stats = s
}

// drainRender renders every distinct queued diagonal.
func (v *Volume) drainRender(s *FlushStats) {
	s.RenderQueued += v.renderQueue.Len()
	s.Rendered += v.renderQueue.Drain(v.renderDiagonal)
}

func (v *Volume) flushFull() {
	v.bitmap.reset()

	dx, dy, dz := v.grid.Dims()
	vx, vy := v.view.X, v.view.Y
	s := FlushStats{Full: true}

	// Shade every voxel except the camera-facing boundary layer.
	x0, x1 := 0, dx-1
	if vx > 0 {
		x0, x1 = 1, dx
	}
	y0, y1 := 0, dy-1
	if vy > 0 {
		y0, y1 = 1, dy
	}
	for z := 0; z < dz-1; z++ {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				v.updateShade(chunk.Coord{X: x, Y: y, Z: z})
				s.Shaded++
			}
		}
	}

	// Every diagonal starts on the top face or on one of the two side faces
	// toward the camera.
	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			v.renderDiagonal(chunk.Coord{X: x, Y: y, Z: dz - 1})
			s.Rendered++
		}
	}
	xfront, yfront := 0, 0
	if vx < 0 {
		xfront = dx - 1
	}
	if vy < 0 {
		yfront = dy - 1
	}
	for z := 0; z < dz-1; z++ {
		// The (xfront, yfront) column is painted by both loops.
		for x := 0; x < dx; x++ {
			v.renderDiagonal(chunk.Coord{X: x, Y: yfront, Z: z})
			s.Rendered++
		}
		for y := 0; y < dy; y++ {
			v.renderDiagonal(chunk.Coord{X: xfront, Y: y, Z: z})
			s.Rendered++
		}
	}

	v.damage.MarkAll()
	v.fullUpdate = false
	v.stats = s
}

// SetFullUpdate makes the next Flush recompute the whole volume. Pending
// incremental work is flushed first so no write is lost. While a full update
// is pending, Put only stores values.
func (v *Volume) SetFullUpdate() {
	if v.fullUpdate {
		return
	}
	v.Flush()
	v.fullUpdate = true
}

// FullUpdatePending reports whether the next Flush is a full update.
func (v *Volume) FullUpdatePending() bool {
	return v.fullUpdate
}
