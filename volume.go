package isovox

import (
	"fmt"
	"image"

	"github.com/dustin/go-humanize"

	"github.com/gogpu/isovox/internal/chunk"
	"github.com/gogpu/isovox/internal/damage"
	"github.com/gogpu/isovox/internal/invariant"
	"github.com/gogpu/isovox/internal/queue"
)

// Worst-case queue entries caused by a single write.
const (
	shadeFanout  = 3 * 3 * 3
	renderFanout = 1
)

// Volume is a dense voxel grid with an incrementally maintained isometric
// bitmap.
//
// Writes go through Put, which queues the shade and render work they cause.
// Flush commits the queued work to the shade cache and then to the bitmap.
//
// Volume is not safe for concurrent use.
type Volume struct {
	grid chunk.Grid

	occupancy []byte
	shade     []Shade

	shadeQueue  *queue.Queue
	renderQueue *queue.Queue

	bitmap *Bitmap
	damage *damage.Region

	rotation   int
	view       chunk.Coord // (vx, vy, -1)
	fullUpdate bool

	palette Palette
	stats   FlushStats
	checks  invariant.Checker
}

// New creates an empty volume. Each dimension is rounded up to a multiple of
// the chunk edge length (8).
//
// Example:
//
//	v, err := isovox.New(128, 128, 32)
//	if err != nil {
//	    return err
//	}
//	v.Put(10, 10, 0, 1)
//	v.Flush()
//	upload(v.Bitmap().Pix())
func New(dimX, dimY, dimZ int, opts ...Option) (*Volume, error) {
	if dimX <= 0 || dimY <= 0 || dimZ <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, dimX, dimY, dimZ)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.shadeQueueCap < shadeFanout {
		return nil, fmt.Errorf("%w: shade queue %d < %d", ErrQueueCapacity, o.shadeQueueCap, shadeFanout)
	}
	if o.renderQueueCap < renderFanout {
		return nil, fmt.Errorf("%w: render queue %d < %d", ErrQueueCapacity, o.renderQueueCap, renderFanout)
	}

	g := chunk.NewGrid(dimX, dimY, dimZ)
	dx, dy, dz := g.Dims()
	n := g.Len()
	w, h := boundingRect(dx, dy, dz)

	v := &Volume{
		grid:        g,
		occupancy:   make([]byte, n),
		shade:       make([]Shade, n),
		shadeQueue:  queue.New(o.shadeQueueCap, g.Index),
		renderQueue: queue.New(o.renderQueueCap, g.Index),
		bitmap:      newBitmap(w, h),
		damage:      damage.NewRegion(w, h),
		rotation:    o.rotation,
		view:        viewVector(o.rotation),
		palette:     o.palette,
		checks:      o.checks,
	}

	Logger().Debug("isovox: volume allocated",
		"dims", fmt.Sprintf("%dx%dx%d", dx, dy, dz),
		"voxels", humanize.Comma(int64(n)),
		"bitmap", fmt.Sprintf("%dx%d", w, h),
		"bytes", humanize.Bytes(uint64(2*n+4*w*h)))

	return v, nil
}

// Dims returns the volume dimensions after rounding.
func (v *Volume) Dims() (x, y, z int) {
	return v.grid.Dims()
}

// Bitmap returns the rendered bitmap. It is valid after Flush and until the
// next write.
func (v *Volume) Bitmap() *Bitmap {
	return v.bitmap
}

// Get returns the voxel value at (x, y, z), or 0 outside the volume.
func (v *Volume) Get(x, y, z int) byte {
	idx := v.grid.CheckedIndex(chunk.Coord{X: x, Y: y, Z: z})
	if idx < 0 {
		return 0
	}
	return v.occupancy[idx]
}

// ShadeAt returns the cached shade class at (x, y, z), or ShadeNone outside
// the volume. The value is stale until the next Flush after a write.
func (v *Volume) ShadeAt(x, y, z int) Shade {
	idx := v.grid.CheckedIndex(chunk.Coord{X: x, Y: y, Z: z})
	if idx < 0 {
		return ShadeNone
	}
	return v.shade[idx]
}

// Put writes value at (x, y, z) and queues the shade and render work the
// write causes. Writes outside the volume are ignored.
//
// If either queue lacks room for the work of one write, Put flushes first.
// It reports whether that implicit flush happened, so callers batching
// writes can tell that their batch was committed early.
func (v *Volume) Put(x, y, z int, value byte) bool {
	c := chunk.Coord{X: x, Y: y, Z: z}
	if !v.grid.Contains(c) {
		return false
	}

	idx := v.grid.Index(c)
	prev := v.occupancy[idx]
	v.occupancy[idx] = value

	if v.fullUpdate || prev == value {
		return false
	}

	flushed := false
	if !v.shadeQueue.Fits(shadeFanout) || !v.renderQueue.Fits(renderFanout) {
		if debugEnabled() {
			Logger().Debug("isovox: queue full, flushing",
				"shadeQueue", v.shadeQueue.Len(), "renderQueue", v.renderQueue.Len())
		}
		v.Flush()
		flushed = true
		if v.checks.On {
			v.checks.Check(v.shadeQueue.Fits(shadeFanout) && v.renderQueue.Fits(renderFanout),
				"queues lack headroom after flush")
		}
	}

	if (prev == 0) != (value == 0) {
		// Shade of every neighbor may depend on this voxel.
		for az := -1; az <= 1; az++ {
			for ay := -1; ay <= 1; ay++ {
				for ax := -1; ax <= 1; ax++ {
					n := chunk.Coord{X: x + ax, Y: y + ay, Z: z + az}
					if v.grid.Contains(n) {
						v.shadeQueue.Push(n)
					}
				}
			}
		}
	}

	v.renderQueue.Push(v.entryPoint(c))
	return flushed
}

// TakeDamage returns the bitmap tiles written by flushes since the last call
// and forgets them. A full flush reports every tile.
func (v *Volume) TakeDamage() []image.Rectangle {
	return v.damage.Take()
}
