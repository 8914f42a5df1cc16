// Package damage tracks which tiles of a bitmap were written since the
// damage was last taken.
package damage

import (
	"image"
	"math/bits"
)

// TileSize is the edge length of a damage tile in pixels.
const TileSize = 16

// Region tracks dirty tiles of a width x height pixel bitmap using a bitmap
// with one bit per tile.
//
// Bit index = ty * tilesX + tx, packed into uint64 words (64 tiles per word).
//
// Region is not safe for concurrent use; isovox writes and reads it from the
// same call sequence.
type Region struct {
	words  []uint64
	width  int
	height int
	tilesX int
	tilesY int
}

// NewRegion creates a clean region covering a width x height bitmap.
// Returns nil if dimensions are invalid (zero or negative).
func NewRegion(width, height int) *Region {
	if width <= 0 || height <= 0 {
		return nil
	}

	tilesX := (width + TileSize - 1) / TileSize
	tilesY := (height + TileSize - 1) / TileSize
	numWords := (tilesX*tilesY + 63) / 64

	return &Region{
		words:  make([]uint64, numWords),
		width:  width,
		height: height,
		tilesX: tilesX,
		tilesY: tilesY,
	}
}

// Mark marks the tile containing pixel (px, py).
// Does nothing if the pixel is outside the bitmap.
func (d *Region) Mark(px, py int) {
	if px < 0 || px >= d.width || py < 0 || py >= d.height {
		return
	}
	idx := (py/TileSize)*d.tilesX + px/TileSize
	d.words[idx/64] |= 1 << (idx & 63)
}

// MarkAll marks every tile.
func (d *Region) MarkAll() {
	total := d.tilesX * d.tilesY
	full := total / 64
	for i := 0; i < full; i++ {
		d.words[i] = ^uint64(0)
	}
	if rem := total % 64; rem > 0 {
		d.words[full] = (uint64(1) << rem) - 1
	}
}

// Clear marks every tile clean.
func (d *Region) Clear() {
	clear(d.words)
}

// IsEmpty reports whether no tile is dirty.
func (d *Region) IsEmpty() bool {
	for _, w := range d.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of dirty tiles.
func (d *Region) Count() int {
	n := 0
	for _, w := range d.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsDirty reports whether tile (tx, ty) is dirty.
// Returns false for out-of-range tiles.
func (d *Region) IsDirty(tx, ty int) bool {
	if tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return false
	}
	idx := ty*d.tilesX + tx
	return d.words[idx/64]&(1<<(idx&63)) != 0
}

// ForEachDirty calls fn for each dirty tile in row-major order without
// clearing it.
func (d *Region) ForEachDirty(fn func(tx, ty int)) {
	for wi, word := range d.words {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			idx := wi*64 + bit
			fn(idx%d.tilesX, idx/d.tilesX)
			word &^= 1 << bit
		}
	}
}

// TileRect returns the pixel rectangle of tile (tx, ty), clipped to the
// bitmap.
func (d *Region) TileRect(tx, ty int) image.Rectangle {
	r := image.Rect(tx*TileSize, ty*TileSize, (tx+1)*TileSize, (ty+1)*TileSize)
	return r.Intersect(image.Rect(0, 0, d.width, d.height))
}

// Take returns the pixel rectangles of all dirty tiles and clears them.
func (d *Region) Take() []image.Rectangle {
	var rects []image.Rectangle
	d.ForEachDirty(func(tx, ty int) {
		rects = append(rects, d.TileRect(tx, ty))
	})
	d.Clear()
	return rects
}

// Tiles returns the tile grid dimensions.
func (d *Region) Tiles() (x, y int) {
	return d.tilesX, d.tilesY
}
