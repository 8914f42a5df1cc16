// Package chunk implements the chunked voxel index used by isovox.
//
// Voxel coordinates are split into a chunk coordinate (coord >> EdgeLog2) and
// a local coordinate (coord & EdgeMask). Voxels of one 8x8x8 chunk are stored
// contiguously and chunks are ordered row-major by (cx, cy, cz):
//
//	idx = local + (chunk << VolumeLog2)
//	local = lx + ly<<3 + lz<<6
//	chunk = cx + cy*chunksX + cz*chunksX*chunksY
package chunk

const (
	// EdgeLog2 is log2 of the chunk edge length.
	EdgeLog2 = 3

	// Edge is the chunk edge length in voxels.
	Edge = 1 << EdgeLog2

	// EdgeMask extracts the local coordinate from a voxel coordinate.
	EdgeMask = Edge - 1

	// VolumeLog2 is log2 of the number of voxels in a chunk.
	VolumeLog2 = 3 * EdgeLog2
)

// Coord is an integer voxel coordinate.
type Coord struct {
	X, Y, Z int
}

// Add returns c + d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y, c.Z + d.Z}
}

// Scale returns c * k.
func (c Coord) Scale(k int) Coord {
	return Coord{c.X * k, c.Y * k, c.Z * k}
}

// RoundUp rounds n up to a multiple of Edge.
func RoundUp(n int) int {
	return (n + EdgeMask) &^ EdgeMask
}

// Grid describes a volume whose dimensions are multiples of Edge.
// The zero value is an empty grid.
type Grid struct {
	dimX, dimY, dimZ int
	chunksX, chunksXY int
}

// NewGrid returns a grid with each dimension rounded up to a multiple of Edge.
// Callers validate that dimensions are positive.
func NewGrid(dimX, dimY, dimZ int) Grid {
	dimX, dimY, dimZ = RoundUp(dimX), RoundUp(dimY), RoundUp(dimZ)
	cx := dimX >> EdgeLog2
	cy := dimY >> EdgeLog2
	return Grid{
		dimX:     dimX,
		dimY:     dimY,
		dimZ:     dimZ,
		chunksX:  cx,
		chunksXY: cx * cy,
	}
}

// Dims returns the rounded dimensions.
func (g Grid) Dims() (x, y, z int) {
	return g.dimX, g.dimY, g.dimZ
}

// Len returns the number of voxels in the grid.
func (g Grid) Len() int {
	return g.dimX * g.dimY * g.dimZ
}

// Chunks returns the number of chunks along each axis.
func (g Grid) Chunks() (x, y, z int) {
	return g.dimX >> EdgeLog2, g.dimY >> EdgeLog2, g.dimZ >> EdgeLog2
}

// Contains reports whether c lies inside [0,dim) on every axis.
func (g Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.Z >= 0 &&
		c.X < g.dimX && c.Y < g.dimY && c.Z < g.dimZ
}

// Index returns the linear index of c. c must be inside the grid.
func (g Grid) Index(c Coord) int {
	chunk := (c.X >> EdgeLog2) + (c.Y>>EdgeLog2)*g.chunksX + (c.Z>>EdgeLog2)*g.chunksXY
	local := (c.X & EdgeMask) + (c.Y&EdgeMask)<<EdgeLog2 + (c.Z&EdgeMask)<<(2*EdgeLog2)
	return local + chunk<<VolumeLog2
}

// CheckedIndex returns the linear index of c, or -1 if c is outside the grid.
func (g Grid) CheckedIndex(c Coord) int {
	if !g.Contains(c) {
		return -1
	}
	return g.Index(c)
}

// Coord is the inverse of Index.
func (g Grid) Coord(idx int) Coord {
	local := idx & (1<<VolumeLog2 - 1)
	chunk := idx >> VolumeLog2

	cz := chunk / g.chunksXY
	rem := chunk - cz*g.chunksXY
	cy := rem / g.chunksX
	cx := rem - cy*g.chunksX

	return Coord{
		X: cx<<EdgeLog2 | local&EdgeMask,
		Y: cy<<EdgeLog2 | (local>>EdgeLog2)&EdgeMask,
		Z: cz<<EdgeLog2 | (local>>(2*EdgeLog2))&EdgeMask,
	}
}
