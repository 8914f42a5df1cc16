package chunk

import "testing"

func TestRoundUp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{1, 8}, {7, 8}, {8, 8}, {9, 16}, {16, 16}, {100, 104}, {128, 128},
	}
	for _, tt := range tests {
		if got := RoundUp(tt.in); got != tt.want {
			t.Errorf("RoundUp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewGridDims(t *testing.T) {
	g := NewGrid(4, 9, 1)
	x, y, z := g.Dims()
	if x != 8 || y != 16 || z != 8 {
		t.Errorf("Dims() = (%d, %d, %d), want (8, 16, 8)", x, y, z)
	}
	if g.Len() != 8*16*8 {
		t.Errorf("Len() = %d, want %d", g.Len(), 8*16*8)
	}
	cx, cy, cz := g.Chunks()
	if cx != 1 || cy != 2 || cz != 1 {
		t.Errorf("Chunks() = (%d, %d, %d), want (1, 2, 1)", cx, cy, cz)
	}
}

// TestIndexBijection checks that Index is a bijection onto [0, Len) and that
// Coord inverts it.
func TestIndexBijection(t *testing.T) {
	grids := []Grid{
		NewGrid(8, 8, 8),
		NewGrid(16, 8, 24),
		NewGrid(24, 16, 8),
	}
	for _, g := range grids {
		dx, dy, dz := g.Dims()
		seen := make([]bool, g.Len())
		for z := 0; z < dz; z++ {
			for y := 0; y < dy; y++ {
				for x := 0; x < dx; x++ {
					c := Coord{x, y, z}
					idx := g.Index(c)
					if idx < 0 || idx >= g.Len() {
						t.Fatalf("Index(%v) = %d out of [0, %d)", c, idx, g.Len())
					}
					if seen[idx] {
						t.Fatalf("Index(%v) = %d aliases another coordinate", c, idx)
					}
					seen[idx] = true
					if back := g.Coord(idx); back != c {
						t.Fatalf("Coord(Index(%v)) = %v", c, back)
					}
				}
			}
		}
	}
}

func TestIndexChunkContiguous(t *testing.T) {
	g := NewGrid(16, 16, 16)
	// All voxels of chunk (1,0,0) live in [512, 1024).
	for z := 0; z < Edge; z++ {
		for y := 0; y < Edge; y++ {
			for x := Edge; x < 2*Edge; x++ {
				idx := g.Index(Coord{x, y, z})
				if idx < 1<<VolumeLog2 || idx >= 2<<VolumeLog2 {
					t.Fatalf("Index(%d,%d,%d) = %d, want within chunk 1", x, y, z, idx)
				}
			}
		}
	}
	if got := g.Index(Coord{0, 8, 0}); got != 2<<VolumeLog2 {
		t.Errorf("Index(0,8,0) = %d, want %d", got, 2<<VolumeLog2)
	}
	if got := g.Index(Coord{0, 0, 8}); got != 4<<VolumeLog2 {
		t.Errorf("Index(0,0,8) = %d, want %d", got, 4<<VolumeLog2)
	}
}

func TestContains(t *testing.T) {
	g := NewGrid(8, 8, 8)
	tests := []struct {
		c    Coord
		want bool
	}{
		{Coord{0, 0, 0}, true},
		{Coord{7, 7, 7}, true},
		{Coord{-1, 0, 0}, false},
		{Coord{0, -1, 0}, false},
		{Coord{0, 0, -1}, false},
		{Coord{8, 0, 0}, false},
		{Coord{0, 8, 0}, false},
		{Coord{0, 0, 8}, false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.c); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.c, got, tt.want)
		}
		idx := g.CheckedIndex(tt.c)
		if tt.want && idx < 0 {
			t.Errorf("CheckedIndex(%v) = %d, want valid index", tt.c, idx)
		}
		if !tt.want && idx != -1 {
			t.Errorf("CheckedIndex(%v) = %d, want -1", tt.c, idx)
		}
	}
}

func TestCoordArithmetic(t *testing.T) {
	c := Coord{1, 2, 3}
	if got := c.Add(Coord{-1, 1, -3}); got != (Coord{0, 3, 0}) {
		t.Errorf("Add = %v", got)
	}
	if got := c.Scale(-2); got != (Coord{-2, -4, -6}) {
		t.Errorf("Scale = %v", got)
	}
}
