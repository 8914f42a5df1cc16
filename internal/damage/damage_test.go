package damage

import (
	"image"
	"testing"
)

// =============================================================================
// Region Basic Tests
// =============================================================================

func TestRegion_Create(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantOK        bool
		wantTX        int
		wantTY        int
	}{
		{"exact tiles", 32, 16, true, 2, 1},
		{"partial tiles", 30, 30, true, 2, 2},
		{"single pixel", 1, 1, true, 1, 1},
		{"invalid zero width", 0, 10, false, 0, 0},
		{"invalid negative height", 10, -1, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewRegion(tt.width, tt.height)
			if (d != nil) != tt.wantOK {
				t.Fatalf("NewRegion(%d, %d) = %v, want ok=%v", tt.width, tt.height, d, tt.wantOK)
			}
			if d == nil {
				return
			}
			tx, ty := d.Tiles()
			if tx != tt.wantTX || ty != tt.wantTY {
				t.Errorf("Tiles() = (%d, %d), want (%d, %d)", tx, ty, tt.wantTX, tt.wantTY)
			}
			if !d.IsEmpty() {
				t.Error("new Region should be empty")
			}
		})
	}
}

func TestRegion_Mark(t *testing.T) {
	d := NewRegion(64, 64)

	d.Mark(17, 40)

	if !d.IsDirty(1, 2) {
		t.Error("Mark(17, 40) did not dirty tile (1, 2)")
	}
	if d.IsDirty(0, 0) {
		t.Error("tile (0, 0) should be clean")
	}
	if d.Count() != 1 {
		t.Errorf("Count() = %d, want 1", d.Count())
	}

	// Same tile again.
	d.Mark(31, 47)
	if d.Count() != 1 {
		t.Errorf("Count() after second mark in same tile = %d, want 1", d.Count())
	}
}

func TestRegion_MarkOutOfBounds(t *testing.T) {
	d := NewRegion(20, 20)

	d.Mark(-1, 0)
	d.Mark(0, -1)
	d.Mark(20, 0)
	d.Mark(0, 20)

	if !d.IsEmpty() {
		t.Error("out of bounds marks should not dirty any tile")
	}
}

func TestRegion_MarkAll(t *testing.T) {
	// 9x9 tiles = 81 bits, spans a partial second word.
	d := NewRegion(9*TileSize, 9*TileSize)
	d.MarkAll()

	if d.Count() != 81 {
		t.Errorf("Count() after MarkAll = %d, want 81", d.Count())
	}
	if !d.IsDirty(8, 8) {
		t.Error("last tile should be dirty after MarkAll")
	}
}

func TestRegion_Take(t *testing.T) {
	d := NewRegion(30, 20)
	d.Mark(0, 0)
	d.Mark(29, 19)

	rects := d.Take()

	want := []image.Rectangle{
		image.Rect(0, 0, 16, 16),
		image.Rect(16, 16, 30, 20),
	}
	if len(rects) != len(want) {
		t.Fatalf("Take() returned %d rects, want %d: %v", len(rects), len(want), rects)
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Errorf("rect[%d] = %v, want %v", i, rects[i], want[i])
		}
	}
	if !d.IsEmpty() {
		t.Error("Take() should clear the region")
	}
	if got := d.Take(); len(got) != 0 {
		t.Errorf("second Take() = %v, want empty", got)
	}
}

func TestRegion_ForEachDirtyKeepsFlags(t *testing.T) {
	d := NewRegion(64, 64)
	d.Mark(5, 5)
	d.Mark(50, 5)

	var tiles [][2]int
	d.ForEachDirty(func(tx, ty int) { tiles = append(tiles, [2]int{tx, ty}) })

	if len(tiles) != 2 || tiles[0] != [2]int{0, 0} || tiles[1] != [2]int{3, 0} {
		t.Errorf("ForEachDirty visited %v, want [[0 0] [3 0]]", tiles)
	}
	if d.Count() != 2 {
		t.Errorf("Count() after ForEachDirty = %d, want 2", d.Count())
	}
}
