package queue

import (
	"testing"

	"github.com/gogpu/isovox/internal/chunk"
)

func newTestQueue(capacity int) *Queue {
	g := chunk.NewGrid(16, 16, 16)
	return New(capacity, g.Index)
}

func TestQueue_PushCapacity(t *testing.T) {
	q := newTestQueue(3)

	if q.Cap() != 3 {
		t.Fatalf("Cap() = %d, want 3", q.Cap())
	}
	for i := 0; i < 3; i++ {
		if !q.Push(chunk.Coord{X: i}) {
			t.Fatalf("Push #%d failed below capacity", i)
		}
	}
	if q.Push(chunk.Coord{X: 5}) {
		t.Error("Push beyond capacity succeeded")
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}
}

func TestQueue_Fits(t *testing.T) {
	tests := []struct {
		name   string
		cap    int
		pushed int
		n      int
		want   bool
	}{
		{"empty exact", 27, 0, 27, true},
		{"empty over", 26, 0, 27, false},
		{"partial fits", 30, 3, 27, true},
		{"partial over", 30, 4, 27, false},
		{"full zero", 2, 2, 0, true},
		{"full one", 2, 2, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newTestQueue(tt.cap)
			for i := 0; i < tt.pushed; i++ {
				q.Push(chunk.Coord{Y: i})
			}
			if got := q.Fits(tt.n); got != tt.want {
				t.Errorf("Fits(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestQueue_DrainDedupes(t *testing.T) {
	q := newTestQueue(64)

	coords := []chunk.Coord{
		{X: 3, Y: 1, Z: 2},
		{X: 9, Y: 0, Z: 0},
		{X: 3, Y: 1, Z: 2},
		{X: 0, Y: 0, Z: 0},
		{X: 9, Y: 0, Z: 0},
		{X: 3, Y: 1, Z: 2},
	}
	for _, c := range coords {
		q.Push(c)
	}

	visits := map[chunk.Coord]int{}
	n := q.Drain(func(c chunk.Coord) { visits[c]++ })

	if n != 3 {
		t.Errorf("Drain() = %d, want 3", n)
	}
	for c, count := range visits {
		if count != 1 {
			t.Errorf("%v visited %d times, want 1", c, count)
		}
	}
	if len(visits) != 3 {
		t.Errorf("visited %d distinct coordinates, want 3", len(visits))
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d, want 0", q.Len())
	}
}

func TestQueue_DrainOrder(t *testing.T) {
	g := chunk.NewGrid(16, 16, 16)
	q := New(16, g.Index)

	q.Push(chunk.Coord{X: 8})
	q.Push(chunk.Coord{Z: 1})
	q.Push(chunk.Coord{X: 1})

	var keys []int
	q.Drain(func(c chunk.Coord) { keys = append(keys, g.Index(c)) })

	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("Drain visited keys out of order: %v", keys)
		}
	}
}

func TestQueue_DrainEmpty(t *testing.T) {
	q := newTestQueue(4)
	called := false
	if n := q.Drain(func(chunk.Coord) { called = true }); n != 0 {
		t.Errorf("Drain() on empty queue = %d, want 0", n)
	}
	if called {
		t.Error("Drain() on empty queue called fn")
	}
}

func TestQueue_Reset(t *testing.T) {
	q := newTestQueue(4)
	q.Push(chunk.Coord{})
	q.Push(chunk.Coord{X: 1})
	q.Reset()
	if q.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", q.Len())
	}
	if q.Cap() != 4 {
		t.Errorf("Cap() after Reset = %d, want 4", q.Cap())
	}
}
