// Package queue provides the bounded coordinate queues behind isovox's
// incremental flush.
//
// A Queue collects coordinates touched by writes. Duplicates are allowed on
// push; Drain sorts the entries so equal coordinates become adjacent and then
// visits each distinct coordinate exactly once.
package queue

import (
	"cmp"
	"slices"

	"github.com/gogpu/isovox/internal/chunk"
)

// KeyFunc maps a coordinate to its sort key. Distinct coordinates must map to
// distinct keys for deduplication to be exact.
type KeyFunc func(chunk.Coord) int

type entry struct {
	key int
	c   chunk.Coord
}

// Queue is a fixed-capacity sequence of coordinates.
//
// Queue is not safe for concurrent use.
type Queue struct {
	entries []entry
	key     KeyFunc
}

// New creates an empty queue holding at most capacity coordinates.
func New(capacity int, key KeyFunc) *Queue {
	return &Queue{
		entries: make([]entry, 0, capacity),
		key:     key,
	}
}

// Len returns the number of queued coordinates, duplicates included.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Cap returns the fixed capacity.
func (q *Queue) Cap() int {
	return cap(q.entries)
}

// Fits reports whether n more coordinates can be pushed.
func (q *Queue) Fits(n int) bool {
	return len(q.entries)+n <= cap(q.entries)
}

// Push appends c. It returns false and drops c if the queue is full.
func (q *Queue) Push(c chunk.Coord) bool {
	if len(q.entries) == cap(q.entries) {
		return false
	}
	q.entries = append(q.entries, entry{key: q.key(c), c: c})
	return true
}

// Drain sorts the queue by key, calls fn once per distinct coordinate in
// ascending key order and empties the queue. It returns the number of fn
// calls.
func (q *Queue) Drain(fn func(chunk.Coord)) int {
	slices.SortFunc(q.entries, func(a, b entry) int {
		return cmp.Compare(a.key, b.key)
	})

	n := 0
	for i, e := range q.entries {
		if i > 0 && e.key == q.entries[i-1].key {
			continue // duplicate
		}
		fn(e.c)
		n++
	}

	q.Reset()
	return n
}

// Reset empties the queue without visiting its entries.
func (q *Queue) Reset() {
	q.entries = q.entries[:0]
}
