// Package frontier implements the open set of a best-first search: a
// min-priority queue over comparable keys that holds at most one live entry
// per key and supports decreasing the priority of a queued key.
//
// Ordering is by ascending cost; equal costs are broken by insertion order
// (the key inserted first is extracted first), which makes searches built on
// top of it deterministic.
//
// Complexity:
//
//   - Insert, ExtractMin, DecreaseCost: O(log n).
//   - Contains, CurrentCost, Len: O(1).
//   - Space: O(n) for the heap plus the key → entry index.
package frontier

import (
	"container/heap"
	"errors"
	"fmt"
)

// Sentinel errors returned by Queue operations.
var (
	// ErrNotPresent indicates DecreaseCost was called for a key that is not queued.
	ErrNotPresent = errors.New("frontier: key not present")

	// ErrCostIncrease indicates DecreaseCost was called with a larger cost
	// than the one currently recorded.
	ErrCostIncrease = errors.New("frontier: new cost exceeds current cost")
)

// entry is one queued key with its priority.
type entry[K comparable] struct {
	key   K
	cost  float64
	seq   uint64 // insertion order, used for tie-breaking
	index int    // position in the heap, maintained by Swap
}

// entryHeap orders entries by (cost, seq) ascending.
type entryHeap[K comparable] []*entry[K]

// Len returns the number of entries.
func (h entryHeap[K]) Len() int { return len(h) }

// Less prefers the smaller cost, then the earlier insertion.
func (h entryHeap[K]) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two entries and keeps their index fields in sync.
func (h entryHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push appends x; called by heap.Push.
func (h *entryHeap[K]) Push(x any) {
	e := x.(*entry[K])
	e.index = len(*h)
	*h = append(*h, e)
}

// Pop removes the last element; called by heap.Pop.
func (h *entryHeap[K]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// Queue is an indexed min-priority queue. The zero value is not usable;
// create one with New. A Queue is not safe for concurrent use.
type Queue[K comparable] struct {
	heap  entryHeap[K]
	index map[K]*entry[K]
	seq   uint64
}

// New returns an empty Queue with room for capacity entries.
func New[K comparable](capacity int) *Queue[K] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[K]{
		heap:  make(entryHeap[K], 0, capacity),
		index: make(map[K]*entry[K], capacity),
	}
}

// Len returns the number of live entries.
func (q *Queue[K]) Len() int { return len(q.heap) }

// Contains reports whether k is currently queued.
func (q *Queue[K]) Contains(k K) bool {
	_, ok := q.index[k]

	return ok
}

// CurrentCost returns the recorded cost of k and whether k is queued.
func (q *Queue[K]) CurrentCost(k K) (float64, bool) {
	e, ok := q.index[k]
	if !ok {
		return 0, false
	}

	return e.cost, true
}

// Insert queues k with the given cost and reports whether a new entry was
// created. If k is already queued the two costs are reconciled: the entry
// keeps the smaller one (and its original insertion order).
func (q *Queue[K]) Insert(k K, cost float64) bool {
	if e, ok := q.index[k]; ok {
		if cost < e.cost {
			e.cost = cost
			heap.Fix(&q.heap, e.index)
		}

		return false
	}

	e := &entry[K]{key: k, cost: cost, seq: q.seq}
	q.seq++
	heap.Push(&q.heap, e)
	q.index[k] = e

	return true
}

// DecreaseCost lowers the cost of a queued key and restores heap order.
// Returns ErrNotPresent if k is not queued and ErrCostIncrease if cost is
// larger than the recorded cost. An equal cost is a no-op.
func (q *Queue[K]) DecreaseCost(k K, cost float64) error {
	e, ok := q.index[k]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotPresent, k)
	}
	if cost > e.cost {
		return fmt.Errorf("%w: %v has %v, got %v", ErrCostIncrease, k, e.cost, cost)
	}
	if cost < e.cost {
		e.cost = cost
		heap.Fix(&q.heap, e.index)
	}

	return nil
}

// ExtractMin removes and returns the key with the smallest cost.
// The boolean is false when the queue is empty.
func (q *Queue[K]) ExtractMin() (K, float64, bool) {
	if len(q.heap) == 0 {
		var zero K
		return zero, 0, false
	}
	e := heap.Pop(&q.heap).(*entry[K])
	delete(q.index, e.key)

	return e.key, e.cost, true
}

// Peek returns the key with the smallest cost without removing it.
func (q *Queue[K]) Peek() (K, float64, bool) {
	if len(q.heap) == 0 {
		var zero K
		return zero, 0, false
	}
	e := q.heap[0]

	return e.key, e.cost, true
}

// Reset drops every entry and restarts insertion order, keeping capacity.
func (q *Queue[K]) Reset() {
	for i := range q.heap {
		q.heap[i] = nil
	}
	q.heap = q.heap[:0]
	clear(q.index)
	q.seq = 0
}
