package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Selector names understood by ParseSelector.
const (
	SelectorLinear = "linear"
	SelectorHeap   = "heap"
)

// ParseSelector returns the constructor of the selector called name, ready
// for WithSelector. The empty name selects Linear.
func ParseSelector(name string) (func() Selector, error) {
	switch name {
	case "", SelectorLinear:
		return Linear, nil
	case SelectorHeap:
		return Heap, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSelector, name)
	}
}

// Selector chooses, once per round, the unvisited vertex with the smallest
// finite tentative distance. Implementations keep whatever bookkeeping they
// need between rounds; a Selector instance serves a single run, and
// WithSelector takes a constructor so every run gets its own.
type Selector interface {
	// Reset prepares the selector for a graph of n vertices.
	Reset(n int)

	// Update is called whenever dist[v] decreases (and once for the source).
	Update(v int, d float64)

	// Next returns the unvisited vertex with the smallest finite distance,
	// or false when every remaining vertex is unreachable.
	Next(dist []float64, visited []bool) (int, bool)
}

// Linear returns the O(V) scan selector. Total cost is O(V²), which is the
// right trade-off for small dense matrices; prefer Heap for large sparse ones.
func Linear() Selector { return &linearSelector{} }

// linearSelector scans every vertex; ties go to the lowest index.
type linearSelector struct{}

// Reset is a no-op: the scan is stateless.
func (*linearSelector) Reset(int) {}

// Update is a no-op: the scan reads dist directly.
func (*linearSelector) Update(int, float64) {}

// Next scans for the smallest finite unvisited distance.
func (*linearSelector) Next(dist []float64, visited []bool) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for v, d := range dist {
		if !visited[v] && d < bestDist {
			best, bestDist = v, d
		}
	}

	return best, best >= 0
}

// Heap returns a binary-heap selector with lazy decrease-key: each Update
// pushes a new entry and stale ones are skipped on extraction.
// Cost is O(log V) per Update and amortised O(log V) per Next.
func Heap() Selector { return &heapSelector{} }

// heapSelector is a min-heap of (vertex, distance) pairs.
type heapSelector struct {
	pq nodePQ
}

// Reset empties the heap, keeping capacity.
func (s *heapSelector) Reset(n int) {
	if cap(s.pq) < n {
		s.pq = make(nodePQ, 0, n)
	}
	s.pq = s.pq[:0]
}

// Update pushes v with its new distance.
func (s *heapSelector) Update(v int, d float64) {
	heap.Push(&s.pq, nodeItem{id: v, dist: d})
}

// Next pops until it finds an entry that is neither visited nor stale.
func (s *heapSelector) Next(dist []float64, visited []bool) (int, bool) {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(nodeItem)
		if visited[item.id] || item.dist > dist[item.id] {
			continue
		}

		return item.id, true
	}

	return -1, false
}

// nodeItem represents a vertex and its distance at push time.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // distance from source when pushed
}

// nodePQ is a min-heap of nodeItem ordered by dist, then by id.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller dist, then lower vertex index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
