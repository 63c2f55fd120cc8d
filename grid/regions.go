package grid

// NoRegion labels cells that are not walkable.
const NoRegion = -1

// Regions labels every walkable cell of a grid with the id of its
// 4-connected walkable region. Ids are dense, starting at 0, assigned in
// row-major order of each region's first cell.
type Regions struct {
	g      *Grid
	labels []int
	count  int
}

// Regions finds all contiguous regions of walkable cells.
// BFS from each unlabelled walkable cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for labels and the queue.
func (g *Grid) Regions() *Regions {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = NoRegion
	}

	r := &Regions{g: g, labels: labels}
	queue := make([]int, 0, 64)
	var buf []Coord
	for i0, c := range g.cells {
		if !c.Walkable || labels[i0] != NoRegion {
			continue
		}
		id := r.count
		r.count++
		labels[i0] = id
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			buf = g.AppendNeighbors(buf[:0], g.Coordinate(queue[qi]))
			for _, n := range buf {
				ni := g.Index(n)
				if g.cells[ni].Walkable && labels[ni] == NoRegion {
					labels[ni] = id
					queue = append(queue, ni)
				}
			}
		}
	}

	return r
}

// Count returns the number of regions.
func (r *Regions) Count() int { return r.count }

// Label returns the region id of c, or NoRegion if c is out of bounds or a wall.
func (r *Regions) Label(c Coord) int {
	if !r.g.InBounds(c) {
		return NoRegion
	}

	return r.labels[r.g.Index(c)]
}

// Connected reports whether a and b are walkable and lie in the same region.
func (r *Regions) Connected(a, b Coord) bool {
	la := r.Label(a)

	return la != NoRegion && la == r.Label(b)
}

// Grid returns the grid the labels were computed for.
func (r *Regions) Grid() *Grid { return r.g }
