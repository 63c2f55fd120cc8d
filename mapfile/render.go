package mapfile

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Render writes g as text with path drawn over it: the first cell of path
// as 'S', the last as 'G' and the others as '*'. Remaining cells use the
// default symbols; walkable weights without a digit are drawn as '~'.
// An empty path draws the bare grid.
func Render(w io.Writer, g *grid.Grid, path []grid.Coord) error {
	return render(w, g, path, func(c grid.Coord) rune { return symbolFor(g, c) })
}

// Format is Render into a string.
func Format(g *grid.Grid, path []grid.Coord) string {
	var sb strings.Builder
	_ = Render(&sb, g, path)

	return sb.String()
}

// Render is like the package-level Render but draws cells off the path
// with the symbols the map was written in, custom legend entries
// included. 'S' and 'G' markers off the path are drawn as plain cells.
func (m *Map) Render(w io.Writer, path []grid.Coord) error {
	return render(w, m.Grid, path, m.symbolAt)
}

// Format is (*Map).Render into a string.
func (m *Map) Format(path []grid.Coord) string {
	var sb strings.Builder
	_ = m.Render(&sb, path)

	return sb.String()
}

// symbolAt returns the parsed symbol at c, or the default one for markers
// and maps that were not parsed from rows.
func (m *Map) symbolAt(c grid.Coord) rune {
	if c.Y < len(m.symbols) && c.X < len(m.symbols[c.Y]) {
		if r := m.symbols[c.Y][c.X]; r != SymbolStart && r != SymbolGoal {
			return r
		}
	}

	return symbolFor(m.Grid, c)
}

// render writes the rows drawn by symbol with path on top.
func render(w io.Writer, g *grid.Grid, path []grid.Coord, symbol func(grid.Coord) rune) error {
	var start, goal *grid.Coord
	if len(path) > 0 {
		start, goal = &path[0], &path[len(path)-1]
	}

	bw := bufio.NewWriter(w)
	for _, row := range rows(g, path, start, goal, symbol) {
		if _, err := bw.WriteString(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// rows draws g line by line.
func rows(g *grid.Grid, path []grid.Coord, start, goal *grid.Coord, symbol func(grid.Coord) rune) []string {
	onPath := make(map[grid.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	out := make([]string, g.Height())
	line := make([]rune, g.Width())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			switch {
			case start != nil && c == *start:
				line[x] = SymbolStart
			case goal != nil && c == *goal:
				line[x] = SymbolGoal
			case onPath[c]:
				line[x] = SymbolPath
			default:
				line[x] = symbol(c)
			}
		}
		out[y] = string(line)
	}

	return out
}

// symbolFor picks the default symbol of a cell.
func symbolFor(g *grid.Grid, c grid.Coord) rune {
	if !g.IsWalkable(c) {
		return SymbolWall
	}
	w := g.Weight(c)
	if w == 1 {
		return SymbolOpen
	}
	if w >= 2 && w <= 9 && w == math.Trunc(w) {
		return rune('0' + int(w))
	}

	return SymbolOther
}
