package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// ParseRows builds a Map from rows of legend symbols. Row y becomes grid
// row y; the n-th character of a row becomes column n.
func ParseRows(rows []string, legend Legend) (*Map, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	if legend == nil {
		legend = DefaultLegend()
	}

	m := &Map{CellSize: DefaultCellSize, symbols: make([][]rune, len(rows))}
	cells := make([][]grid.Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]grid.Cell, 0, len(row))
		m.symbols[y] = []rune(row)
		x := 0
		for _, r := range row {
			c, ok := legend[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, r, x, y)
			}
			if err := m.mark(r, grid.Coord{X: x, Y: y}); err != nil {
				return nil, err
			}
			cells[y] = append(cells[y], c)
			x++
		}
	}

	g, err := grid.New(cells)
	if err != nil {
		return nil, err
	}
	m.Grid = g

	return m, nil
}

// mark records the position of a start or goal marker.
func (m *Map) mark(r rune, at grid.Coord) error {
	var slot **grid.Coord
	switch r {
	case SymbolStart:
		slot = &m.Start
	case SymbolGoal:
		slot = &m.Goal
	default:
		return nil
	}
	if *slot != nil {
		return fmt.Errorf("%w: %q at %s and %s", ErrDuplicateMarker, r, **slot, at)
	}
	c := at
	*slot = &c

	return nil
}

// ParseText reads a text map from r. Lines starting with ';' and blank
// lines are skipped; trailing carriage returns are dropped.
func ParseText(r io.Reader, legend Legend) (*Map, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mapfile: read text map: %w", err)
	}

	return ParseRows(rows, legend)
}
