package mapfile

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/katalvlaran/gridpath/grid"
)

// With returns a copy of l extended (or overridden) by symbols.
// Each key must be exactly one character; markers 'S' and 'G' cannot be
// redefined.
func (l Legend) With(symbols map[string]Symbol) (Legend, error) {
	out := make(Legend, len(l)+len(symbols))
	for r, c := range l {
		out[r] = c
	}

	// sorted for stable error reporting
	keys := make([]string, 0, len(symbols))
	for k := range symbols {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		r, size := utf8.DecodeRuneInString(k)
		if r == utf8.RuneError || size != len(k) {
			return nil, fmt.Errorf("%w: symbol %q must be a single character", ErrBadLegend, k)
		}
		if r == SymbolStart || r == SymbolGoal {
			return nil, fmt.Errorf("%w: %q is reserved for route markers", ErrBadLegend, k)
		}
		cell, err := symbols[k].cell()
		if err != nil {
			return nil, fmt.Errorf("%w: symbol %q: %v", ErrBadLegend, k, err)
		}
		out[r] = cell
	}

	return out, nil
}

// cell converts a Symbol to a grid.Cell.
func (s Symbol) cell() (grid.Cell, error) {
	if s.Wall {
		return grid.Wall(), nil
	}
	if !(s.Weight > 0) || math.IsInf(s.Weight, 1) {
		return grid.Cell{}, fmt.Errorf("weight %v must be positive and finite", s.Weight)
	}

	return grid.Cell{Walkable: true, Weight: s.Weight}, nil
}
