package scenario

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteText prints a human-readable summary of r: every search with its
// rendered route, then every graph's distance table.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	for _, s := range r.Searches {
		fmt.Fprintf(&sb, "search %s/%s: ", s.Grid.Name, s.Search.Name)
		switch {
		case s.Err != nil:
			fmt.Fprintf(&sb, "error: %v\n", s.Err)
		case !s.Result.Found:
			fmt.Fprintf(&sb, "no path (expanded %d)\n", s.Result.Expanded)
		default:
			fmt.Fprintf(&sb, "cost %g, %d cells, expanded %d\n",
				s.Result.Cost, len(s.Result.Path), s.Result.Expanded)
			sb.WriteString(s.Grid.Map.Format(s.Result.Path))
		}
	}

	for _, g := range r.Graphs {
		fmt.Fprintf(&sb, "graph %s: ", g.Graph.Name)
		if g.Err != nil {
			fmt.Fprintf(&sb, "error: %v\n", g.Err)
			continue
		}
		fmt.Fprintf(&sb, "source %d\n", g.Tree.Source)
		for v, d := range g.Tree.Dist {
			fmt.Fprintf(&sb, "  %d\t%s\n", v, distance(d))
		}
		for _, t := range g.Graph.Targets {
			if p, ok := g.Tree.PathTo(t); ok {
				fmt.Fprintf(&sb, "  path to %d: %v\n", t, p)
			} else {
				fmt.Fprintf(&sb, "  path to %d: unreachable\n", t)
			}
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// distance formats a distance, printing "inf" for unreachable vertices.
func distance(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}

	return fmt.Sprintf("%g", d)
}
