package scenario

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/mapfile"
	"github.com/katalvlaran/gridpath/route"
)

// hclFile is the top-level structure of a scenario file for decoding.
type hclFile struct {
	Grids  []*hclGrid  `hcl:"grid,block"`
	Graphs []*hclGraph `hcl:"graph,block"`
}

type hclGrid struct {
	Name     string         `hcl:"name,label"`
	CellSize *int           `hcl:"cell_size,optional"`
	Rows     []string       `hcl:"rows,optional"`
	File     string         `hcl:"file,optional"`
	Legend   hcl.Expression `hcl:"legend,optional"`
	Searches []*hclSearch   `hcl:"search,block"`
}

type hclSearch struct {
	Name          string    `hcl:"name,label"`
	Start         []float64 `hcl:"start,optional"`
	Goal          []float64 `hcl:"goal,optional"`
	Pixels        bool      `hcl:"pixels,optional"`
	Heuristic     string    `hcl:"heuristic,optional"`
	ExcludeStart  bool      `hcl:"exclude_start,optional"`
	MaxExpansions int       `hcl:"max_expansions,optional"`
}

type hclGraph struct {
	Name        string      `hcl:"name,label"`
	Matrix      [][]float64 `hcl:"matrix"`
	Source      int         `hcl:"source,optional"`
	Selector    string      `hcl:"selector,optional"`
	Targets     []int       `hcl:"targets,optional"`
	MaxDistance *float64    `hcl:"max_distance,optional"`
}

// symbolType is the long form of a legend entry.
var symbolType = cty.ObjectWithOptionalAttrs(map[string]cty.Type{
	"wall":   cty.Bool,
	"weight": cty.Number,
}, []string{"wall", "weight"})

// evalContext exposes the names usable inside scenario expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"wall": cty.StringVal("wall"),
		},
	}
}

// Load reads and validates the scenario file at path. Map files referenced
// by grid blocks are resolved relative to the scenario's directory.
func Load(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(ctx, src, path)
}

// Parse decodes scenario source. filename is used in diagnostics and as
// the base for relative map paths.
func Parse(ctx context.Context, src []byte, filename string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", filename, diags)
	}

	var parsed hclFile
	evalCtx := evalContext()
	diags = gohcl.DecodeBody(file.Body, evalCtx, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", filename, diags)
	}
	if len(parsed.Grids) == 0 && len(parsed.Graphs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyScenario, filename)
	}

	s := &Scenario{Path: filename}
	dir := filepath.Dir(filename)
	seen := map[string]bool{}
	for _, hg := range parsed.Grids {
		if seen["grid."+hg.Name] {
			return nil, invalid("grid %q declared twice", hg.Name)
		}
		seen["grid."+hg.Name] = true

		g, err := decodeGrid(ctx, hg, dir, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		s.Grids = append(s.Grids, g)
	}
	for _, hg := range parsed.Graphs {
		if seen["graph."+hg.Name] {
			return nil, invalid("graph %q declared twice", hg.Name)
		}
		seen["graph."+hg.Name] = true

		g, err := decodeGraph(hg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		s.Graphs = append(s.Graphs, g)
	}

	logger.Debug("Scenario decoded.", "path", filename, "grids", len(s.Grids), "graphs", len(s.Graphs))

	return s, nil
}

// invalid builds an ErrInvalidScenario error.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidScenario}, args...)...)
}

// decodeGrid resolves the map of a grid block and validates its searches.
func decodeGrid(ctx context.Context, hg *hclGrid, dir string, evalCtx *hcl.EvalContext) (*Grid, error) {
	m, err := loadMap(ctx, hg, dir, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("grid %q: %w", hg.Name, err)
	}
	if hg.CellSize != nil {
		if *hg.CellSize <= 0 {
			return nil, invalid("grid %q: cell_size %d must be positive", hg.Name, *hg.CellSize)
		}
		m.CellSize = *hg.CellSize
	}
	m.Name = hg.Name

	g := &Grid{Name: hg.Name, Map: m}
	names := map[string]bool{}
	for _, hs := range hg.Searches {
		if names[hs.Name] {
			return nil, invalid("grid %q: search %q declared twice", hg.Name, hs.Name)
		}
		names[hs.Name] = true

		s, err := decodeSearch(hs, m)
		if err != nil {
			return nil, fmt.Errorf("grid %q search %q: %w", hg.Name, hs.Name, err)
		}
		g.Searches = append(g.Searches, s)
	}

	return g, nil
}

// loadMap builds the map from inline rows or from a referenced file.
// A legend only applies to inline rows.
func loadMap(ctx context.Context, hg *hclGrid, dir string, evalCtx *hcl.EvalContext) (*mapfile.Map, error) {
	val, diags := hg.Legend.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}

	switch {
	case hg.File != "" && len(hg.Rows) > 0:
		return nil, invalid("set either rows or file, not both")
	case hg.File != "":
		if !val.IsNull() {
			return nil, invalid("legend applies to inline rows only")
		}
		path := hg.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		return mapfile.Load(ctx, path)
	case len(hg.Rows) == 0:
		return nil, invalid("rows or file is required")
	}

	symbols, err := decodeLegend(val)
	if err != nil {
		return nil, err
	}
	legend, err := mapfile.DefaultLegend().With(symbols)
	if err != nil {
		return nil, err
	}

	return mapfile.ParseRows(hg.Rows, legend)
}

// decodeLegend converts the legend value into symbols. Each entry is a
// number (weight), the string "wall", or an object {wall, weight}.
func decodeLegend(val cty.Value) (map[string]mapfile.Symbol, error) {
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsMapType() && !ty.IsObjectType() {
		return nil, invalid("legend must be a map, got %s", ty.FriendlyName())
	}
	if !val.IsWhollyKnown() {
		return nil, invalid("legend must be known at load time")
	}

	out := map[string]mapfile.Symbol{}
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		sym, err := decodeSymbol(v)
		if err != nil {
			return nil, invalid("legend %q: %v", k.AsString(), err)
		}
		out[k.AsString()] = sym
	}

	return out, nil
}

// decodeSymbol converts one legend entry.
func decodeSymbol(v cty.Value) (mapfile.Symbol, error) {
	var sym mapfile.Symbol
	switch {
	case v.IsNull():
		return sym, fmt.Errorf("entry is null")
	case v.Type() == cty.Number:
		err := gocty.FromCtyValue(v, &sym.Weight)
		return sym, err
	case v.Type() == cty.String:
		if v.AsString() != "wall" {
			return sym, fmt.Errorf("unknown value %q, want a weight or wall", v.AsString())
		}
		sym.Wall = true
		return sym, nil
	case v.Type().IsObjectType() || v.Type().IsMapType():
		// conversion drops unknown attributes silently, so reject them first
		for it := v.ElementIterator(); it.Next(); {
			k, _ := it.Element()
			if !symbolType.HasAttribute(k.AsString()) {
				return sym, fmt.Errorf("unsupported attribute %q", k.AsString())
			}
		}
		obj, err := convert.Convert(v, symbolType)
		if err != nil {
			return sym, err
		}
		if w := obj.GetAttr("wall"); !w.IsNull() {
			sym.Wall = w.True()
		}
		if n := obj.GetAttr("weight"); !n.IsNull() {
			if err := gocty.FromCtyValue(n, &sym.Weight); err != nil {
				return sym, err
			}
		}
		return sym, nil
	default:
		return sym, fmt.Errorf("unsupported type %s", v.Type().FriendlyName())
	}
}

// decodeSearch resolves endpoints and checks the options of a search block.
func decodeSearch(hs *hclSearch, m *mapfile.Map) (*Search, error) {
	s := &Search{
		Name:          hs.Name,
		Pixels:        hs.Pixels,
		Heuristic:     hs.Heuristic,
		ExcludeStart:  hs.ExcludeStart,
		MaxExpansions: hs.MaxExpansions,
	}
	if _, err := astar.ParseHeuristic(s.Heuristic, 1); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if s.Heuristic == "" {
		s.Heuristic = astar.HeuristicAuto
	}
	if s.MaxExpansions < 0 {
		return nil, invalid("max_expansions %d must be non-negative", s.MaxExpansions)
	}

	if s.Pixels {
		var err error
		if s.PixelStart, err = point(hs.Start, "start"); err != nil {
			return nil, err
		}
		if s.PixelGoal, err = point(hs.Goal, "goal"); err != nil {
			return nil, err
		}
		return s, nil
	}

	var err error
	if s.Start, err = coord(hs.Start, m.Start, "start"); err != nil {
		return nil, err
	}
	if s.Goal, err = coord(hs.Goal, m.Goal, "goal"); err != nil {
		return nil, err
	}

	return s, nil
}

// point reads an [x, y] pixel pair.
func point(v []float64, what string) (route.Point, error) {
	if len(v) != 2 {
		return route.Point{}, invalid("%s must be [x, y], got %d values", what, len(v))
	}

	return route.Point{X: v[0], Y: v[1]}, nil
}

// coord reads an [x, y] cell pair, falling back to a map marker.
func coord(v []float64, marker *grid.Coord, what string) (grid.Coord, error) {
	if v == nil {
		if marker == nil {
			return grid.Coord{}, invalid("%s is required when the map has no marker", what)
		}
		return *marker, nil
	}
	if len(v) != 2 {
		return grid.Coord{}, invalid("%s must be [x, y], got %d values", what, len(v))
	}
	for _, f := range v {
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return grid.Coord{}, invalid("%s %v must hold whole numbers", what, v)
		}
	}

	return grid.Coord{X: int(v[0]), Y: int(v[1])}, nil
}

// decodeGraph checks the options of a graph block. The matrix itself is
// validated when the graph runs.
func decodeGraph(hg *hclGraph) (*Graph, error) {
	g := &Graph{
		Name:        hg.Name,
		Matrix:      hg.Matrix,
		Source:      hg.Source,
		Selector:    hg.Selector,
		Targets:     hg.Targets,
		MaxDistance: hg.MaxDistance,
	}
	if _, err := dijkstra.ParseSelector(g.Selector); err != nil {
		return nil, fmt.Errorf("%w: graph %q: %w", ErrInvalidScenario, hg.Name, err)
	}
	if g.Selector == "" {
		g.Selector = dijkstra.SelectorLinear
	}
	if g.MaxDistance != nil && !(*g.MaxDistance >= 0) {
		return nil, invalid("graph %q: max_distance %v must be non-negative", hg.Name, *g.MaxDistance)
	}

	return g, nil
}
