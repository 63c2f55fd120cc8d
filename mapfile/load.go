package mapfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gridpath/internal/ctxlog"
)

// Load reads a map file. Files ending in .yaml or .yml are decoded as YAML
// documents, anything else as a text map with the default legend. A map
// without a name is named after the file.
func Load(ctx context.Context, path string) (*Map, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading map file.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: open %s: %w", path, err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	var m *Map
	switch ext {
	case ".yaml", ".yml":
		m, err = DecodeYAML(f)
	default:
		m, err = ParseText(f, DefaultLegend())
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	logger.Debug("Map file loaded.",
		"name", m.Name,
		"width", m.Grid.Width(),
		"height", m.Grid.Height(),
		"cell_size", m.CellSize,
	)

	return m, nil
}
