package mapfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the YAML shape of a map.
//
//	name: meadow
//	cell_size: 32
//	legend:
//	  "~": {weight: 3}
//	  "T": {wall: true}
//	rows:
//	  - "S..~"
//	  - ".#TG"
type document struct {
	Name     string            `yaml:"name"`
	CellSize int               `yaml:"cell_size"`
	Legend   map[string]Symbol `yaml:"legend"`
	Rows     []string          `yaml:"rows"`
}

// DecodeYAML reads one YAML map document from r. Unknown fields are
// rejected. Legend entries extend DefaultLegend.
func DecodeYAML(r io.Reader) (*Map, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if doc.CellSize < 0 {
		return nil, fmt.Errorf("%w: cell_size %d must be positive", ErrBadDocument, doc.CellSize)
	}

	legend, err := DefaultLegend().With(doc.Legend)
	if err != nil {
		return nil, err
	}
	m, err := ParseRows(doc.Rows, legend)
	if err != nil {
		return nil, err
	}
	m.Name = doc.Name
	if doc.CellSize > 0 {
		m.CellSize = doc.CellSize
	}

	return m, nil
}
