package tdfile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/domset/decomp"
	"github.com/katalvlaran/domset/tdbuilder"
)

// bagTypeNames maps the file format's lowercase type strings to
// decomp.BagType, the inverse of decomp.BagType.String()'s capitalized
// form (the file format favors short, grep-friendly tokens).
var bagTypeNames = map[string]decomp.BagType{
	"leaf":      decomp.Leaf,
	"introduce": decomp.Introduce,
	"forget":    decomp.Forget,
	"join":      decomp.Join,
}

// Load reads and decodes the decomposition file at path.
func Load(path string) ([]tdbuilder.BagSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	specs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

// Decode reads a decomposition document from r and converts it into the
// []tdbuilder.BagSpec shape tdbuilder.Build consumes. Decode performs only
// schema-level validation (well-formed YAML, known bag type strings); the
// full set of structural invariants (spec.md §6) is left to
// tdbuilder.Build so the caller sees one coherent validation pass.
func Decode(r io.Reader) ([]tdbuilder.BagSpec, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(doc.Bags) == 0 {
		return nil, ErrEmptyDocument
	}

	specs := make([]tdbuilder.BagSpec, len(doc.Bags))
	for i, b := range doc.Bags {
		bagType, ok := bagTypeNames[b.Type]
		if !ok {
			return nil, fmt.Errorf("%w: bag %d: unknown type %q", ErrDecode, b.ID, b.Type)
		}

		var edges []decomp.Edge
		if len(b.Edges) > 0 {
			edges = make([]decomp.Edge, len(b.Edges))
			for j, e := range b.Edges {
				edges[j] = decomp.Edge{U: e.U, V: e.V}
			}
		}

		specs[i] = tdbuilder.BagSpec{
			ID:       b.ID,
			Type:     bagType,
			Parent:   b.Parent,
			Vertices: b.Vertices,
			Edges:    edges,
		}
	}
	return specs, nil
}
