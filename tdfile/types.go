package tdfile

// document is the root of a decomposition file (spec.md §6 / SPEC_FULL.md
// §6): a flat list of bags, order-independent.
type document struct {
	Bags []bagDoc `yaml:"bags"`
}

// bagDoc is the on-disk shape of one tdbuilder.BagSpec. Parent is a
// pointer so YAML's `null` (the root's parent) decodes distinctly from
// the zero bag id.
type bagDoc struct {
	ID       int      `yaml:"id"`
	Type     string   `yaml:"type"`
	Parent   *int     `yaml:"parent"`
	Vertices []int    `yaml:"vertices"`
	Edges    []edgeDoc `yaml:"edges"`
}

// edgeDoc is one introduced edge, written as a {u, v} mapping rather than
// a bare two-element list for readability in hand-written fixtures.
type edgeDoc struct {
	U int `yaml:"u"`
	V int `yaml:"v"`
}
