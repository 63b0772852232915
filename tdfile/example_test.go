package tdfile_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/domset/solve"
	"github.com/katalvlaran/domset/tdbuilder"
	"github.com/katalvlaran/domset/tdfile"
)

// ExampleDecode builds and solves the two-vertex, one-edge decomposition
// straight from a YAML document.
func ExampleDecode() {
	doc := `
bags:
  - id: 0
    type: forget
    parent: null
    vertices: []
  - id: 1
    type: forget
    parent: 0
    vertices: [2]
  - id: 2
    type: introduce
    parent: 1
    vertices: [1, 2]
    edges:
      - {u: 1, v: 2}
  - id: 3
    type: introduce
    parent: 2
    vertices: [1]
  - id: 4
    type: leaf
    parent: 3
    vertices: []
`
	specs, err := tdfile.Decode(strings.NewReader(doc))
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}
	dec, err := tdbuilder.Build(specs)
	if err != nil {
		fmt.Println("build error:", err)
		return
	}
	result, err := solve.Solve(dec)
	if err != nil {
		fmt.Println("solve error:", err)
		return
	}
	fmt.Println(result)
	// Output: 1
}
