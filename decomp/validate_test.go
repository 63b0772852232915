package decomp_test

import (
	"testing"

	"github.com/katalvlaran/domset/decomp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIntroduce(t *testing.T) {
	parent := bagOf(1, decomp.Introduce, []int{1, 2, 3})
	child := bagOf(2, decomp.Leaf, []int{1, 2})
	introduced, err := decomp.ValidateIntroduce(parent, child)
	require.NoError(t, err)
	assert.Equal(t, 3, introduced)

	badChild := bagOf(3, decomp.Leaf, []int{1})
	_, err = decomp.ValidateIntroduce(parent, badChild)
	assert.ErrorIs(t, err, decomp.ErrChildVertexSetMismatch)
}

func TestValidateForget(t *testing.T) {
	parent := bagOf(1, decomp.Forget, []int{1, 2})
	child := bagOf(2, decomp.Leaf, []int{1, 2, 3})
	forgotten, err := decomp.ValidateForget(parent, child)
	require.NoError(t, err)
	assert.Equal(t, 3, forgotten)

	badChild := bagOf(3, decomp.Leaf, []int{1, 2})
	_, err = decomp.ValidateForget(parent, badChild)
	assert.ErrorIs(t, err, decomp.ErrChildVertexSetMismatch)
}

func TestValidateJoin(t *testing.T) {
	parent := bagOf(1, decomp.Join, []int{1, 2})
	left := bagOf(2, decomp.Leaf, []int{2, 1})
	right := bagOf(3, decomp.Leaf, []int{1, 2})
	assert.NoError(t, decomp.ValidateJoin(parent, left, right))

	badRight := bagOf(4, decomp.Leaf, []int{1, 2, 3})
	assert.ErrorIs(t, decomp.ValidateJoin(parent, left, badRight), decomp.ErrChildVertexSetMismatch)
}

func TestValidateEdges(t *testing.T) {
	b := bagOf(1, decomp.Introduce, []int{1, 2})
	b.Edges = []decomp.Edge{{U: 1, V: 2}}
	assert.NoError(t, decomp.ValidateEdges(b))

	b.Edges = []decomp.Edge{{U: 1, V: 3}}
	assert.ErrorIs(t, decomp.ValidateEdges(b), decomp.ErrEdgeEndpointNotInBag)

	leaf := bagOf(2, decomp.Leaf, nil)
	leaf.Edges = []decomp.Edge{{U: 1, V: 2}}
	assert.ErrorIs(t, decomp.ValidateEdges(leaf), decomp.ErrEdgesOnLeaf)
}

func TestValidateRoot(t *testing.T) {
	root := bagOf(0, decomp.Forget, nil)
	child := bagOf(1, decomp.Leaf, []int{1})
	root.Child1 = child
	assert.NoError(t, decomp.ValidateRoot(root))

	badRoot := bagOf(1, decomp.Forget, nil)
	assert.ErrorIs(t, decomp.ValidateRoot(badRoot), decomp.ErrInvalidRoot)

	noChild := bagOf(0, decomp.Forget, nil)
	assert.ErrorIs(t, decomp.ValidateRoot(noChild), decomp.ErrInvalidRoot)
}
