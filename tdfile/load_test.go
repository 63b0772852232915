package tdfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/solve"
	"github.com/katalvlaran/domset/tdbuilder"
	"github.com/katalvlaran/domset/tdfile"
)

func TestLoad_ReadsFileAndDecodes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "single_edge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(singleEdgeYAML), 0o644))

	specs, err := tdfile.Load(path)
	require.NoError(t, err)
	require.Len(t, specs, 5)

	dec, err := tdbuilder.Build(specs)
	require.NoError(t, err)
	got, err := solve.Solve(dec)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := tdfile.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, tdfile.ErrDecode)
}

func TestLoad_WrapsPathIntoDecodeError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bags: []"), 0o644))

	_, err := tdfile.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, tdfile.ErrEmptyDocument)
	assert.Contains(t, err.Error(), path)
}
