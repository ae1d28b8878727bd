package treecut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyHierarchy_ThresholdZeroIsNoop(t *testing.T) {
	tree := sixPointCondensed(t)
	assert.Same(t, tree, SimplifyHierarchy(tree, 0))
}

func TestSimplifyHierarchy_RemovesLowPersistenceLeaves(t *testing.T) {
	tree := sixPointCondensed(t)

	// Persistence (birth minus parent's birth): clusters 9 and 10 have
	// 1/3 - 0.2 = 2/15 < 0.15; clusters 7 and 8 have 0.2. Removing 9 and 10
	// exposes 8 as a leaf, which survives at 0.2.
	got := SimplifyHierarchy(tree, 0.15)
	require.NotNil(t, got)

	// 9's and 10's points re-parent onto 8; ids stay dense (6, 7, 8).
	require.Len(t, got.Edges, 8)
	assert.Equal(t, 8, got.MaxCluster())
	requireEdge(t, got, 6, 7, 0.2, 2)
	requireEdge(t, got, 6, 8, 0.2, 4)
	requireEdge(t, got, 7, 4, 0.5, 1)
	requireEdge(t, got, 7, 5, 0.5, 1)
	requireEdge(t, got, 8, 0, 1.0, 1)
	requireEdge(t, got, 8, 1, 1.0, 1)
	requireEdge(t, got, 8, 2, 1.0/1.5, 1)
	requireEdge(t, got, 8, 3, 1.0/1.5, 1)
}

func TestSimplifyHierarchy_HighThresholdCollapsesToRoot(t *testing.T) {
	tree := sixPointCondensed(t)

	// Every cluster's persistence is below 1.0; peeling repeats until only
	// the root remains with all points attached.
	got := SimplifyHierarchy(tree, 1.0)
	require.NotNil(t, got)
	require.Len(t, got.Edges, 6)
	assert.Empty(t, got.ClusterEdges())
	for _, e := range got.Edges {
		assert.Equal(t, 6, e.Parent)
		assert.Equal(t, 1, e.Size)
	}
}

func TestSimplifyHierarchy_InputUnchanged(t *testing.T) {
	tree := sixPointCondensed(t)
	before := append([]CondensedEdge(nil), tree.Edges...)
	SimplifyHierarchy(tree, 0.15)
	assert.Equal(t, before, tree.Edges)
}

func TestSimplifyHierarchy_NoClusterTreeIsNoop(t *testing.T) {
	tree := CondenseTree(buildSixPointHierarchy(), 7)
	assert.Same(t, tree, SimplifyHierarchy(tree, 0.5))
}
