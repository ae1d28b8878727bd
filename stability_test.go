package treecut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStability_SixPoint(t *testing.T) {
	tree := sixPointCondensed(t)
	stab := ComputeStability(tree)

	// births: 7→0.2, 8→0.2, 9→1/3, 10→1/3, root 6→0.
	//   stab[6]  = (0.2-0)*2 + (0.2-0)*4           = 1.2
	//   stab[7]  = (0.5-0.2)*1 * 2 points          = 0.6
	//   stab[8]  = (1/3-0.2)*2 * 2 cluster edges   = 8/15
	//   stab[9]  = (1.0-1/3)*1 * 2 points          = 4/3
	//   stab[10] = (2/3-1/3)*1 * 2 points          = 2/3
	require.Len(t, stab, 5)
	assert.InDelta(t, 1.2, stab[6], 1e-10)
	assert.InDelta(t, 0.6, stab[7], 1e-10)
	assert.InDelta(t, 8.0/15.0, stab[8], 1e-10)
	assert.InDelta(t, 4.0/3.0, stab[9], 1e-10)
	assert.InDelta(t, 2.0/3.0, stab[10], 1e-10)
}

func TestComputeStability_NonNegative(t *testing.T) {
	for _, minClusterSize := range []int{2, 3, 4} {
		tree := CondenseTree(buildSixPointHierarchy(), minClusterSize)
		require.NotNil(t, tree)
		for id, s := range ComputeStability(tree) {
			assert.GreaterOrEqual(t, s, 0.0, "cluster %d (minClusterSize=%d)", id, minClusterSize)
		}
	}
}

func TestComputeStability_SingleClusterCollapse(t *testing.T) {
	// minClusterSize above n: only the root remains, born at lambda 0.
	tree := CondenseTree(buildSixPointHierarchy(), 7)
	stab := ComputeStability(tree)

	require.Len(t, stab, 1)
	assert.InDelta(t, 0.2*6, stab[6], 1e-10)
}

func TestComputeStability_NilTree(t *testing.T) {
	assert.Nil(t, ComputeStability(nil))
}
