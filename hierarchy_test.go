package treecut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHierarchy_Valid(t *testing.T) {
	require.NoError(t, ValidateHierarchy(buildSixPointHierarchy(), 6))
}

func TestValidateHierarchy_Degenerate(t *testing.T) {
	assert.NoError(t, ValidateHierarchy(nil, 0))
	assert.NoError(t, ValidateHierarchy(nil, 1))
	assert.ErrorIs(t, ValidateHierarchy(buildSixPointHierarchy(), 1), ErrInvalidHierarchy)
}

func TestValidateHierarchy_RowCountMismatch(t *testing.T) {
	err := ValidateHierarchy(buildSixPointHierarchy(), 7)
	assert.ErrorIs(t, err, ErrInvalidHierarchy)
}

func TestValidateHierarchy_ChildOutOfRange(t *testing.T) {
	h := buildSixPointHierarchy()
	h[0].Left = -1
	assert.ErrorIs(t, ValidateHierarchy(h, 6), ErrInvalidHierarchy)

	h = buildSixPointHierarchy()
	// Row 0 may only reference points 0..5, not the node it creates.
	h[0].Right = 6
	assert.ErrorIs(t, ValidateHierarchy(h, 6), ErrInvalidHierarchy)
}

func TestValidateHierarchy_ChildMergedTwice(t *testing.T) {
	h := buildSixPointHierarchy()
	h[1].Left = 0 // point 0 already merged by row 0
	h[1].Size = 2
	assert.ErrorIs(t, ValidateHierarchy(h, 6), ErrInvalidHierarchy)
}

func TestValidateHierarchy_SelfMerge(t *testing.T) {
	h := []HierarchyEdge{{Left: 0, Right: 0, Distance: 1.0, Size: 2}}
	assert.ErrorIs(t, ValidateHierarchy(h, 2), ErrInvalidHierarchy)
}

func TestValidateHierarchy_NegativeDistance(t *testing.T) {
	h := buildSixPointHierarchy()
	h[2].Distance = -0.5
	assert.ErrorIs(t, ValidateHierarchy(h, 6), ErrInvalidHierarchy)
}

func TestValidateHierarchy_SizeNotAdditive(t *testing.T) {
	h := buildSixPointHierarchy()
	h[3].Size = 5 // children total 4
	assert.ErrorIs(t, ValidateHierarchy(h, 6), ErrInvalidHierarchy)
}
