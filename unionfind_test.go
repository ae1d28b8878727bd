package treecut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeUnionFind_FindSelf(t *testing.T) {
	uf := newTreeUnionFind(5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, uf.find(i))
	}
}

func TestTreeUnionFind_UnionMerges(t *testing.T) {
	uf := newTreeUnionFind(6)

	uf.union(0, 1)
	uf.union(2, 3)
	assert.Equal(t, uf.find(0), uf.find(1))
	assert.Equal(t, uf.find(2), uf.find(3))
	assert.NotEqual(t, uf.find(0), uf.find(2))

	uf.union(1, 3)
	assert.Equal(t, uf.find(0), uf.find(3))
	assert.NotEqual(t, uf.find(0), uf.find(4))
}

func TestTreeUnionFind_PathCompression(t *testing.T) {
	uf := newTreeUnionFind(5)

	// Hand-build the chain 4→3→2→1→0 to force a deep find.
	for x := 1; x < 5; x++ {
		uf.parent[x] = x - 1
	}

	assert.Equal(t, 0, uf.find(4))
	// Every traversed node now points directly at the root.
	for x := 1; x < 5; x++ {
		assert.Equal(t, 0, uf.parent[x])
	}
}

func TestTreeUnionFind_UnionIdempotent(t *testing.T) {
	uf := newTreeUnionFind(4)
	uf.union(0, 1)
	before := append([]int(nil), uf.parent...)
	uf.union(0, 1)
	assert.Equal(t, before, uf.parent)
}

func TestTreeUnionFind_Components(t *testing.T) {
	uf := newTreeUnionFind(5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, uf.components())

	uf.union(0, 1) // 1 absorbed
	uf.union(3, 4) // 4 absorbed
	assert.Equal(t, []int{0, 2, 3}, uf.components())
}
