package treecut

// treeUnionFind is a disjoint-set structure over condensed-tree node ids,
// used by the labeler to collapse unselected clusters into their nearest
// selected ancestor. Union is by rank; find compresses every traversed node
// to point directly at the root. The structure is built once per labelling
// pass and discarded.
type treeUnionFind struct {
	parent []int
	rank   []int
	// isComponent[i] reports whether i is still the root of an unmerged set.
	isComponent []bool
}

func newTreeUnionFind(size int) *treeUnionFind {
	parent := make([]int, size)
	isComponent := make([]bool, size)
	for i := range parent {
		parent[i] = i
		isComponent[i] = true
	}
	return &treeUnionFind{
		parent:      parent,
		rank:        make([]int, size),
		isComponent: isComponent,
	}
}

// find returns the root of the set containing x. Two passes: walk to the
// root, then point every traversed node at it.
func (uf *treeUnionFind) find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// union merges the sets containing x and y by rank.
func (uf *treeUnionFind) union(x, y int) {
	xRoot := uf.find(x)
	yRoot := uf.find(y)
	if xRoot == yRoot {
		return
	}

	if uf.rank[xRoot] < uf.rank[yRoot] {
		xRoot, yRoot = yRoot, xRoot
	} else if uf.rank[xRoot] == uf.rank[yRoot] {
		uf.rank[xRoot]++
	}
	uf.parent[yRoot] = xRoot
	uf.isComponent[yRoot] = false
}

// components returns the ids that are still roots of their own set, in
// ascending order.
func (uf *treeUnionFind) components() []int {
	var out []int
	for i, ok := range uf.isComponent {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
