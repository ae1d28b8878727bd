package treecut

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// SelectClustersEOM performs excess-of-mass cluster selection: a single
// bottom-up sweep over cluster ids in descending order (a valid reverse
// topological order, since ids increase with creation order). A cluster is
// rejected when its immediate children's combined stability reaches its own,
// when it exceeds maxClusterSize, or when its birth epsilon exceeds
// epsilonMax; its stability is then overwritten with the children's sum so
// ancestors compare against the cumulative mass of surviving descendants.
// A cluster that wins absorbs (deselects) its whole descendant subtree, so
// the returned set is an antichain.
//
// The root is a candidate only when allowSingleCluster is set.
// maxClusterSize <= 0 means unlimited. Returns the selected set and the
// propagated stability map; the input map is not modified.
func SelectClustersEOM(t *CondensedTree, stability map[int]float64,
	allowSingleCluster bool, maxClusterSize int, epsilonMax float64,
) (map[int]bool, map[int]float64) {
	root := t.Root()
	span := t.MaxCluster() - root + 1
	clusterTree := t.ClusterEdges()
	childrenOf := t.clusterChildren()

	// Working copies in flat arrays indexed by id-root.
	stab := make([]float64, span)
	for id, s := range stability {
		if id >= root && id-root < span {
			stab[id-root] = s
		}
	}

	sizes := make([]int, span)
	birthEps := make([]float64, span)
	for _, e := range clusterTree {
		sizes[e.Child-root] = e.Size
		birthEps[e.Child-root] = 1.0 / e.Lambda
	}
	if allowSingleCluster {
		// The root has no creating edge; its size is the sum of its cluster
		// children and its epsilon the largest 1/lambda anywhere in the tree.
		for _, e := range clusterTree {
			if e.Parent == root {
				sizes[0] += e.Size
			}
		}
		for _, e := range t.Edges {
			if e.Lambda > 0 && 1.0/e.Lambda > birthEps[0] {
				birthEps[0] = 1.0 / e.Lambda
			}
		}
	}

	if maxClusterSize <= 0 {
		maxClusterSize = t.NumPoints + 1 // never triggers
	}

	isCluster := make([]bool, span)
	for i := range isCluster {
		isCluster[i] = true
	}
	if !allowSingleCluster {
		isCluster[0] = false
	}

	lowest := root + 1
	if allowSingleCluster {
		lowest = root
	}
	for node := t.MaxCluster(); node >= lowest; node-- {
		children := childrenOf[node]
		if len(children) == 0 {
			continue
		}

		childStabs := make([]float64, len(children))
		for i, child := range children {
			childStabs[i] = stab[child-root]
		}
		subtreeStability := floats.Sum(childStabs)

		childrenWin := subtreeStability >= stab[node-root] ||
			sizes[node-root] > maxClusterSize ||
			birthEps[node-root] > epsilonMax

		if childrenWin {
			isCluster[node-root] = false
			stab[node-root] = subtreeStability
			continue
		}

		// Parent wins: deselect its whole subtree.
		for _, d := range bfsClusterDescendants(childrenOf, node) {
			if d != node {
				isCluster[d-root] = false
			}
		}
	}

	selected := make(map[int]bool)
	updated := make(map[int]float64, span)
	for i := 0; i < span; i++ {
		if isCluster[i] {
			selected[root+i] = true
		}
		updated[root+i] = stab[i]
	}
	return selected, updated
}

// SelectClustersLeaf selects every leaf of the cluster tree (clusters with no
// surviving cluster children). When the cluster tree is empty, condensation
// degenerated to a single cluster and the root is selected instead. A
// positive epsilon applies EpsilonSearch to the leaves.
func SelectClustersLeaf(t *CondensedTree, epsilon float64, allowSingleCluster bool) map[int]bool {
	leaves := clusterTreeLeaves(t.ClusterEdges())
	if len(leaves) == 0 {
		return map[int]bool{t.Root(): true}
	}
	if epsilon > 0 {
		return EpsilonSearch(t, leaves, epsilon, allowSingleCluster)
	}
	return leaves
}

// EpsilonSearch merges selected clusters that were created below a minimum
// distance threshold into a suitable ancestor. Every candidate whose creation
// epsilon (1/lambda) is at least the threshold is kept; any other candidate
// is replaced by the nearest ancestor created at or above the threshold, and
// that ancestor's whole subtree is excluded from further consideration.
// Candidates are visited in ascending id order so the result never depends on
// map iteration order.
func EpsilonSearch(t *CondensedTree, candidates map[int]bool,
	epsilon float64, allowSingleCluster bool,
) map[int]bool {
	root := t.Root()
	span := t.MaxCluster() - root + 1
	childrenOf := t.clusterChildren()

	// Upward links over cluster edges, dense-indexed by id-root. A -1 parent
	// marks the root (or a cluster with no creating edge).
	parentOf := make([]int, span)
	for i := range parentOf {
		parentOf[i] = -1
	}
	birthLambda := make([]float64, span)
	for _, e := range t.ClusterEdges() {
		parentOf[e.Child-root] = e.Parent
		birthLambda[e.Child-root] = e.Lambda
	}

	ids := make([]int, 0, len(candidates))
	for c := range candidates {
		ids = append(ids, c)
	}
	sort.Ints(ids)

	processed := make([]bool, span)
	selected := make(map[int]bool)

	for _, leaf := range ids {
		if parentOf[leaf-root] == -1 {
			// The root: nothing above to merge into.
			selected[leaf] = true
			continue
		}

		if eps := 1.0 / birthLambda[leaf-root]; eps >= epsilon {
			selected[leaf] = true
			continue
		}

		if processed[leaf-root] {
			continue
		}

		target := traverseUpwards(parentOf, birthLambda, root, epsilon, leaf, allowSingleCluster)
		selected[target] = true
		for _, node := range bfsClusterDescendants(childrenOf, target) {
			if node != target {
				processed[node-root] = true
			}
		}
	}

	return selected
}

// traverseUpwards walks ancestor links from leaf until it finds a cluster
// created at or above the epsilon threshold. Reaching the root returns the
// root only under allowSingleCluster; otherwise the last cluster below it is
// kept. Iterative: the walk is bounded by tree depth but the stack is not.
func traverseUpwards(parentOf []int, birthLambda []float64,
	root int, epsilon float64, leaf int, allowSingleCluster bool,
) int {
	node := leaf
	for {
		parent := parentOf[node-root]
		if parent == root {
			if allowSingleCluster {
				return parent
			}
			return node
		}
		if 1.0/birthLambda[parent-root] >= epsilon {
			return parent
		}
		node = parent
	}
}

// clusterTreeLeaves returns the clusters that never appear as a parent in the
// cluster tree.
func clusterTreeLeaves(clusterTree []CondensedEdge) map[int]bool {
	if len(clusterTree) == 0 {
		return nil
	}

	isParent := make(map[int]bool)
	for _, e := range clusterTree {
		isParent[e.Parent] = true
	}

	leaves := make(map[int]bool)
	for _, e := range clusterTree {
		if !isParent[e.Child] {
			leaves[e.Child] = true
		}
	}
	return leaves
}
