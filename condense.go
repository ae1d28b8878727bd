package treecut

import "math"

// CondensedEdge is a single entry in a condensed cluster tree. Edges with
// Size > 1 connect a parent cluster to a surviving child cluster; edges with
// Size == 1 attach an original point to the cluster it departs from, at the
// lambda (1/distance) of its departure.
type CondensedEdge struct {
	Parent int
	Child  int
	Lambda float64
	Size   int
}

// CondensedTree is the pruned hierarchy produced by CondenseTree: an arena of
// edges over dense integer ids. Ids below NumPoints are original points; the
// root cluster is NumPoints and further clusters are numbered densely from
// NumPoints+1 in discovery order.
type CondensedTree struct {
	Edges     []CondensedEdge
	NumPoints int

	maxCluster int
}

// newCondensedTree wraps edges, recovering the largest cluster id.
func newCondensedTree(edges []CondensedEdge, numPoints int) *CondensedTree {
	maxCluster := numPoints
	for _, e := range edges {
		if e.Parent > maxCluster {
			maxCluster = e.Parent
		}
		if e.Size > 1 && e.Child > maxCluster {
			maxCluster = e.Child
		}
	}
	return &CondensedTree{Edges: edges, NumPoints: numPoints, maxCluster: maxCluster}
}

// Root returns the root cluster id, always equal to NumPoints.
func (t *CondensedTree) Root() int { return t.NumPoints }

// MaxCluster returns the largest cluster id in the tree; equal to Root when
// no split survived condensation.
func (t *CondensedTree) MaxCluster() int { return t.maxCluster }

// ClusterEdges returns only the cluster-to-cluster edges (Size > 1), the
// subset used for all cluster-topology reasoning (ancestry, leaves, BFS).
func (t *CondensedTree) ClusterEdges() []CondensedEdge {
	edges := make([]CondensedEdge, 0, len(t.Edges)/2)
	for _, e := range t.Edges {
		if e.Size > 1 {
			edges = append(edges, e)
		}
	}
	return edges
}

// clusterChildren builds a parent-to-children map over the cluster edges.
func (t *CondensedTree) clusterChildren() map[int][]int {
	childrenOf := make(map[int][]int)
	for _, e := range t.Edges {
		if e.Size > 1 {
			childrenOf[e.Parent] = append(childrenOf[e.Parent], e.Child)
		}
	}
	return childrenOf
}

// CondenseTree rewrites a single-linkage dendrogram into a condensed cluster
// tree, dropping every merge that does not grow a cluster past
// minClusterSize. Splits where both sides are large enough create two new
// clusters; splits where one side is too small fold that side's points into
// the surviving cluster, which keeps its parent's id; splits where both sides
// are too small dissolve the whole subtree into point edges. Returns nil for
// an empty dendrogram.
//
// Cluster ids increase with creation order, so descending id order is a
// reverse-topological order over clusters. SelectClustersEOM depends on that.
func CondenseTree(hierarchy []HierarchyEdge, minClusterSize int) *CondensedTree {
	numRows := len(hierarchy)
	if numRows == 0 {
		return nil
	}
	if minClusterSize < 2 {
		// A one-point side never forms a cluster, so 1 behaves as 2.
		minClusterSize = 2
	}

	numPoints := numRows + 1
	root := 2 * numRows
	nextLabel := numPoints + 1

	nodeList := bfsFromHierarchy(hierarchy, numPoints, root)

	// Dense bookkeeping over full-tree node ids 0..2n-2.
	relabel := make([]int, 2*numPoints-1)
	relabel[root] = numPoints
	ignore := make([]bool, 2*numPoints-1)

	var edges []CondensedEdge

	// collapse emits a point edge for every leaf under subtreeRoot and marks
	// the whole subtree ignored so the main sweep skips it.
	collapse := func(subtreeRoot, parentCluster int, lambda float64) {
		for _, node := range bfsFromHierarchy(hierarchy, numPoints, subtreeRoot) {
			if node < numPoints {
				edges = append(edges, CondensedEdge{
					Parent: parentCluster,
					Child:  node,
					Lambda: lambda,
					Size:   1,
				})
			}
			ignore[node] = true
		}
	}

	for _, node := range nodeList {
		if node < numPoints || ignore[node] {
			continue
		}

		row := hierarchy[node-numPoints]

		lambda := math.Inf(1)
		if row.Distance > 0 {
			lambda = 1.0 / row.Distance
		}

		leftSize := nodeSize(hierarchy, numPoints, row.Left)
		rightSize := nodeSize(hierarchy, numPoints, row.Right)
		leftBig := leftSize >= minClusterSize
		rightBig := rightSize >= minClusterSize
		parentCluster := relabel[node]

		switch {
		case leftBig && rightBig:
			relabel[row.Left] = nextLabel
			nextLabel++
			edges = append(edges, CondensedEdge{
				Parent: parentCluster,
				Child:  relabel[row.Left],
				Lambda: lambda,
				Size:   leftSize,
			})

			relabel[row.Right] = nextLabel
			nextLabel++
			edges = append(edges, CondensedEdge{
				Parent: parentCluster,
				Child:  relabel[row.Right],
				Lambda: lambda,
				Size:   rightSize,
			})

		case !leftBig && !rightBig:
			collapse(row.Left, parentCluster, lambda)
			collapse(row.Right, parentCluster, lambda)

		case !leftBig:
			// Left too small; right continues as the same cluster.
			relabel[row.Right] = parentCluster
			collapse(row.Left, parentCluster, lambda)

		default:
			// Right too small; left continues as the same cluster.
			relabel[row.Left] = parentCluster
			collapse(row.Right, parentCluster, lambda)
		}
	}

	return &CondensedTree{Edges: edges, NumPoints: numPoints, maxCluster: nextLabel - 1}
}
