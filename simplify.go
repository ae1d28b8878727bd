package treecut

import "sort"

// SimplifyHierarchy removes low-persistence leaf clusters from the condensed
// tree before selection. A leaf cluster whose lambda persistence (its birth
// lambda minus its parent's) falls below persistenceThreshold is dissolved
// into its parent; removal repeats until stable, since dissolving a leaf can
// expose its parent as a new leaf. Surviving edges are re-parented past
// removed clusters and cluster ids are renumbered densely from the root.
// A threshold <= 0 returns the tree unchanged.
func SimplifyHierarchy(t *CondensedTree, persistenceThreshold float64) *CondensedTree {
	if t == nil || persistenceThreshold <= 0 || len(t.Edges) == 0 {
		return t
	}

	root := t.Root()
	clusterTree := t.ClusterEdges()
	if len(clusterTree) == 0 {
		return t
	}

	span := t.MaxCluster() - root + 1
	births := make([]float64, span) // root stays 0
	parentOf := make([]int, span)
	for i := range parentOf {
		parentOf[i] = -1
	}
	for _, e := range clusterTree {
		births[e.Child-root] = e.Lambda
		parentOf[e.Child-root] = e.Parent
	}

	// Iteratively peel low-persistence leaves until stable.
	removed := make([]bool, span)
	anyRemoved := false
	for changed := true; changed; {
		changed = false

		surviving := make([]bool, span)
		for _, e := range clusterTree {
			if !removed[e.Parent-root] && !removed[e.Child-root] {
				surviving[e.Parent-root] = true
			}
		}

		for _, e := range clusterTree {
			ci := e.Child - root
			if removed[ci] || surviving[ci] {
				continue
			}
			if births[ci]-births[parentOf[ci]-root] < persistenceThreshold {
				removed[ci] = true
				anyRemoved = true
				changed = true
			}
		}
	}
	if !anyRemoved {
		return t
	}

	// Nearest surviving ancestor for each removed cluster. The root is never
	// removed (it is no cluster's child), so the walk terminates.
	reparent := make([]int, span)
	for i := range removed {
		if !removed[i] {
			continue
		}
		ancestor := parentOf[i]
		for removed[ancestor-root] {
			ancestor = parentOf[ancestor-root]
		}
		reparent[i] = ancestor
	}

	edges := make([]CondensedEdge, 0, len(t.Edges))
	for _, e := range t.Edges {
		if e.Size > 1 && removed[e.Child-root] {
			continue
		}
		parent := e.Parent
		if removed[parent-root] {
			parent = reparent[parent-root]
		}
		edges = append(edges, CondensedEdge{
			Parent: parent,
			Child:  e.Child,
			Lambda: e.Lambda,
			Size:   e.Size,
		})
	}

	relabelClusters(edges, root)
	return newCondensedTree(edges, t.NumPoints)
}

// relabelClusters renumbers cluster ids in place so they are consecutive
// starting at startID, preserving relative order. Point ids (Size == 1
// children) are untouched.
func relabelClusters(edges []CondensedEdge, startID int) {
	clusterIDs := make(map[int]bool)
	for _, e := range edges {
		clusterIDs[e.Parent] = true
		if e.Size > 1 {
			clusterIDs[e.Child] = true
		}
	}

	ids := make([]int, 0, len(clusterIDs))
	for c := range clusterIDs {
		ids = append(ids, c)
	}
	sort.Ints(ids)

	relabel := make(map[int]int, len(ids))
	for i, c := range ids {
		relabel[c] = startID + i
	}

	for i := range edges {
		edges[i].Parent = relabel[edges[i].Parent]
		if edges[i].Size > 1 {
			edges[i].Child = relabel[edges[i].Child]
		}
	}
}
