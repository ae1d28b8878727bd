package treecut

// bfsFromHierarchy walks the full binary merge tree breadth-first from root,
// returning every reachable node id (root first, then layer by layer). It is
// restartable: calling it again with a different root walks that subtree.
func bfsFromHierarchy(hierarchy []HierarchyEdge, numPoints, root int) []int {
	toProcess := []int{root}
	var result []int

	for len(toProcess) > 0 {
		result = append(result, toProcess...)

		var next []int
		for _, node := range toProcess {
			if node < numPoints {
				continue
			}
			row := hierarchy[node-numPoints]
			next = append(next, row.Left, row.Right)
		}
		toProcess = next
	}

	return result
}

// bfsClusterDescendants walks the condensed cluster tree breadth-first from
// root using a pre-built parent-to-children map, returning root and every
// cluster below it. Fan-out is variable, unlike the binary full hierarchy.
func bfsClusterDescendants(childrenOf map[int][]int, root int) []int {
	result := []int{root}
	toProcess := []int{root}

	for len(toProcess) > 0 {
		var next []int
		for _, node := range toProcess {
			children := childrenOf[node]
			result = append(result, children...)
			next = append(next, children...)
		}
		toProcess = next
	}

	return result
}
