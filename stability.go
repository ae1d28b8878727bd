package treecut

// ComputeStability computes a stability score for every persistent cluster in
// the condensed tree:
//
//	sum over edges with Parent==C of: (edge.Lambda - lambdaBirth(C)) * edge.Size
//
// where lambdaBirth(C) is the lambda of the edge that created C as a child
// (the minimum over such edges) and the root's birth is 0.
// Stability is non-negative whenever lambda is non-decreasing down the tree.
//
// Cluster ids are dense in [Root, MaxCluster], so births and accumulators are
// flat arrays offset by the root id; only the returned map hashes.
func ComputeStability(t *CondensedTree) map[int]float64 {
	if t == nil || len(t.Edges) == 0 {
		return nil
	}

	root := t.Root()
	span := t.MaxCluster() - root + 1

	births := make([]float64, span)
	born := make([]bool, span)
	for _, e := range t.Edges {
		if e.Size <= 1 {
			continue
		}
		i := e.Child - root
		if !born[i] || e.Lambda < births[i] {
			births[i] = e.Lambda
			born[i] = true
		}
	}
	// The root is never anyone's child; it is born at lambda 0.
	births[0] = 0

	scores := make([]float64, span)
	for _, e := range t.Edges {
		i := e.Parent - root
		scores[i] += (e.Lambda - births[i]) * float64(e.Size)
	}

	stability := make(map[int]float64, span)
	for i, s := range scores {
		stability[root+i] = s
	}
	return stability
}
