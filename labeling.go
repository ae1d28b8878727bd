package treecut

import (
	"math"
	"sort"
)

// NoiseLabel is the label assigned to points that belong to no selected
// cluster.
const NoiseLabel = -1

// GetLabelsAndProbabilities assigns every original point a dense cluster
// label (or NoiseLabel) and a membership strength in [0, 1], given the final
// selected cluster set. Selected cluster ids map to labels 0..k-1 in
// ascending id order. Noise points keep probability 0.
func GetLabelsAndProbabilities(t *CondensedTree, selected map[int]bool,
	allowSingleCluster bool, epsilon float64, matchReferenceImplementation bool,
) ([]int, []float64) {
	n := t.NumPoints
	if len(t.Edges) == 0 {
		labels := make([]int, n)
		for i := range labels {
			labels[i] = NoiseLabel
		}
		return labels, make([]float64, n)
	}

	deaths := computeDeathLambdas(t)
	labelOf, clusterOf := buildClusterLabelMaps(selected)

	labels := doLabelling(t, selected, labelOf, deaths,
		allowSingleCluster, epsilon, matchReferenceImplementation)
	probs := getProbabilities(t, clusterOf, labels, deaths)

	return labels, probs
}

// buildClusterLabelMaps maps selected cluster ids to sequential labels
// (0, 1, 2, ... in ascending cluster-id order) and back.
func buildClusterLabelMaps(selected map[int]bool) (labelOf map[int]int, clusterOf map[int]int) {
	ids := make([]int, 0, len(selected))
	for c := range selected {
		ids = append(ids, c)
	}
	sort.Ints(ids)

	labelOf = make(map[int]int, len(ids))
	clusterOf = make(map[int]int, len(ids))
	for i, c := range ids {
		labelOf[c] = i
		clusterOf[i] = c
	}
	return labelOf, clusterOf
}

// doLabelling resolves each point through a union-find in which every
// unselected child has been merged into its parent, collapsing unselected
// structure into the nearest selected ancestor.
func doLabelling(t *CondensedTree, selected map[int]bool, labelOf map[int]int,
	deaths []float64, allowSingleCluster bool, epsilon float64,
	matchReferenceImplementation bool,
) []int {
	root := t.Root()

	uf := newTreeUnionFind(t.MaxCluster() + 1)
	for _, e := range t.Edges {
		if !selected[e.Child] {
			uf.union(e.Parent, e.Child)
		}
	}

	// Departure lambda per point and birth lambda per cluster, for the
	// single-cluster and reference-implementation admission tests.
	pointLambdas := make([]float64, t.NumPoints)
	clusterBirths := make([]float64, t.MaxCluster()-root+1)
	for _, e := range t.Edges {
		if e.Size == 1 {
			pointLambdas[e.Child] = e.Lambda
		} else {
			clusterBirths[e.Child-root] = e.Lambda
		}
	}

	// Max lambda at which the root, as a parent, ever splits.
	rootDeath := deaths[0]

	labels := make([]int, t.NumPoints)
	for point := range labels {
		labels[point] = labelPoint(point, uf.find(point), root, selected, labelOf,
			pointLambdas, clusterBirths, rootDeath,
			allowSingleCluster, epsilon, matchReferenceImplementation)
	}
	return labels
}

// labelPoint maps one point's union-find component to a label.
func labelPoint(point, component, root int,
	selected map[int]bool, labelOf map[int]int,
	pointLambdas []float64, clusterBirths []float64, rootDeath float64,
	allowSingleCluster bool, epsilon float64, matchReferenceImplementation bool,
) int {
	if component < root {
		// Orphaned below any surviving cluster.
		return NoiseLabel
	}

	if component != root {
		if !matchReferenceImplementation {
			return labelOf[component]
		}
		if pointLambdas[point] > clusterBirths[component-root] {
			return labelOf[component]
		}
		return NoiseLabel
	}

	// The point resolved to the root component: noise unless exactly one
	// cluster was selected and single-cluster output is allowed.
	if len(selected) != 1 || !allowSingleCluster {
		return NoiseLabel
	}
	label, ok := labelOf[component]
	if !ok {
		return NoiseLabel
	}

	// Admission test: the point must survive at least until the threshold
	// distance, or until the last split the root ever makes. The two
	// branches are deliberately distinct.
	if epsilon != 0 {
		if pointLambdas[point] >= 1.0/epsilon {
			return label
		}
		return NoiseLabel
	}
	if pointLambdas[point] >= rootDeath {
		return label
	}
	return NoiseLabel
}

// getProbabilities computes each non-noise point's membership strength from
// its departure lambda relative to its cluster's death lambda.
func getProbabilities(t *CondensedTree, clusterOf map[int]int, labels []int,
	deaths []float64,
) []float64 {
	root := t.Root()
	probs := make([]float64, len(labels))

	for _, e := range t.Edges {
		point := e.Child
		if point >= root {
			continue
		}
		label := labels[point]
		if label == NoiseLabel {
			continue
		}
		cluster, ok := clusterOf[label]
		if !ok {
			continue
		}

		death := deaths[cluster-root]
		if death == 0 || math.IsInf(e.Lambda, 0) {
			probs[point] = 1.0
		} else {
			probs[point] = math.Min(e.Lambda, death) / death
		}
	}
	return probs
}

// computeDeathLambdas returns, per cluster (dense-indexed by id-root), the
// maximum lambda at which the cluster, as a parent, loses a child; 0 when it
// never splits before its points vanish.
func computeDeathLambdas(t *CondensedTree) []float64 {
	root := t.Root()
	deaths := make([]float64, t.MaxCluster()-root+1)
	for _, e := range t.Edges {
		if e.Lambda > deaths[e.Parent-root] {
			deaths[e.Parent-root] = e.Lambda
		}
	}
	return deaths
}
