package treecut

import "math"

// OutlierScores computes GLOSH (Global-Local Outlier Score from Hierarchies)
// scores from the condensed tree: per point, how early it departs relative to
// the last split of the cluster it departs from. Scores are in [0, 1]; 0 is
// a core inlier, values near 1 are strong outliers.
func OutlierScores(t *CondensedTree) []float64 {
	if t == nil || len(t.Edges) == 0 {
		if t == nil {
			return nil
		}
		return make([]float64, t.NumPoints)
	}

	root := t.Root()
	deaths := computeDeathLambdas(t)

	scores := make([]float64, t.NumPoints)
	for _, e := range t.Edges {
		point := e.Child
		if point >= root {
			continue
		}
		death := deaths[e.Parent-root]
		if death == 0 || math.IsInf(e.Lambda, 0) {
			scores[point] = 0.0
		} else {
			scores[point] = (death - e.Lambda) / death
		}
	}
	return scores
}
