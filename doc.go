// Package treecut extracts a flat cluster assignment from a single-linkage
// dendrogram, the way density-based hierarchical clustering (HDBSCAN-style)
// turns a merge hierarchy into labels.
//
// The input is the full merge history over n points: n-1 edges in which nodes
// 0..n-1 are the original points and nodes n..2n-2 are synthetic merges. The
// pipeline condenses that hierarchy by pruning splits smaller than a minimum
// cluster size, scores the surviving clusters by stability, selects a final
// non-overlapping set of clusters (excess-of-mass or leaf selection,
// optionally refined by a distance threshold), and emits one label and one
// membership probability per point.
//
// Basic usage:
//
//	cfg := treecut.DefaultConfig()
//	cfg.MinClusterSize = 10
//	result, err := treecut.TreeToLabels(hierarchy, n, cfg)
//	// result.Labels[i] is the cluster ID for point i (-1 = noise)
//	// result.Probabilities[i] is how strongly point i belongs to its cluster
//	// result.OutlierScores[i] is how outlier-like point i is (0 = inlier, 1 = outlier)
//
// Building the hierarchy itself (distances, mutual reachability, minimum
// spanning tree) is out of scope; any single-linkage builder that produces
// scipy-compatible merge rows can feed this package.
//
// The individual stages (CondenseTree, ComputeStability, SelectClustersEOM,
// SelectClustersLeaf, EpsilonSearch, GetLabelsAndProbabilities) are exported
// for callers that want to inspect or post-process the condensed tree.
package treecut
