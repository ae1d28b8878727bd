package treecut

import (
	"math"

	"github.com/cockroachdb/errors"
)

// SelectionMethod chooses how flat clusters are extracted from the condensed
// tree.
type SelectionMethod string

const (
	// SelectionEOM (excess of mass) keeps the clusters that maximize total
	// stability, preferring a parent over its children when it is the more
	// persistent structure.
	SelectionEOM SelectionMethod = "eom"

	// SelectionLeaf keeps the leaves of the cluster tree, producing many
	// small homogeneous clusters.
	SelectionLeaf SelectionMethod = "leaf"
)

// Config controls how the flat clustering is cut out of the hierarchy.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// MinClusterSize is the smallest group of points considered a cluster
	// during condensation. Smaller values keep more splits; larger values
	// keep fewer, denser clusters. Must be >= 1 (values below 2 behave as
	// 2, since a one-point side never forms a cluster). Default: 5.
	MinClusterSize int

	// ClusterSelectionMethod is either SelectionEOM or SelectionLeaf.
	// Default: SelectionEOM.
	ClusterSelectionMethod SelectionMethod

	// AllowSingleCluster permits returning all points as one root-level
	// cluster rather than splitting into subclusters. Default: false.
	AllowSingleCluster bool

	// ClusterSelectionEpsilon is a minimum distance threshold: selected
	// clusters created below it are merged upward into an ancestor created
	// at or above it. 0 disables the pass. Must be >= 0. Default: 0.
	ClusterSelectionEpsilon float64

	// MaxClusterSize forces subclusters to win EOM selection over a parent
	// larger than this. 0 means unlimited. Default: 0.
	MaxClusterSize int

	// ClusterSelectionPersistence removes clusters whose lambda persistence
	// in the condensed tree is below this threshold before selection.
	// 0 disables simplification. Must be >= 0. Default: 0.
	ClusterSelectionPersistence float64

	// ClusterSelectionEpsilonMax is an upper bound on a cluster's birth
	// epsilon for EOM selection; clusters born above it are split into
	// subclusters. Default: +Inf (no bound).
	ClusterSelectionEpsilonMax float64

	// MatchReferenceImplementation enables edge-case behaviors that exactly
	// match the Python scikit-learn-contrib/hdbscan library: points whose
	// departure lambda does not exceed their cluster's birth lambda are
	// demoted to noise. Default: false.
	MatchReferenceImplementation bool
}

// Result contains the flat clustering extracted from a hierarchy.
type Result struct {
	// Labels assigns each point a 0-indexed cluster label, or NoiseLabel.
	Labels []int

	// Probabilities is each point's membership strength in its assigned
	// cluster, in [0, 1]. Noise points have probability 0.
	Probabilities []float64

	// Stabilities maps each condensed-tree cluster id to its stability
	// after EOM propagation (raw stability under leaf selection).
	Stabilities map[int]float64

	// OutlierScores is the GLOSH score per point, in [0, 1].
	OutlierScores []float64

	// CondensedTree is the condensed hierarchy the clustering was cut from,
	// for inspection or custom post-processing.
	CondensedTree *CondensedTree
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		MinClusterSize:             5,
		ClusterSelectionMethod:     SelectionEOM,
		ClusterSelectionEpsilonMax: math.Inf(1),
	}
}

// applyDefaults fills in zero-valued fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.ClusterSelectionMethod == "" {
		cfg.ClusterSelectionMethod = SelectionEOM
	}
	if cfg.ClusterSelectionEpsilonMax == 0 {
		cfg.ClusterSelectionEpsilonMax = math.Inf(1)
	}
}

// validateConfig checks that cfg fields are in range.
func validateConfig(cfg *Config) error {
	if cfg.MinClusterSize < 1 {
		return errors.Wrapf(ErrInvalidConfig, "MinClusterSize must be >= 1, got %d", cfg.MinClusterSize)
	}
	switch cfg.ClusterSelectionMethod {
	case SelectionEOM, SelectionLeaf:
	default:
		return errors.Wrapf(ErrInvalidSelectionMethod, "got %q", cfg.ClusterSelectionMethod)
	}
	if cfg.ClusterSelectionEpsilon < 0 {
		return errors.Wrapf(ErrInvalidConfig, "ClusterSelectionEpsilon must be >= 0, got %g", cfg.ClusterSelectionEpsilon)
	}
	if cfg.ClusterSelectionPersistence < 0 {
		return errors.Wrapf(ErrInvalidConfig, "ClusterSelectionPersistence must be >= 0, got %g", cfg.ClusterSelectionPersistence)
	}
	if cfg.MaxClusterSize < 0 {
		return errors.Wrapf(ErrInvalidConfig, "MaxClusterSize must be >= 0, got %d", cfg.MaxClusterSize)
	}
	return nil
}

// allNoiseResult is the valid outcome when no cluster survives: every point
// is noise with probability 0.
func allNoiseResult(n int, t *CondensedTree) *Result {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = NoiseLabel
	}
	return &Result{
		Labels:        labels,
		Probabilities: make([]float64, n),
		Stabilities:   map[int]float64{},
		OutlierScores: make([]float64, n),
		CondensedTree: t,
	}
}

// TreeToLabels converts a single-linkage dendrogram over numPoints points
// into a flat cluster assignment: condensation, stability scoring, cluster
// selection, labelling and probability scoring, in that order. The hierarchy
// is validated up front and never modified.
//
// numPoints of 0 or 1 returns a trivial all-noise result. A clustering where
// every point is noise is a valid, non-error outcome.
func TreeToLabels(hierarchy []HierarchyEdge, numPoints int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if err := ValidateHierarchy(hierarchy, numPoints); err != nil {
		return nil, err
	}
	if numPoints <= 1 {
		return allNoiseResult(numPoints, nil), nil
	}

	condensed := CondenseTree(hierarchy, cfg.MinClusterSize)
	if condensed == nil || len(condensed.Edges) == 0 {
		return allNoiseResult(numPoints, condensed), nil
	}

	stability := ComputeStability(condensed)
	if cfg.ClusterSelectionPersistence > 0 {
		condensed = SimplifyHierarchy(condensed, cfg.ClusterSelectionPersistence)
		stability = ComputeStability(condensed)
	}

	var selected map[int]bool
	updatedStability := stability
	switch cfg.ClusterSelectionMethod {
	case SelectionEOM:
		selected, updatedStability = SelectClustersEOM(condensed, stability,
			cfg.AllowSingleCluster, cfg.MaxClusterSize, cfg.ClusterSelectionEpsilonMax)
		if cfg.ClusterSelectionEpsilon > 0 {
			if rootOnly := len(selected) == 1 && selected[condensed.Root()]; rootOnly {
				// Nothing above the root to merge into; keep it only when
				// single-cluster output is allowed.
				if !cfg.AllowSingleCluster {
					selected = map[int]bool{}
				}
			} else {
				selected = EpsilonSearch(condensed, selected,
					cfg.ClusterSelectionEpsilon, cfg.AllowSingleCluster)
			}
		}
	case SelectionLeaf:
		selected = SelectClustersLeaf(condensed,
			cfg.ClusterSelectionEpsilon, cfg.AllowSingleCluster)
	}

	labels, probabilities := GetLabelsAndProbabilities(condensed, selected,
		cfg.AllowSingleCluster, cfg.ClusterSelectionEpsilon,
		cfg.MatchReferenceImplementation)

	return &Result{
		Labels:        labels,
		Probabilities: probabilities,
		Stabilities:   updatedStability,
		OutlierScores: OutlierScores(condensed),
		CondensedTree: condensed,
	}, nil
}
