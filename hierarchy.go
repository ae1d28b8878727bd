package treecut

import "github.com/cockroachdb/errors"

// HierarchyEdge is one merge row of a single-linkage dendrogram over n
// points, in scipy linkage order: row i records synthetic node n+i merging
// Left and Right at Distance into a cluster of Size points. Nodes 0..n-1 are
// the original points; the root is node 2(n-1).
type HierarchyEdge struct {
	Left     int
	Right    int
	Distance float64
	Size     int
}

// nodeSize returns the number of points under node in a dendrogram over
// numPoints points. Original points have size 1.
func nodeSize(hierarchy []HierarchyEdge, numPoints, node int) int {
	if node < numPoints {
		return 1
	}
	return hierarchy[node-numPoints].Size
}

// ValidateHierarchy checks that hierarchy is a well-formed binary merge tree
// over numPoints points: exactly numPoints-1 rows, child indices in range and
// referring only to nodes that already exist at that row, no node merged
// twice, non-negative distances, and every merged size equal to the sum of
// its children's sizes. The first violation is returned as an error wrapping
// ErrInvalidHierarchy.
func ValidateHierarchy(hierarchy []HierarchyEdge, numPoints int) error {
	if numPoints < 0 {
		return errors.Wrapf(ErrInvalidHierarchy, "numPoints must be >= 0, got %d", numPoints)
	}
	if numPoints <= 1 {
		if len(hierarchy) != 0 {
			return errors.Wrapf(ErrInvalidHierarchy,
				"%d point(s) admit no merges, got %d rows", numPoints, len(hierarchy))
		}
		return nil
	}
	if len(hierarchy) != numPoints-1 {
		return errors.Wrapf(ErrInvalidHierarchy,
			"%d points require %d merge rows, got %d", numPoints, numPoints-1, len(hierarchy))
	}

	merged := make([]bool, 2*numPoints-1)
	for i, e := range hierarchy {
		// Row i may only reference nodes created before synthetic node n+i.
		limit := numPoints + i
		if e.Left == e.Right {
			return errors.Wrapf(ErrInvalidHierarchy,
				"row %d: node %d merged with itself", i, e.Left)
		}
		for _, child := range []int{e.Left, e.Right} {
			if child < 0 || child >= limit {
				return errors.Wrapf(ErrInvalidHierarchy,
					"row %d: child node %d out of range [0, %d)", i, child, limit)
			}
			if merged[child] {
				return errors.Wrapf(ErrInvalidHierarchy,
					"row %d: node %d already merged by an earlier row", i, child)
			}
			merged[child] = true
		}
		if e.Distance < 0 {
			return errors.Wrapf(ErrInvalidHierarchy,
				"row %d: negative merge distance %g", i, e.Distance)
		}
		want := nodeSize(hierarchy, numPoints, e.Left) + nodeSize(hierarchy, numPoints, e.Right)
		if e.Size != want {
			return errors.Wrapf(ErrInvalidHierarchy,
				"row %d: size %d does not match children's total %d", i, e.Size, want)
		}
	}
	return nil
}
