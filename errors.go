package treecut

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidHierarchy indicates the input dendrogram is malformed:
	// out-of-range node indices, a node merged more than once, or cluster
	// sizes that do not equal the sum of the children's sizes.
	ErrInvalidHierarchy = errors.New("treecut: invalid hierarchy")

	// ErrInvalidSelectionMethod indicates an unknown cluster selection method.
	ErrInvalidSelectionMethod = errors.New("treecut: invalid cluster selection method")

	// ErrInvalidConfig indicates an out-of-range Config field.
	ErrInvalidConfig = errors.New("treecut: invalid config")
)
