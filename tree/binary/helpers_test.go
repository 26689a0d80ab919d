package binary

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// checkParents fails the test if any parent back-reference does not
// mirror the owning child edge it came from.
func checkParents[T constraints.Ordered](t *testing.T, tr *Tree[T]) {
	t.Helper()
	checkParentsVisit(t, tr.root, nil)
}

func checkParentsVisit[T comparable](t *testing.T, n, up *tree.Node[T]) {
	t.Helper()
	if n == nil {
		return
	}
	require.Same(t, up, n.Parent, "parent mismatch at key %v", n.Key)
	checkParentsVisit(t, n.Left, n)
	checkParentsVisit(t, n.Right, n)
}

// checkBalanced fails the test if any node violates the AVL height
// invariant.
func checkBalanced[T constraints.Ordered](t *testing.T, tr *Tree[T]) {
	t.Helper()
	checkBalancedVisit(t, tr.root)
}

func checkBalancedVisit[T comparable](t *testing.T, n *tree.Node[T]) {
	t.Helper()
	if n == nil {
		return
	}
	lh, rh := n.Left.Height(), n.Right.Height()
	diff := lh - rh
	if diff < 0 {
		diff = -diff
	}
	require.LessOrEqual(t, diff, 1, "unbalanced at key %v", n.Key)
	checkBalancedVisit(t, n.Left)
	checkBalancedVisit(t, n.Right)
}

func inOrderKeys[T constraints.Ordered](tr *Tree[T]) []T {
	var out []T
	tr.InOrderIter(func(k T) bool {
		out = append(out, k)
		return true
	})
	return out
}
