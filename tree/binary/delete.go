package binary

import (
	"go.lepak.sg/trees/tree"
)

// Remove deletes one node holding k from the tree.
// If k is not in the tree, Remove fails with ErrKeyNotFound and the
// tree is left untouched.
//
// Remove never rebalances, even on a tree with the AVL strategy:
// a removal may leave the height invariant violated. This mirrors
// the classic treatment of AVL deletion as a separate problem and
// is a deliberate scope boundary, not an oversight.
func (t *Tree[T]) Remove(k T) error {
	n := t.lookup(k)
	if n == nil {
		return ErrKeyNotFound
	}

	t.removeNode(n)
	t.count--
	return nil
}

// removeNode is CLRS 12.3 TREE-DELETE.
// Either n has at most one child and that child is spliced into
// n's slot, or the minimum s of n's right subtree takes n's place:
// s is first spliced out of its own slot (unless it is n.Right
// already), then adopts n's right and left subtrees.
func (t *Tree[T]) removeNode(n *tree.Node[T]) {
	switch {
	case n.Left == nil:
		t.transplant(n, n.Right)
	case n.Right == nil:
		t.transplant(n, n.Left)
	default:
		s := minFrom(n.Right)
		if s != n.Right {
			t.transplant(s, s.Right)
			s.Right = n.Right
			s.Right.Parent = s
		}
		t.transplant(n, s)
		s.Left = n.Left
		s.Left.Parent = s
	}

	// n is fully detached now, don't leave stale links behind
	n.Left, n.Right, n.Parent = nil, nil, nil
}

// transplant replaces the subtree rooted at u with the subtree
// rooted at v, in u's parent's child slot or at the tree root if
// u was the root. v may be nil.
func (t *Tree[T]) transplant(u, v *tree.Node[T]) {
	switch {
	case u.Parent == nil:
		t.root = v
	case u == u.Parent.Left:
		u.Parent.Left = v
	default:
		u.Parent.Right = v
	}

	if v != nil {
		v.Parent = u.Parent
	}
}
