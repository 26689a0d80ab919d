package binary

import (
	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// Insert adds k to the tree as a fresh leaf.
// Duplicate keys are allowed and are routed to the right subtree.
// With the AVL strategy, the tree is rebalanced before Insert
// returns, starting from the new leaf.
func (t *Tree[T]) Insert(k T) {
	n := t.insertLeaf(k)
	t.count++

	if t.balance == AVL {
		t.rebalance(n)
	}
}

// InsertAll inserts keys one by one, in the order given.
func (t *Tree[T]) InsertAll(keys ...T) {
	for _, k := range keys {
		t.Insert(k)
	}
}

// insertLeaf is CLRS 12.3 TREE-INSERT: descend from the root
// tracking the last node visited, then attach the new node as
// that node's missing child (or as the root of an empty tree).
func (t *Tree[T]) insertLeaf(k T) *tree.Node[T] {
	n, parent := t.root, (*tree.Node[T])(nil)
	for n != nil {
		parent = n
		if tree.Compare(k, n.Key) == tree.Less {
			n = n.Left
		} else {
			n = n.Right
		}
	}

	newnode := tree.NodeOf(k)
	newnode.Parent = parent

	switch {
	case parent == nil:
		t.root = newnode
	case tree.Compare(k, parent.Key) == tree.Less:
		if parent.Left != nil {
			panic("impossible")
		}
		parent.Left = newnode
	default:
		if parent.Right != nil {
			panic("impossible")
		}
		parent.Right = newnode
	}

	return newnode
}

// InsertRec adds k using the recursive strategy: the path from the
// root to the insertion point is rebuilt and parent references are
// reconnected on the way back up. The resulting tree is identical
// to what Insert would produce, including AVL rebalancing.
// The recursion is as deep as the tree, so prefer Insert for input
// that may degenerate into a near-linear shape.
func (t *Tree[T]) InsertRec(k T) {
	root, leaf := insertRecVisit(t.root, k)
	t.root = root
	t.root.Parent = nil
	t.count++

	if t.balance == AVL {
		t.rebalance(leaf)
	}
}

func insertRecVisit[T constraints.Ordered](
	n *tree.Node[T], k T) (sub, leaf *tree.Node[T]) {
	if n == nil {
		leaf = tree.NodeOf(k)
		return leaf, leaf
	}

	if tree.Compare(k, n.Key) == tree.Less {
		n.Left, leaf = insertRecVisit(n.Left, k)
		n.Left.Parent = n
	} else {
		n.Right, leaf = insertRecVisit(n.Right, k)
		n.Right.Parent = n
	}

	return n, leaf
}
