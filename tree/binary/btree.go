// Package binary implements an ordered binary search tree with an
// optional AVL self-balancing strategy.
package binary

import (
	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// Balance selects the rebalancing strategy of a Tree.
type Balance int

const (
	// Unbalanced trees keep whatever shape the insertion order implies.
	Unbalanced Balance = iota
	// AVL trees restore the height invariant after every insertion:
	// at every node, the heights of the two child subtrees differ
	// by at most one.
	AVL
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting, removing).
//
// The zero Tree is an empty Unbalanced tree and may be used
// immediately. Tree should not be passed around as a value
// (ie. just use New or NewAVL when creating one).
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted
//     at N.Left are less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted
//     at N.Right are greater than or equal to N.Key
//     (duplicate keys are routed to the right subtree)
//   - With the AVL strategy, after any insertion the heights of the
//     two subtrees of every node differ by at most one. Remove does
//     not restore this; see Remove.
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root    *tree.Node[T]
	count   int
	balance Balance
}

// New creates an empty tree that never rebalances.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// NewAVL creates an empty tree with the AVL balance strategy.
func NewAVL[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{
		balance: AVL,
	}
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Size returns the number of keys in the tree.
func (t *Tree[T]) Size() int {
	return t.count
}

// Height returns the height of the tree, walking all of it.
// An empty tree has height -1 and a single node has height 0.
func (t *Tree[T]) Height() int {
	return t.root.Height()
}

// Root returns the key at the root of the tree.
// ok is false if the tree is empty.
func (t *Tree[T]) Root() (k T, ok bool) {
	if t.root == nil {
		return
	}
	return t.root.Key, true
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	return t.lookup(k) != nil
}

// lookup descends from the root to the first node holding k,
// or nil if k is not in the tree. O(height).
func (t *Tree[T]) lookup(k T) *tree.Node[T] {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Rank returns the in-order position of k in the tree,
// counting from zero, or -1 if k is not in the tree.
// Unlike Contains this walks the tree in order from the smallest
// key until it meets k, so it is O(n), not O(height).
func (t *Tree[T]) Rank(k T) int {
	count := -1
	found := false

	t.InOrderIter(func(key T) bool {
		count++
		if key == k {
			found = true
			return false
		}
		return true
	})

	if !found {
		return -1
	}
	return count
}

// Min returns the smallest key in the tree.
// It fails with ErrEmptyTree if the tree is empty.
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return minFrom(t.root).Key, nil
}

// Max returns the largest key in the tree.
// It fails with ErrEmptyTree if the tree is empty.
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return maxFrom(t.root).Key, nil
}

func minFrom[T comparable](n *tree.Node[T]) *tree.Node[T] {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

func maxFrom[T comparable](n *tree.Node[T]) *tree.Node[T] {
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Successor returns the smallest key in the tree greater than k
// (in duplicate-aware terms: the key after k in in-order sequence).
// It fails with ErrEmptyTree on an empty tree, ErrKeyNotFound if k
// is not in the tree, and ErrNoSuccessor if k is the largest key.
func (t *Tree[T]) Successor(k T) (T, error) {
	var zero T
	if t.root == nil {
		return zero, ErrEmptyTree
	}

	n := t.lookup(k)
	if n == nil {
		return zero, ErrKeyNotFound
	}

	if n.Right != nil {
		return minFrom(n.Right).Key, nil
	}

	// No right subtree: climb while still a right child.
	// The first ancestor we reach from the left is the successor.
	at, child := n.Parent, n
	for at != nil && at.Right == child {
		at, child = at.Parent, at
	}
	if at == nil {
		return zero, ErrNoSuccessor
	}
	return at.Key, nil
}

// Predecessor returns the largest key in the tree smaller than k
// (the key before k in in-order sequence).
// It fails with ErrEmptyTree on an empty tree, ErrKeyNotFound if k
// is not in the tree, and ErrNoPredecessor if k is the smallest key.
func (t *Tree[T]) Predecessor(k T) (T, error) {
	var zero T
	if t.root == nil {
		return zero, ErrEmptyTree
	}

	n := t.lookup(k)
	if n == nil {
		return zero, ErrKeyNotFound
	}

	if n.Left != nil {
		return maxFrom(n.Left).Key, nil
	}

	at, child := n.Parent, n
	for at != nil && at.Left == child {
		at, child = at.Parent, at
	}
	if at == nil {
		return zero, ErrNoPredecessor
	}
	return at.Key, nil
}
