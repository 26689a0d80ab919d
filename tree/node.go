// Package tree holds the node graph primitives shared by the tree
// implementations in this module.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is the building block of a binary tree.
// Left and Right are owning references to child subtrees.
// Parent is a non-owning back-reference used only for upward
// navigation: it must mirror the child edge exactly
// (if p.Left == n then n.Parent == p), and a node detached
// from the tree must not keep its old Parent.
type Node[T comparable] struct {
	Key                 T
	Left, Right, Parent *Node[T]
}

// NodeOf returns a fresh detached leaf holding k.
func NodeOf[T comparable](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// IsRoot reports whether n has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.Parent == nil
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Height returns the height of the subtree rooted at n,
// walking the whole subtree. A nil subtree has height -1,
// so a single leaf has height 0.
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}

	l, r := n.Left.Height(), n.Right.Height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// Instead of using constraints.Ordered for keys, I also considered
// interface[T any] { CompareTo(T) int } (forgive the syntax).
// That would let T mutate behind the tree's back and ruin the
// ordering invariant, so keys stay plain ordered values.

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
