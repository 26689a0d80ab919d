package iterator

import (
	"go.lepak.sg/trees/tree"
)

var _ Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree.
// It follows parent back-references instead of keeping a stack,
// so it needs no auxiliary memory at all.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T comparable] struct {
	root, at *tree.Node[T]
}

// NewInOrder returns a new InOrder iterator over the tree rooted at
// root. Note: This is meant to be called by tree implementations.
func NewInOrder[T comparable](root *tree.Node[T]) *InOrder[T] {
	return &InOrder[T]{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	if i.at == nil {
		i.at = i.root
		if i.at == nil {
			return false
		}

		for i.at.Left != nil {
			i.at = i.at.Left
		}
		return true
	}

	if i.at.Right != nil {
		i.at = i.at.Right

		for i.at.Left != nil {
			i.at = i.at.Left
		}

		return true
	}

	// climb until we arrive at a parent from its left child
	var child *tree.Node[T]
	for i.at != nil {
		i.at, child = i.at.Parent, i.at
		if i.at != nil && i.at.Left == child {
			return true
		}
	}

	return false
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	return i.at.Key
}
