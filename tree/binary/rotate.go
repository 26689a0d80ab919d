package binary

import (
	"go.lepak.sg/trees/tree"
)

// rotateLeft rotates the subtree rooted at x to the left,
// promoting x's right child y into x's old position:
//
//	  -> x            y
//	    / \          / \
//	   m   y   ->   x   q
//	      / \      / \
//	     o   q    m   o
//
// The ordering invariant m < x <= o < y <= q is preserved.
// x's old parent (or the tree root) now references y.
// Exactly three parent back-references change: y's, x's, and o's.
// CLRS 13.2 LEFT-ROTATE.
func (t *Tree[T]) rotateLeft(x *tree.Node[T]) {
	y := x.Right
	if y == nil {
		return
	}

	// y's left subtree moves over to x
	x.Right = y.Left
	if y.Left != nil {
		y.Left.Parent = x
	}

	// y takes x's slot
	y.Parent = x.Parent
	switch {
	case x.Parent == nil:
		t.root = y
	case x == x.Parent.Left:
		x.Parent.Left = y
	default:
		x.Parent.Right = y
	}

	// x becomes y's left child
	y.Left = x
	x.Parent = y
}

// rotateRight mirrors rotateLeft, promoting x's left child y:
//
//	  -> x            y
//	    / \          / \
//	   y   o   ->   k   x
//	  / \              / \
//	 k   m            m   o
//
// The ordering invariant k < y <= m < x <= o is preserved.
func (t *Tree[T]) rotateRight(x *tree.Node[T]) {
	y := x.Left
	if y == nil {
		return
	}

	x.Left = y.Right
	if y.Right != nil {
		y.Right.Parent = x
	}

	y.Parent = x.Parent
	switch {
	case x.Parent == nil:
		t.root = y
	case x == x.Parent.Left:
		x.Parent.Left = y
	default:
		x.Parent.Right = y
	}

	y.Right = x
	x.Parent = y
}
