package binary

import (
	"go.lepak.sg/trees/tree"
)

// rebalance walks from x up to the root, inclusive, restoring the
// AVL height invariant wherever it finds it violated.
// Subtree heights are recomputed from scratch at every step; nothing
// is cached on the nodes.
//
// A node that is too heavy on one side is fixed with a single
// rotation when the heavy child leans the same way or is even
// (the straight-line case), or with a double rotation when it leans
// the other way (the zig-zag case). After fixing a node the walk
// continues from its parent, which after a rotation is the node
// that was just promoted.
//
// Ref: MIT OCW 6.006 fall 2011, lecture 6.
func (t *Tree[T]) rebalance(x *tree.Node[T]) {
	for x != nil {
		lh, rh := x.Left.Height(), x.Right.Height()

		if lh > rh+1 {
			// left heavy; x.Left exists since lh >= 1
			if x.Left.Left.Height() >= x.Left.Right.Height() {
				t.rotateRight(x)
			} else {
				t.rotateLeft(x.Left)
				t.rotateRight(x)
			}
		} else if rh > lh+1 {
			if x.Right.Right.Height() >= x.Right.Left.Height() {
				t.rotateLeft(x)
			} else {
				t.rotateRight(x.Right)
				t.rotateLeft(x)
			}
		}

		x = x.Parent
	}
}
