package binary

import (
	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// The traversal methods below all apply f to each key in the tree
// once, in the order the method name implies, and stop early if f
// returns false. Each call walks the tree afresh.
//
// The recursive forms (PreOrder, InOrder, PostOrder) use the call
// stack, so on a degenerate near-linear tree they go as deep as the
// tree is tall. The *Iter forms keep an explicit stack (or queue)
// instead and are the safe choice for arbitrary input.

// PreOrder visits node, left subtree, right subtree, recursively.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	preOrderVisit(t.root, f)
}

func preOrderVisit[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}
	if !f(n.Key) {
		return false
	}
	if !preOrderVisit(n.Left, f) {
		return false
	}
	return preOrderVisit(n.Right, f)
}

// PreOrderIter is PreOrder with an explicit stack.
// The right child is pushed before the left one, so the left
// subtree is processed first.
func (t *Tree[T]) PreOrderIter(f func(k T) bool) {
	if t.root == nil {
		return
	}

	stack := []*tree.Node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f(n.Key) {
			return
		}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
}

// InOrder visits left subtree, node, right subtree, recursively.
// On a search tree this yields the keys in non-decreasing order.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	inOrderVisit(t.root, f)
}

func inOrderVisit[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}
	if !inOrderVisit(n.Left, f) {
		return false
	}
	if !f(n.Key) {
		return false
	}
	return inOrderVisit(n.Right, f)
}

// InOrderIter is InOrder with an explicit stack: descend left
// pushing nodes until there is no left child, pop and visit, then
// descend into the right subtree.
func (t *Tree[T]) InOrderIter(f func(k T) bool) {
	var stack []*tree.Node[T]

	n := t.root
	for n != nil || len(stack) > 0 {
		if n != nil {
			stack = append(stack, n)
			n = n.Left
			continue
		}

		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(n.Key) {
			return
		}
		n = n.Right
	}
}

// PostOrder visits left subtree, right subtree, node, recursively.
func (t *Tree[T]) PostOrder(f func(k T) bool) {
	postOrderVisit(t.root, f)
}

func postOrderVisit[T constraints.Ordered](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}
	if !postOrderVisit(n.Left, f) {
		return false
	}
	if !postOrderVisit(n.Right, f) {
		return false
	}
	return f(n.Key)
}

// PostOrderTwoStacks is PostOrder with two explicit stacks: the
// first pops nodes pushing left then right, building up a reversed
// post-order in the second, which is then drained.
func (t *Tree[T]) PostOrderTwoStacks(f func(k T) bool) {
	if t.root == nil {
		return
	}

	build := []*tree.Node[T]{t.root}
	emit := make([]*tree.Node[T], 0, t.count)

	for len(build) > 0 {
		n := build[len(build)-1]
		build = build[:len(build)-1]
		emit = append(emit, n)

		if n.Left != nil {
			build = append(build, n.Left)
		}
		if n.Right != nil {
			build = append(build, n.Right)
		}
	}

	for i := len(emit) - 1; i >= 0; i-- {
		if !f(emit[i].Key) {
			return
		}
	}
}

// PostOrderOneStack is PostOrder with a single explicit stack.
// It remembers the last node visited: when control returns to a
// node whose right child exists but was not just visited, it
// descends right instead of emitting the node.
func (t *Tree[T]) PostOrderOneStack(f func(k T) bool) {
	var stack []*tree.Node[T]
	var last *tree.Node[T]

	n := t.root
	for n != nil || len(stack) > 0 {
		if n != nil {
			stack = append(stack, n)
			n = n.Left
			continue
		}

		top := stack[len(stack)-1]
		if top.Right != nil && last != top.Right {
			n = top.Right
			continue
		}

		stack = stack[:len(stack)-1]
		if !f(top.Key) {
			return
		}
		last = top
	}
}

// BreadthFirst visits the keys level by level, left to right,
// using a FIFO queue. Auxiliary memory is proportional to the
// widest level rather than the height.
func (t *Tree[T]) BreadthFirst(f func(k T) bool) {
	if t.root == nil {
		return
	}

	queue := []*tree.Node[T]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if !f(n.Key) {
			return
		}
		if n.Left != nil {
			queue = append(queue, n.Left)
		}
		if n.Right != nil {
			queue = append(queue, n.Right)
		}
	}
}
