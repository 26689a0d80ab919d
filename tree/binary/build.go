package binary

import (
	"math/rand"

	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/constraints"
)

// Slot is one key-or-absent position in a level-order tree layout.
type Slot[T any] struct {
	Key     T
	Present bool
}

// Of returns a Slot holding k.
func Of[T any](k T) Slot[T] {
	return Slot[T]{Key: k, Present: true}
}

// None returns an absent Slot.
func None[T any]() Slot[T] {
	return Slot[T]{}
}

// FromLevelOrder builds a tree from its level-order (breadth-first)
// layout: the root first, then the left and right child slot of
// every position seen so far, in turn, with absent positions marked
// by None. For example
//
//	FromLevelOrder([]Slot[int]{
//		Of(5), Of(3), Of(8), None[int](), Of(4), None[int](), Of(9),
//	})
//
// builds
//
//	5
//	├─L─3
//	│   └─R─4
//	└─R─8
//	    └─R─9
//
// An empty layout or an absent first slot builds an empty tree.
// A layout that supplies child slots for a position that was itself
// absent fails with ErrMalformedLayout; nothing is returned in that
// case.
//
// The layout is taken as-is: keys are not required to satisfy the
// search ordering, so this is also the way to build an arbitrary
// shape for the traversal methods. The result is an Unbalanced tree.
func FromLevelOrder[T constraints.Ordered](layout []Slot[T]) (*Tree[T], error) {
	if len(layout) == 0 || !layout[0].Present {
		return &Tree[T]{}, nil
	}

	root := tree.NodeOf(layout[0].Key)
	count := 1

	// FIFO of positions whose child slots come next in the layout.
	// Absent children are queued too, to keep the layout and the
	// queue in step; handing one a child slot is the error case.
	queue := []*tree.Node[T]{root}

	for i := 1; i < len(layout); i += 2 {
		parent := queue[0]
		queue = queue[1:]
		if parent == nil {
			return nil, ErrMalformedLayout
		}

		if layout[i].Present {
			parent.Left = tree.NodeOf(layout[i].Key)
			parent.Left.Parent = parent
			count++
		}
		queue = append(queue, parent.Left)

		if i+1 < len(layout) {
			if layout[i+1].Present {
				parent.Right = tree.NodeOf(layout[i+1].Key)
				parent.Right.Parent = parent
				count++
			}
			queue = append(queue, parent.Right)
		}
	}

	return &Tree[T]{root: root, count: count}, nil
}

// Random builds an unbalanced tree holding the keys [0, num),
// inserted in a random order. The seed for the insert order is a
// parameter, which ensures repeatable results.
func Random(num int, seed int64) *Tree[int] {
	return random(num, seed, Unbalanced)
}

// RandomAVL is Random with the AVL strategy, so the resulting tree
// is height-balanced no matter the insert order.
func RandomAVL(num int, seed int64) *Tree[int] {
	return random(num, seed, AVL)
}

func random(num int, seed int64, balance Balance) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := 0; i < num; i++ {
		keys[i] = i
	}
	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	tr := &Tree[int]{balance: balance}
	tr.InsertAll(keys...)

	return tr
}
