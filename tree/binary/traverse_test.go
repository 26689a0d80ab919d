package binary

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// layoutFixture builds
//
//	5
//	├─L─3
//	│   └─R─4
//	└─R─8
//	    └─R─9
func layoutFixture(t *testing.T) *Tree[int] {
	t.Helper()
	tr, err := FromLevelOrder([]Slot[int]{
		Of(5), Of(3), Of(8), None[int](), Of(4), None[int](), Of(9),
	})
	require.NoError(t, err)
	return tr
}

func collect[T any](walk func(f func(k T) bool)) []T {
	var out []T
	walk(func(k T) bool {
		out = append(out, k)
		return true
	})
	return out
}

func TestTraversalOrders(t *testing.T) {
	tr := layoutFixture(t)

	tests := []struct {
		name string
		walk func(f func(k int) bool)
		want []int
	}{
		{"PreOrder", tr.PreOrder, []int{5, 3, 4, 8, 9}},
		{"PreOrderIter", tr.PreOrderIter, []int{5, 3, 4, 8, 9}},
		{"InOrder", tr.InOrder, []int{3, 4, 5, 8, 9}},
		{"InOrderIter", tr.InOrderIter, []int{3, 4, 5, 8, 9}},
		{"PostOrder", tr.PostOrder, []int{4, 3, 9, 8, 5}},
		{"PostOrderTwoStacks", tr.PostOrderTwoStacks, []int{4, 3, 9, 8, 5}},
		{"PostOrderOneStack", tr.PostOrderOneStack, []int{4, 3, 9, 8, 5}},
		{"BreadthFirst", tr.BreadthFirst, []int{5, 3, 8, 4, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tt.walk))
			// traversal is restartable: a second walk sees the same keys
			assert.Equal(t, tt.want, collect(tt.walk))
		})
	}
}

func TestTraversalEmptyTree(t *testing.T) {
	tr := New[int]()

	for name, walk := range map[string]func(f func(k int) bool){
		"PreOrder":           tr.PreOrder,
		"PreOrderIter":       tr.PreOrderIter,
		"InOrder":            tr.InOrder,
		"InOrderIter":        tr.InOrderIter,
		"PostOrder":          tr.PostOrder,
		"PostOrderTwoStacks": tr.PostOrderTwoStacks,
		"PostOrderOneStack":  tr.PostOrderOneStack,
		"BreadthFirst":       tr.BreadthFirst,
	} {
		assert.Empty(t, collect(walk), name)
	}
}

func TestTraversalEarlyStop(t *testing.T) {
	tr := layoutFixture(t)

	walks := map[string]func(f func(k int) bool){
		"PreOrder":           tr.PreOrder,
		"PreOrderIter":       tr.PreOrderIter,
		"InOrder":            tr.InOrder,
		"InOrderIter":        tr.InOrderIter,
		"PostOrder":          tr.PostOrder,
		"PostOrderTwoStacks": tr.PostOrderTwoStacks,
		"PostOrderOneStack":  tr.PostOrderOneStack,
		"BreadthFirst":       tr.BreadthFirst,
	}
	for name, walk := range walks {
		visited := 0
		walk(func(k int) bool {
			visited++
			return visited < 3
		})
		assert.Equal(t, 3, visited, name)
	}
}

func TestTraversalsAgree(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x7124))

	for _, size := range []int{1, 2, 10, 100, 1000} {
		for round := 0; round < 5; round++ {
			seed := int64(seedrd.Uint64())
			tr := Random(size, seed)

			t.Run(fmt.Sprintf("size=%d/seed=%x", size, seed), func(t *testing.T) {
				pre := collect(tr.PreOrder)
				assert.Equal(t, pre, collect(tr.PreOrderIter), "pre-order variants disagree")

				in := collect(tr.InOrder)
				assert.Equal(t, in, collect(tr.InOrderIter), "in-order variants disagree")
				assert.True(t, slices.IsSorted(in), "in-order out of order")

				post := collect(tr.PostOrder)
				assert.Equal(t, post, collect(tr.PostOrderTwoStacks), "two-stack post-order disagrees")
				assert.Equal(t, post, collect(tr.PostOrderOneStack), "one-stack post-order disagrees")

				bfs := collect(tr.BreadthFirst)
				require.Len(t, bfs, size)
				rootKey, ok := tr.Root()
				require.True(t, ok)
				assert.Equal(t, rootKey, bfs[0])

				// every variant visits the same key multiset
				for name, keys := range map[string][]int{
					"pre": pre, "post": post, "bfs": bfs,
				} {
					resorted := append([]int(nil), keys...)
					slices.Sort(resorted)
					assert.Equal(t, in, resorted, name)
				}
			})
		}
	}
}

func TestConcurrentReadersAgree(t *testing.T) {
	// the tree is safe for concurrent reads, so all traversals may
	// run at once and must come back with the same picture
	tr := RandomAVL(1000, 99)

	var (
		g                   errgroup.Group
		inRec, inIter, inCo []int
	)

	g.Go(func() error {
		inRec = collect(tr.InOrder)
		return nil
	})
	g.Go(func() error {
		inIter = collect(tr.InOrderIter)
		return nil
	})
	g.Go(func() error {
		for k := range tr.InOrderCoroutine().Items() {
			inCo = append(inCo, k)
		}
		return nil
	})

	require.NoError(t, g.Wait())
	assert.Equal(t, inRec, inIter)
	assert.Equal(t, inRec, inCo)
}
