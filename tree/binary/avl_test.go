package binary

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAVLSingleLeftRotation(t *testing.T) {
	tr := NewAVL[int]()
	tr.InsertAll(10, 20, 30)

	// one left rotation at 10 must have produced
	//	20
	//	├─L─10
	//	└─R─30
	require.NotNil(t, tr.root)
	assert.Equal(t, 20, tr.root.Key)
	assert.Nil(t, tr.root.Parent)

	require.NotNil(t, tr.root.Left)
	assert.Equal(t, 10, tr.root.Left.Key)
	assert.True(t, tr.root.Left.IsLeaf())
	assert.Same(t, tr.root, tr.root.Left.Parent)

	require.NotNil(t, tr.root.Right)
	assert.Equal(t, 30, tr.root.Right.Key)
	assert.True(t, tr.root.Right.IsLeaf())
	assert.Same(t, tr.root, tr.root.Right.Parent)

	assert.Equal(t, 1, tr.Height())
}

func TestAVLRotationCases(t *testing.T) {
	tests := []struct {
		name    string
		inserts []int
	}{
		{name: "right-right straight line", inserts: []int{10, 20, 30}},
		{name: "left-left straight line", inserts: []int{30, 20, 10}},
		{name: "right-left zig-zag", inserts: []int{10, 30, 20}},
		{name: "left-right zig-zag", inserts: []int{30, 10, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewAVL[int]()
			tr.InsertAll(tt.inserts...)

			require.NotNil(t, tr.root)
			assert.Equal(t, 20, tr.root.Key)
			assert.Equal(t, 10, tr.root.Left.Key)
			assert.Equal(t, 30, tr.root.Right.Key)
			assert.Equal(t, 1, tr.Height())
			checkParents(t, tr)
			checkBalanced(t, tr)
		})
	}
}

func TestAVLInvariantRandom(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0xa71))
	const rounds = 10

	for _, size := range []int{1, 2, 10, 100, 1000} {
		for i := 0; i < rounds; i++ {
			seed := int64(seedrd.Uint64())
			tr := RandomAVL(size, seed)

			checkBalanced(t, tr)
			checkParents(t, tr)
			assert.Equal(t, size, tr.Size())
		}
	}
}

func TestAVLInvariantWithDuplicates(t *testing.T) {
	rd := rand.New(rand.NewSource(7))
	tr := NewAVL[int]()

	for i := 0; i < 1000; i++ {
		tr.Insert(rd.Intn(50))
	}

	checkBalanced(t, tr)
	checkParents(t, tr)
}

func TestAVLHeightBound(t *testing.T) {
	// ascending inserts are the worst case for a plain BST:
	// the AVL strategy must keep height within 1.44*log2(n+2)
	for _, size := range []int{10, 100, 1000} {
		tr := NewAVL[int]()
		for i := 0; i < size; i++ {
			tr.Insert(i)
		}

		bound := 1.44 * math.Log2(float64(size)+2)
		assert.LessOrEqual(t, float64(tr.Height()), bound, "size %d", size)

		sorted := inOrderKeys(tr)
		require.Len(t, sorted, size)
		for i, k := range sorted {
			require.Equal(t, i, k)
		}
	}
}

func TestAVLRemoveDoesNotRebalance(t *testing.T) {
	// removal deliberately skips rebalancing; a tree can be left
	// outside the AVL invariant until later insertions fix it up
	tr := NewAVL[int]()
	tr.InsertAll(10, 20, 30, 40, 50, 25)

	require.NoError(t, tr.Remove(50))
	require.NoError(t, tr.Remove(40))

	// the keys must all still be reachable regardless of balance
	for _, k := range []int{10, 20, 25, 30} {
		assert.True(t, tr.Contains(k), "key %d", k)
	}
	assert.Equal(t, 4, tr.Size())
	checkParents(t, tr)
}
