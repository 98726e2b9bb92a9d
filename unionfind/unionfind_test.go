package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/unionfind"
)

// TestNew_Errors verifies that New rejects negative sizes and accepts zero.
func TestNew_Errors(t *testing.T) {
	_, err := unionfind.New(-1)
	assert.ErrorIs(t, err, unionfind.ErrNegativeSize, "negative size must error")

	ds, err := unionfind.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Equal(t, 0, ds.Count())
}

// TestNew_Singletons checks that every element starts as its own root.
func TestNew_Singletons(t *testing.T) {
	ds, err := unionfind.New(5)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.Equal(t, i, ds.Find(i), "Find(%d) on a fresh set", i)
		assert.Equal(t, 1, ds.Size(i), "Size(%d) on a fresh set", i)
	}
	assert.Equal(t, 5, ds.Count())
	assert.Equal(t, 5, ds.Len())
}

// TestUnion_TwoElements verifies a single merge.
func TestUnion_TwoElements(t *testing.T) {
	ds, err := unionfind.New(5)
	require.NoError(t, err)

	ds.Union(1, 3)

	assert.True(t, ds.Connected(1, 3))
	assert.False(t, ds.Connected(1, 2))
	assert.Equal(t, 2, ds.Size(3))
	assert.Equal(t, 4, ds.Count())
	root := ds.Find(1)
	assert.Contains(t, []int{1, 3}, root, "root must be one of the merged elements")
}

// TestUnion_Idempotent checks that re-joining an existing group changes nothing.
func TestUnion_Idempotent(t *testing.T) {
	ds, err := unionfind.New(4)
	require.NoError(t, err)

	ds.Union(0, 1)
	root := ds.Find(0)
	ds.Union(1, 0)
	ds.Union(0, 0)

	assert.Equal(t, root, ds.Find(1))
	assert.Equal(t, 3, ds.Count(), "repeated Union must not change the group count")
	assert.Equal(t, 2, ds.Size(0))
}

// TestUnion_MultipleGroups builds {0,1,2} and {3,4,5} and then joins them.
func TestUnion_MultipleGroups(t *testing.T) {
	ds, err := unionfind.New(6)
	require.NoError(t, err)

	ds.Union(0, 1)
	ds.Union(1, 2)
	ds.Union(3, 4)
	ds.Union(4, 5)

	assert.True(t, ds.Connected(0, 2))
	assert.True(t, ds.Connected(3, 5))
	assert.False(t, ds.Connected(0, 3))
	assert.Equal(t, 2, ds.Count())

	ds.Union(2, 4)

	root := ds.Find(0)
	for i := 1; i < 6; i++ {
		assert.Equal(t, root, ds.Find(i), "after full union, Find(%d)", i)
	}
	assert.Equal(t, 6, ds.Size(5))
	assert.Equal(t, 1, ds.Count())
}

// TestUnion_BySize ensures the smaller tree is attached under the larger root,
// regardless of argument order.
func TestUnion_BySize(t *testing.T) {
	ds, err := unionfind.New(4)
	require.NoError(t, err)

	ds.Union(0, 1)
	ds.Union(0, 2)
	bigRoot := ds.Find(0)

	ds.Union(3, 0)

	assert.Equal(t, bigRoot, ds.Find(3), "singleton must attach under the larger root")
}

// TestFind_Idempotent verifies that Find returns a stable root.
func TestFind_Idempotent(t *testing.T) {
	ds, err := unionfind.New(8)
	require.NoError(t, err)
	for i := 1; i < 8; i++ {
		ds.Union(i-1, i)
	}

	for i := 0; i < 8; i++ {
		first := ds.Find(i)
		assert.Equal(t, first, ds.Find(i))
		assert.Equal(t, first, ds.Find(first), "root must be its own root")
	}
}
