package unionfind

import "errors"

// ErrNegativeSize indicates New was called with a negative element count.
var ErrNegativeSize = errors.New("unionfind: element count must be >= 0")

// DisjointSet partitions the elements [0, n) into disjoint groups.
// parent[x] == x marks a root; size is meaningful only at roots.
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}

// New creates a DisjointSet of n singleton groups.
// Returns ErrNegativeSize if n < 0. n == 0 yields an empty set.
// Complexity: O(n) time and memory.
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &DisjointSet{parent: parent, size: size, count: n}, nil
}

// Len returns the number of elements the set was created with.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Count returns the current number of disjoint groups.
func (ds *DisjointSet) Count() int {
	return ds.count
}

// Find returns the root of the group containing x.
// Every node on the walked path is re-pointed directly at the root.
// Complexity: amortized O(α(n)).
func (ds *DisjointSet) Find(x int) int {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	// Second pass: path compression.
	for ds.parent[x] != root {
		x, ds.parent[x] = ds.parent[x], root
	}

	return root
}

// Union merges the groups containing x and y. The root of the smaller group
// is attached under the root of the larger one; on a tie y's root goes under
// x's root. Union of two already joined elements is a no-op.
// Complexity: amortized O(α(n)).
func (ds *DisjointSet) Union(x, y int) {
	rootX, rootY := ds.Find(x), ds.Find(y)
	if rootX == rootY {
		return
	}
	if ds.size[rootX] < ds.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	ds.parent[rootY] = rootX
	ds.size[rootX] += ds.size[rootY]
	ds.count--
}

// Connected reports whether x and y belong to the same group.
func (ds *DisjointSet) Connected(x, y int) bool {
	return ds.Find(x) == ds.Find(y)
}

// Size returns the number of elements in the group containing x.
func (ds *DisjointSet) Size(x int) int {
	return ds.size[ds.Find(x)]
}
