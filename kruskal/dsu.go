package kruskal

// DisjointSet is a union-find forest over ids [0, n).
//
// Invariants:
//   - Find returns a root r with parent[r] == r.
//   - Union attaches the lower-rank root under the higher-rank one, so tree
//     height stays O(log n) even before path compression.
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int
}

// NewDisjointSet returns n singleton sets. Negative n is treated as 0.
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{parent: make([]int, n), rank: make([]int, n), sets: n}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the root of x's set, compressing the path on the way.
// Iterative (path halving) to avoid deep recursion.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of x and y by rank. It returns false when they were
// already in the same set.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Connected reports whether x and y are in the same set.
func (d *DisjointSet) Connected(x, y int) bool { return d.Find(x) == d.Find(y) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }
