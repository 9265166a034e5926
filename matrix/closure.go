package matrix

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const opTransitiveClosure = "TransitiveClosure"

// TransitiveClosure computes the reachability matrix of g (Roy–Warshall).
//
// reach starts as identity ∪ adjacency; then for k in 0..n, for every i that
// reaches k, row i absorbs row k: reach[i][j] |= reach[k][j].
//
// Complexity: Time O(V³) worst case, Space O(V²).
func TransitiveClosure(g *core.Graph) (*Reachability, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opTransitiveClosure, ErrGraphNil)
	}

	n := g.Order()
	r := &Reachability{n: n, reach: make([]bool, n*n)}
	for i := 0; i < n; i++ {
		r.reach[i*n+i] = true
	}
	for _, e := range g.Edges() {
		r.reach[e.From*n+e.To] = true
		r.reach[e.To*n+e.From] = true
	}

	var k, i, j int
	for k = 0; k < n; k++ {
		rowK := r.reach[k*n : (k+1)*n]
		for i = 0; i < n; i++ {
			if !r.reach[i*n+k] {
				continue
			}
			rowI := r.reach[i*n : (i+1)*n]
			for j = 0; j < n; j++ {
				if rowK[j] {
					rowI[j] = true
				}
			}
		}
	}

	return r, nil
}

// Order returns the matrix dimension n.
func (r *Reachability) Order() int { return r.n }

// Reaches reports whether j is reachable from i. Out-of-range is false.
func (r *Reachability) Reaches(i, j int) bool {
	if i < 0 || i >= r.n || j < 0 || j >= r.n {
		return false
	}

	return r.reach[i*r.n+j]
}

// Row returns a copy of the reachability row of i, nil when out of range.
func (r *Reachability) Row(i int) []bool {
	if i < 0 || i >= r.n {
		return nil
	}
	out := make([]bool, r.n)
	copy(out, r.reach[i*r.n:(i+1)*r.n])

	return out
}
