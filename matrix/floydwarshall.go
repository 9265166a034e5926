// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order and
//     an intermediate-vertex table for exact path reconstruction.
//
// Contract:
//   - Input is an undirected *core.Graph with non-negative weights (core
//     enforces this on insertion). +Inf means "no path"; the diagonal is 0.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/postman/core"
)

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall = "FloydWarshall"
	opPath          = "Path"
)

// FloydWarshall computes all-pairs shortest paths over g.
//
// Implementation:
//   - Stage 1: dist = 0 on the diagonal, +Inf elsewhere; via = noVia.
//   - Stage 2: one pass over g.Edges() (ascending ID). For every non-loop
//     edge {u,v} keep it as direct[u,v] = direct[v,u] when strictly cheaper
//     than the current cell, so the lowest-ID edge wins among equal weights.
//   - Stage 3: relax in fixed k → i → j order; on strict improvement record k.
//
// Self-loops never shorten anything and are ignored.
//
// Complexity: Time O(V³ + E), Space O(V²).
func FloydWarshall(g *core.Graph) (*ShortestPaths, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, ErrGraphNil)
	}

	n := g.Order()
	sp := &ShortestPaths{
		n:      n,
		dist:   make([]float64, n*n),
		via:    make([]int, n*n),
		direct: make([]*core.Edge, n*n),
	}

	inf := math.Inf(1)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sp.via[i*n+j] = noVia
			if i != j {
				sp.dist[i*n+j] = inf
			}
		}
	}

	var e *core.Edge
	for _, e = range g.Edges() {
		if e.IsLoop() {
			continue
		}
		uv, vu := e.From*n+e.To, e.To*n+e.From
		if e.Weight < sp.dist[uv] { // strict: first (lowest-ID) edge wins ties
			sp.dist[uv], sp.dist[vu] = e.Weight, e.Weight
			sp.direct[uv], sp.direct[vu] = e, e
		}
	}

	sp.relax()

	return sp, nil
}

// relax runs one full Floyd–Warshall sweep over the current table and
// returns the number of strict improvements it made.
//
// Loop order is fixed (k → i → j). Row k and column k cannot change during
// iteration k (dist[k,k] = 0), so in-place updates are safe.
// Time: O(n³); no allocations inside the hot loops.
func (sp *ShortestPaths) relax() int {
	n := sp.n
	data := sp.dist

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
		improved     int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				if j == k || j == i {
					continue
				}
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
					sp.via[baseI+j] = k
					improved++
				}
			}
		}
	}

	return improved
}

// Relax re-runs relaxation over the already computed table and returns the
// number of cells it improved. On a table produced by FloydWarshall this is
// always 0: the result is a fixed point.
func (sp *ShortestPaths) Relax() int {
	return sp.relax()
}

// Order returns the table dimension n.
func (sp *ShortestPaths) Order() int { return sp.n }

// Dist returns the shortest distance from i to j, +Inf when unreachable or
// when either index is out of range.
// Complexity: O(1).
func (sp *ShortestPaths) Dist(i, j int) float64 {
	if i < 0 || i >= sp.n || j < 0 || j >= sp.n {
		return math.Inf(1)
	}

	return sp.dist[i*sp.n+j]
}

// Reachable reports whether j is reachable from i.
func (sp *ShortestPaths) Reachable(i, j int) bool {
	return !math.IsInf(sp.Dist(i, j), 1)
}

// Path returns the real edges of a shortest i→j path in walk order.
// Path(i,i) is empty. An unreachable pair returns ErrNoPath.
//
// Implementation:
//   - An explicit stack of (a,b) segments replaces recursion: a segment with
//     a recorded intermediate k is split into (a,k) and (k,b); a segment
//     without one is emitted as its direct edge.
//   - Segments are pushed right-first so they pop in walk order.
//
// Complexity: O(L) where L is the number of hops (L ≤ V−1 for positive
// weights); a hard bound of V² pops guards against a corrupted table.
func (sp *ShortestPaths) Path(i, j int) ([]*core.Edge, error) {
	if i < 0 || i >= sp.n || j < 0 || j >= sp.n {
		return nil, fmt.Errorf("%s: (%d,%d) with n=%d: %w", opPath, i, j, sp.n, ErrOutOfRange)
	}
	if i == j {
		return []*core.Edge{}, nil
	}
	if math.IsInf(sp.dist[i*sp.n+j], 1) {
		return nil, fmt.Errorf("%s: %d→%d: %w", opPath, i, j, ErrNoPath)
	}

	type segment struct{ a, b int }
	var (
		path  []*core.Edge
		stack = []segment{{i, j}}
		seg   segment
		k     int
		pops  int
		bound = sp.n*sp.n + 1
	)
	for len(stack) > 0 {
		if pops++; pops > bound {
			return nil, fmt.Errorf("%s: %d→%d: %w", opPath, i, j, ErrCorruptPath)
		}
		seg = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seg.a == seg.b {
			continue
		}

		k = sp.via[seg.a*sp.n+seg.b]
		if k == noVia {
			e := sp.direct[seg.a*sp.n+seg.b]
			if e == nil {
				return nil, fmt.Errorf("%s: %d→%d: missing direct edge %d→%d: %w",
					opPath, i, j, seg.a, seg.b, ErrCorruptPath)
			}
			path = append(path, e)
			continue
		}
		// right half first so the left half is emitted first
		stack = append(stack, segment{k, seg.b}, segment{seg.a, k})
	}

	return path, nil
}

// PathVertices returns the vertex sequence i, …, j of a shortest path.
// Orientation of each hop follows from the current vertex, so it is exact
// even across parallel edges.
func (sp *ShortestPaths) PathVertices(i, j int) ([]int, error) {
	edges, err := sp.Path(i, j)
	if err != nil {
		return nil, err
	}

	walk := make([]int, 0, len(edges)+1)
	cur := i
	walk = append(walk, cur)
	for _, e := range edges {
		cur = e.Other(cur)
		walk = append(walk, cur)
	}

	return walk, nil
}
