package kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/matrix"
)

// MetaGraph builds the candidate edges of the complete meta-graph over
// groups: for every pair i < j it finds the closest vertex pair (u in
// groups[i], v in groups[j]) by shortest-path distance, breaking ties by the
// lowest (u, v), and annotates the edge with the real u→v path.
//
// Pairs of groups with no finite connecting path produce no candidate; a
// later Kruskal run then reports ErrDisconnected.
//
// Complexity: O(Σ|Gi|·|Gj|) lookups plus one path reconstruction per pair.
func MetaGraph(groups [][]int, sp *matrix.ShortestPaths) ([]MetaEdge, error) {
	if sp == nil {
		return nil, ErrNilPaths
	}
	for i, grp := range groups {
		if len(grp) == 0 {
			return nil, fmt.Errorf("MetaGraph: group %d: %w", i, ErrEmptyGroup)
		}
	}

	var out []MetaEdge
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			u, v, d := closestPair(groups[i], groups[j], sp)
			if math.IsInf(d, 1) {
				continue
			}
			path, err := sp.Path(u, v)
			if err != nil {
				return nil, fmt.Errorf("MetaGraph: groups %d-%d: %w", i, j, err)
			}
			out = append(out, MetaEdge{From: i, To: j, U: u, V: v, Weight: d, Path: path})
		}
	}

	return out, nil
}

// Link connects all groups at minimum total shortest-path cost. The returned
// tree has len(groups)−1 edges whose Path fields are the real edges to be
// materialized.
func Link(groups [][]int, sp *matrix.ShortestPaths) ([]MetaEdge, float64, error) {
	candidates, err := MetaGraph(groups, sp)
	if err != nil {
		return nil, 0, err
	}

	return Kruskal(len(groups), candidates)
}

// closestPair scans a × b for the minimum distance; strict comparison over
// ascending-sorted inputs keeps the lowest (u, v) among minimizers.
func closestPair(a, b []int, sp *matrix.ShortestPaths) (int, int, float64) {
	bu, bv, best := -1, -1, math.Inf(1)
	for _, u := range a {
		for _, v := range b {
			d := sp.Dist(u, v)
			if d < best || (d == best && bu >= 0 && (u < bu || (u == bu && v < bv))) {
				bu, bv, best = u, v, d
			}
		}
	}

	return bu, bv, best
}

// reversed returns a new slice with the hops of path in reverse order.
func reversed(path []*core.Edge) []*core.Edge {
	if path == nil {
		return nil
	}
	out := make([]*core.Edge, len(path))
	for i, e := range path {
		out[len(path)-1-i] = e
	}

	return out
}
