package kruskal

import (
	"fmt"
	"math"
	"sort"
)

// Kruskal computes a minimum spanning tree over meta-nodes [0, n) from the
// given candidate edges.
//
// Error Conditions:
//   - ErrBadNodeCount  : n < 0.
//   - ErrEndpointRange : a candidate endpoint outside [0, n).
//   - ErrDisconnected  : fewer than n−1 edges could be accepted.
//
// Steps:
//  1. Validate n and candidate endpoints; drop self-edges and +Inf weights.
//  2. Sort a copy of the candidates by (Weight, From, To) ascending, with the
//     pair normalized so From < To.
//  3. Initialize a DisjointSet over n meta-nodes.
//  4. Accept an edge iff Union(From, To) merges two sets; stop at n−1 edges.
//
// The candidate slice is not modified.
// Complexity: O(E log E + α(n)·E). Memory: O(E + n).
func Kruskal(n int, candidates []MetaEdge) ([]MetaEdge, float64, error) {
	if n < 0 {
		return nil, 0, ErrBadNodeCount
	}
	if n <= 1 {
		return []MetaEdge{}, 0, nil
	}

	edges := make([]MetaEdge, 0, len(candidates))
	for _, c := range candidates {
		if c.From < 0 || c.From >= n || c.To < 0 || c.To >= n {
			return nil, 0, fmt.Errorf("Kruskal: edge (%d,%d) with n=%d: %w", c.From, c.To, n, ErrEndpointRange)
		}
		if c.From == c.To || math.IsInf(c.Weight, 1) || math.IsNaN(c.Weight) {
			continue
		}
		if c.From > c.To {
			c.From, c.To = c.To, c.From
			c.U, c.V = c.V, c.U
			c.Path = reversed(c.Path)
		}
		edges = append(edges, c)
	}

	sort.SliceStable(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	var (
		dsu   = NewDisjointSet(n)
		tree  = make([]MetaEdge, 0, n-1)
		total float64
	)
	for _, e := range edges {
		if !dsu.Union(e.From, e.To) {
			continue // would close a cycle
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == n-1 {
			break
		}
	}

	if len(tree) < n-1 {
		return nil, 0, fmt.Errorf("Kruskal: %d of %d edges, %d sets remain: %w",
			len(tree), n-1, dsu.Sets(), ErrDisconnected)
	}

	return tree, total, nil
}
