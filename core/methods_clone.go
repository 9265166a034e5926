// File: methods_clone.go
// Role: structural copies of a graph.
// Determinism:
//   - Clone keeps edge IDs and adjacency order identical to the source.
// Concurrency:
//   - Read lock on the source only; the clone is private until returned.

package core

import "fmt"

// CloneEmpty returns a new Graph of the same order with no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	return NewGraph(g.order)
}

// Clone returns a structural copy of g: fresh Edge records with the same
// IDs, endpoints, weights and flags, and adjacency rebuilt from the owned
// edge list in a single pass. Associated Path slices are shared, since they
// point at edges of whatever graph produced the shortcut.
//
// Replaying edges in ID order reproduces the source adjacency exactly,
// because AddEdge appends to both endpoint lists in that same order.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(g.order)
	clone.edges = make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Required: e.Required, Path: e.Path}
		clone.edges = append(clone.edges, ne)
		clone.adj[e.From] = append(clone.adj[e.From], ne.ID)
		clone.adj[e.To] = append(clone.adj[e.To], ne.ID)
		clone.markActive(e.From)
		clone.markActive(e.To)
	}

	return clone
}

// Subgraph returns a new graph of the same order holding copies of the
// edges for which keep returns true. Edge IDs are renumbered densely.
//
// Every edge of g already passed AddEdge validation, so an error here means
// an Edge record was modified after insertion.
// Complexity: O(V + E).
func (g *Graph) Subgraph(keep func(*Edge) bool) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sub := NewGraph(g.order)
	for _, e := range g.edges {
		if !keep(e) {
			continue
		}
		_, err := sub.addEdgeLocked(e.From, e.To, e.Weight, func(ne *Edge) {
			ne.Required = e.Required
			ne.Path = e.Path
		})
		if err != nil {
			return nil, fmt.Errorf("Subgraph: edge %d: %w", e.ID, err)
		}
	}

	return sub, nil
}
