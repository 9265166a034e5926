// Package core: edge mutation and edge queries.
//
// Adjacency is a per-vertex slice of indices into the owned edge slice, so
// insertion is O(1) amortized and every query walks at most deg(v) entries.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends a new undirected edge {from,to} and returns it.
//
// Implementation:
//   - Stage 1: Validate both endpoints and the weight.
//   - Stage 2: Build the Edge with ID = current edge count, apply options.
//   - Stage 3: Register the edge index at both endpoints (twice at one
//     vertex for a self-loop) and mark both endpoints active.
//
// Returns ErrVertexOutOfRange or ErrBadWeight (wrapped with the offending values).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64, opts ...EdgeOption) (*Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(from, to, weight, opts...)
}

func (g *Graph) addEdgeLocked(from, to int, weight float64, opts ...EdgeOption) (*Edge, error) {
	if from < 0 || from >= g.order || to < 0 || to >= g.order {
		return nil, fmt.Errorf("AddEdge: {%d,%d} with order %d: %w", from, to, g.order, ErrVertexOutOfRange)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, fmt.Errorf("AddEdge: {%d,%d} weight %v: %w", from, to, weight, ErrBadWeight)
	}

	e := &Edge{ID: len(g.edges), From: from, To: to, Weight: weight}
	for _, opt := range opts {
		opt(e)
	}
	g.edges = append(g.edges, e)

	// a self-loop is registered twice so len(adj[v]) is the handshake degree
	g.adj[from] = append(g.adj[from], e.ID)
	g.adj[to] = append(g.adj[to], e.ID)
	g.markActive(from)
	g.markActive(to)

	return e, nil
}

// AddPath materializes a path: for each edge of path it adds a fresh,
// non-required copy with the same endpoints and weight. The copies are
// returned in path order. The operation is all-or-nothing: on error the
// graph is left untouched.
// Complexity: O(len(path)).
func (g *Graph) AddPath(path []*Edge) ([]*Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// validate first so a bad hop never leaves a half-applied path behind
	for i, e := range path {
		if e == nil {
			return nil, fmt.Errorf("AddPath: hop %d: %w", i, ErrNilEdge)
		}
		if e.From < 0 || e.From >= g.order || e.To < 0 || e.To >= g.order {
			return nil, fmt.Errorf("AddPath: hop %d {%d,%d}: %w", i, e.From, e.To, ErrVertexOutOfRange)
		}
	}

	added := make([]*Edge, 0, len(path))
	for _, e := range path {
		ne, err := g.addEdgeLocked(e.From, e.To, e.Weight)
		if err != nil {
			return nil, err
		}
		added = append(added, ne)
	}

	return added, nil
}

// HasEdge reports whether at least one edge joins v and w.
// Out-of-range vertices simply yield false.
// Complexity: O(deg(v)).
func (g *Graph) HasEdge(v, w int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.firstEdgeLocked(v, w) != nil
}

// Weight returns the weight of the lowest-ID edge joining v and w, or 0 when
// there is none. A missing edge and a zero-weight edge are indistinguishable
// here; use HasEdge to tell them apart.
// Complexity: O(deg(v)).
func (g *Graph) Weight(v, w int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if e := g.firstEdgeLocked(v, w); e != nil {
		return e.Weight
	}

	return 0
}

// EdgesBetween returns every parallel edge joining v and w, ascending by ID.
// A self-loop at v is reported once for EdgesBetween(v, v).
// Complexity: O(deg(v)).
func (g *Graph) EdgesBetween(v, w int) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*Edge
	for _, e := range g.incidentLocked(v) {
		if e.Other(v) == w {
			out = append(out, e)
		}
	}

	return out
}

// Edge returns the edge with the given ID, or nil.
func (g *Graph) Edge(id int) *Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || id >= len(g.edges) {
		return nil
	}

	return g.edges[id]
}

// Edges returns every edge exactly once, ascending by ID.
// The slice is fresh; the *Edge values are shared with the graph.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Incident returns the edges touching v, each exactly once, in adjacency
// (insertion) order. Self-loops, which sit twice in adjacency, are reported
// once per pair of registrations.
// Complexity: O(deg(v)).
func (g *Graph) Incident(v int) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.incidentLocked(v)
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// TotalWeight returns the sum of all edge weights. O(E).
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum float64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}

// Internal helpers (callers hold g.mu):
////////////////////

func (g *Graph) incidentLocked(v int) []*Edge {
	if v < 0 || v >= g.order {
		return nil
	}

	out := make([]*Edge, 0, len(g.adj[v]))
	loops := 0 // parity counter over self-loop registrations at v
	for _, id := range g.adj[v] {
		e := g.edges[id]
		if e.IsLoop() {
			loops++
			if loops%2 == 0 {
				continue
			}
		}
		out = append(out, e)
	}

	return out
}

func (g *Graph) firstEdgeLocked(v, w int) *Edge {
	if v < 0 || v >= g.order || w < 0 || w >= g.order {
		return nil
	}
	for _, id := range g.adj[v] {
		if e := g.edges[id]; e.Other(v) == w {
			return e
		}
	}

	return nil
}

func (g *Graph) markActive(v int) {
	if !g.active[v] {
		g.active[v] = true
		g.nAct++
	}
}
