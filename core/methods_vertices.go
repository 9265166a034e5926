// File: methods_vertices.go
// Role: vertex-level queries (order, degree, active set, parity).
// Determinism:
//   - ActiveVertices/OddVertices return ascending IDs.

package core

// Order returns the fixed vertex count V. O(1).
func (g *Graph) Order() int {
	// order never changes after NewGraph; no lock needed
	return g.order
}

// Degree returns the number of edge endpoints at v; a self-loop counts 2.
// Out-of-range vertices have degree 0.
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= g.order {
		return 0
	}

	return len(g.adj[v])
}

// IsActive reports whether v has at least one incident edge. O(1).
func (g *Graph) IsActive(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < g.order && g.active[v]
}

// ActiveCount returns the number of active vertices. O(1).
func (g *Graph) ActiveCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nAct
}

// ActiveVertices returns the active vertices in ascending order.
// Complexity: O(V).
func (g *Graph) ActiveVertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, g.nAct)
	for v := 0; v < g.order; v++ {
		if g.active[v] {
			out = append(out, v)
		}
	}

	return out
}

// OddVertices returns the vertices of odd degree in ascending order.
// By the handshake lemma the result always has even length.
// Complexity: O(V).
func (g *Graph) OddVertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for v := 0; v < g.order; v++ {
		if len(g.adj[v])&1 == 1 {
			out = append(out, v)
		}
	}

	return out
}

// IsEven reports whether every vertex has even degree.
// Complexity: O(V).
func (g *Graph) IsEven() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for v := 0; v < g.order; v++ {
		if len(g.adj[v])&1 == 1 {
			return false
		}
	}

	return true
}
