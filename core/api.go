// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only diagnostics facade.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Stats produces a deterministic, read-only snapshot of graph counters.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: One pass over edges (required, loops, weight) and one pass over
//     vertices (odd degrees).
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Order:       g.order,
		EdgeCount:   len(g.edges),
		ActiveCount: g.nAct,
	}
	for _, e := range g.edges {
		if e.Required {
			stats.RequiredCount++
		}
		if e.IsLoop() {
			stats.LoopCount++
		}
		stats.TotalWeight += e.Weight
	}
	for v := 0; v < g.order; v++ {
		if len(g.adj[v])&1 == 1 {
			stats.OddCount++
		}
	}

	return &stats
}
