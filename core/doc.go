// Package core provides the edge-weighted undirected multigraph that every
// stage of the rural-postman pipeline reads from or patches.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are dense integer IDs in [0, Order()) fixed at construction.
//   - Edges are undirected, carry a non-negative float64 Weight and a
//     Required flag, and may reference an associated Path of real edges when
//     they stand for a shortest-path shortcut.
//   - Parallel edges and self-loops are always allowed. A self-loop adds 2 to
//     the degree of its vertex, the classic handshake convention.
//   - The graph exclusively owns its Edge records; adjacency holds indices
//     into that owned slice, never copies.
//   - A vertex is "active" once at least one edge touches it. Component and
//     matching meta-graphs only range over active vertices.
//
// Core Methods:
//
//	NewGraph(order int) *Graph                                    // O(V)
//	AddEdge(from, to int, w float64, opts ...EdgeOption) (*Edge, error) // O(1) amortized
//	AddPath(path []*Edge) ([]*Edge, error)                        // O(len(path))
//	HasEdge(v, w int) bool                                        // O(deg(v))
//	Weight(v, w int) float64                                      // O(deg(v)); 0 when absent
//	Degree(v int) int                                             // O(1)
//	Incident(v int) []*Edge                                       // O(deg(v)); loops once
//	Edges() []*Edge                                               // O(E); ascending ID
//	ActiveVertices() []int                                        // O(V)
//	OddVertices() []int                                           // O(V)
//	Clone() *Graph                                                // O(V+E)
//
// Edge case worth repeating: Weight(v,w) returns 0 both for "no edge" and for
// an edge of weight 0. Callers that care must ask HasEdge first.
//
// Errors:
//
//	ErrVertexOutOfRange – endpoint outside [0, Order())
//	ErrBadWeight        – negative, NaN or infinite weight
//
// All methods are safe for concurrent use; a single sync.RWMutex guards
// edges, adjacency and the active set.
package core
