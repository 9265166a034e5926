// Package kruskal links the pieces of a disconnected graph together at
// minimum total cost.
//
// What & Why
//
//   - The postman must traverse every required edge, so every component of
//     the required subgraph has to be joined to the others. Joining them with
//     the cheapest set of shortest paths that forms a tree is exactly a
//     minimum spanning tree over a complete "meta-graph" whose nodes are the
//     components and whose edge weights are shortest-path distances between
//     components (queried from matrix.ShortestPaths).
//
// Building Blocks
//
//   - DisjointSet: union-find over dense int ids with path compression and
//     union by rank. Find always returns a root whose parent is itself.
//
//   - MetaGraph(groups, sp): one candidate MetaEdge per pair of groups that
//     can reach each other, weighted by the minimum distance between any
//     vertex of one group and any vertex of the other, annotated with the
//     concrete minimizing path of real edges.
//
//   - Kruskal(n, candidates): sort ascending by (Weight, From, To), accept an
//     edge iff its endpoints lie in different sets. The result has exactly
//     n−1 edges, is acyclic and spans all n meta-nodes, or the call fails
//     with ErrDisconnected.
//
//   - Link(groups, sp): MetaGraph followed by Kruskal.
//
// Determinism
//
//   - Every ordering decision has an explicit tie-break: the realizing vertex
//     pair of a meta-edge is the lowest (u, v) among minimizers, and Kruskal
//     breaks weight ties by the lower (From, To) pair.
//
// Complexity
//
//   - MetaGraph: O(Σ|Gi|·|Gj|) distance lookups + path reconstruction.
//   - Kruskal:   O(E log E + α(n)·E).
package kruskal
