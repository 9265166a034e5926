// Package matching pairs up the odd-degree vertices of a graph so that adding
// one shortest path per pair makes every degree even.
//
// Two heuristics are provided; neither is an optimal minimum-weight perfect
// matching (Edmonds' blossom algorithm is out of scope):
//
//   - Greedy: consider every unordered pair {u,v} in ascending order of
//     (distance, u, v) and accept it when both ends are still free.
//     Backed by a binary heap; O(k² log k) for k odd vertices.
//   - VertexScan: repeatedly take the lowest-numbered free vertex and pair it
//     with its nearest free partner (lowest id on ties). O(k²).
//
// Both consume a *matrix.ShortestPaths table and return Pairs annotated with
// the real edges of the chosen path, ready to be added to the graph as
// non-required patch edges.
//
// A Strategy value selects the heuristic; it implements pflag.Value so it can
// be bound directly to a command-line flag.
package matching
